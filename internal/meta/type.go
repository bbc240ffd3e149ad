// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package meta

import "strings"

// Scalar classifies a value type for placeholder rendering.
type Scalar int

const (
	Opaque Scalar = iota
	Boolean
	Integer
	Text
)

// Type is the semantic type a node describes.
type Type struct {
	// Name is the fully qualified type name.
	Name string
	// Simple is the short name shown for built-in types. Empty for everything else.
	Simple string
	Scalar Scalar
}

// Built-in scalar types.
var (
	Bool   = Type{Name: "bool", Simple: "boolean", Scalar: Boolean}
	Int    = Type{Name: "int", Simple: "int", Scalar: Integer}
	Int8   = integerType("int8")
	Int16  = integerType("int16")
	Int32  = integerType("int32")
	Int64  = integerType("int64")
	Uint   = integerType("uint")
	Uint8  = integerType("uint8")
	Uint16 = integerType("uint16")
	Uint32 = integerType("uint32")
	Uint64 = integerType("uint64")
	String = Type{Name: "string", Simple: "String", Scalar: Text}
	Number = Type{Name: "number", Simple: "number"}
	Any    = Type{Name: "any", Simple: "any"}
)

func integerType(name string) Type {
	return Type{Name: name, Simple: name, Scalar: Integer}
}

// Named returns an opaque type with the given qualified name.
func Named(qualified string) Type {
	return Type{Name: qualified}
}

// TypeOf resolves a textual type name. Go spellings and the schema-file
// aliases ("boolean", "integer", "String") map to the built-in types; anything
// else is an opaque type with that qualified name.
func TypeOf(name string) Type {
	name = strings.TrimSpace(name)
	switch name {
	case "bool", "boolean":
		return Bool
	case "int", "integer":
		return Int
	case "int8":
		return Int8
	case "int16":
		return Int16
	case "int32":
		return Int32
	case "int64":
		return Int64
	case "uint":
		return Uint
	case "uint8":
		return Uint8
	case "uint16":
		return Uint16
	case "uint32":
		return Uint32
	case "uint64":
		return Uint64
	case "string", "String":
		return String
	case "number":
		return Number
	case "float32", "float64":
		return Type{Name: name, Simple: name}
	case "any", "interface{}":
		return Any
	}
	return Named(name)
}

// String returns the name shown in rendered help: the simple name for
// built-ins, the qualified name otherwise.
func (t Type) String() string {
	if t.Simple != "" {
		return t.Simple
	}
	return t.Name
}

// IsZero reports whether the type is unset.
func (t Type) IsZero() bool {
	return t.Name == "" && t.Simple == ""
}

// Placeholder returns the token substituted for a value of this type.
func (t Type) Placeholder() string {
	switch t.Scalar {
	case Boolean:
		return "<true|false>"
	case Integer:
		return "<int>"
	case Text:
		return "<string>"
	default:
		return "<value>"
	}
}
