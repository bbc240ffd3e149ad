// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package configdoc

import "go/ast"

// Annotation holds the @-lines of a doc comment.
type Annotation struct {
	// Type overrides the documented type name.
	Type string
	// TypeLabel is the designator value of a concrete subtype.
	TypeLabel string
	// SubtypeOf names the struct this one specializes.
	SubtypeOf string
	Abstract  bool
}

// ParsedStruct represents a parsed Go struct.
type ParsedStruct struct {
	Name       string
	Doc        string
	Fields     []ParsedField
	Annotation Annotation
	SourceFile string // Source file path
}

// ParsedField represents a parsed struct field.
type ParsedField struct {
	Name       string
	GoType     string
	Expr       ast.Expr
	Tag        FieldTag
	Doc        string
	Annotation Annotation
	Embedded   bool
}

// FieldTag is the serialization tag that names a field.
type FieldTag struct {
	Name   string
	Skip   bool
	Inline bool
}
