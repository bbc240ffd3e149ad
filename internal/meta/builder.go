// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package meta

import (
	"sort"

	"grimm.is/confhelp/internal/errors"
)

// Fixed types reported by container nodes.
var (
	ListType = Type{Name: "List"}
	MapType  = Type{Name: "Map"}
)

// ValueBuilder assembles a Value.
type ValueBuilder struct {
	h header
}

// NewValue starts a Value. Pass "" for an anonymous value (list elements, map values).
func NewValue(name string) *ValueBuilder {
	return &ValueBuilder{h: header{name: name}}
}

func (b *ValueBuilder) Type(t Type) *ValueBuilder {
	b.h.typ = t
	return b
}

func (b *ValueBuilder) Description(d string) *ValueBuilder {
	b.h.description = d
	return b
}

// Build returns the Value. A value without a type is documented as "any".
func (b *ValueBuilder) Build() *Value {
	h := b.h
	if h.typ.IsZero() {
		h.typ = Any
	}
	return &Value{header: h}
}

// ListBuilder assembles a List.
type ListBuilder struct {
	h       header
	element Node
}

// NewList starts a List. Pass "" for an anonymous list.
func NewList(name string) *ListBuilder {
	return &ListBuilder{h: header{name: name}}
}

func (b *ListBuilder) Description(d string) *ListBuilder {
	b.h.description = d
	return b
}

// Element sets the shape shared by all elements.
func (b *ListBuilder) Element(n Node) *ListBuilder {
	b.element = n
	return b
}

// Build returns the List, or a validation error when no element shape was set.
func (b *ListBuilder) Build() (*List, error) {
	if isNil(b.element) {
		return nil, nodeError(errors.New(errors.KindValidation, "list has no element type"), b.h.name)
	}
	h := b.h
	h.typ = ListType
	return &List{header: h, element: b.element}, nil
}

// MustBuild is Build for statically known trees. It panics on error.
func (b *ListBuilder) MustBuild() *List {
	l, err := b.Build()
	if err != nil {
		panic(err)
	}
	return l
}

// MapBuilder assembles a Map.
type MapBuilder struct {
	h      header
	keys   Type
	values Node
}

// NewMap starts a Map. Pass "" for an anonymous map.
func NewMap(name string) *MapBuilder {
	return &MapBuilder{h: header{name: name}}
}

func (b *MapBuilder) Description(d string) *MapBuilder {
	b.h.description = d
	return b
}

// Keys sets the key type. Defaults to String.
func (b *MapBuilder) Keys(t Type) *MapBuilder {
	b.keys = t
	return b
}

// Values sets the shape shared by all values.
func (b *MapBuilder) Values(n Node) *MapBuilder {
	b.values = n
	return b
}

// Build returns the Map, or a validation error when no value shape was set.
func (b *MapBuilder) Build() (*Map, error) {
	if isNil(b.values) {
		return nil, nodeError(errors.New(errors.KindValidation, "map has no values type"), b.h.name)
	}
	keys := b.keys
	if keys.IsZero() {
		keys = String
	}
	h := b.h
	h.typ = MapType
	return &Map{header: h, keys: keys, values: b.values}, nil
}

// MustBuild is Build for statically known trees. It panics on error.
func (b *MapBuilder) MustBuild() *Map {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

// ObjectBuilder assembles an Object.
type ObjectBuilder struct {
	h          header
	typeLabel  string
	abstract   bool
	properties []Node
	subConfigs []*Object
}

// NewObject starts an Object. Pass "" for an anonymous object.
func NewObject(name string) *ObjectBuilder {
	return &ObjectBuilder{h: header{name: name}}
}

func (b *ObjectBuilder) Type(t Type) *ObjectBuilder {
	b.h.typ = t
	return b
}

func (b *ObjectBuilder) Description(d string) *ObjectBuilder {
	b.h.description = d
	return b
}

// TypeLabel sets the discriminator value used when this object is a subtype.
func (b *ObjectBuilder) TypeLabel(label string) *ObjectBuilder {
	b.typeLabel = label
	return b
}

func (b *ObjectBuilder) Abstract(abstract bool) *ObjectBuilder {
	b.abstract = abstract
	return b
}

// AddProperty appends a named property. Insertion order does not matter;
// built objects keep properties sorted by name.
func (b *ObjectBuilder) AddProperty(n Node) *ObjectBuilder {
	b.properties = append(b.properties, n)
	return b
}

// AddSubConfig appends a concrete subtype. Subtypes keep declaration order.
func (b *ObjectBuilder) AddSubConfig(sub *Object) *ObjectBuilder {
	b.subConfigs = append(b.subConfigs, sub)
	return b
}

// Build checks the object invariants and returns the immutable Object.
func (b *ObjectBuilder) Build() (*Object, error) {
	props := make([]Node, 0, len(b.properties))
	seen := make(map[string]struct{}, len(b.properties))
	for _, p := range b.properties {
		if isNil(p) {
			return nil, nodeError(errors.New(errors.KindValidation, "nil property"), b.h.name)
		}
		name := p.Name()
		if name == "" {
			return nil, nodeError(errors.New(errors.KindValidation, "property has no name"), b.h.name)
		}
		if _, dup := seen[name]; dup {
			err := errors.Attr(errors.Errorf(errors.KindValidation, "duplicate property %q", name), "property", name)
			return nil, nodeError(err, b.h.name)
		}
		seen[name] = struct{}{}
		props = append(props, p)
	}
	sort.SliceStable(props, func(i, j int) bool {
		return props[i].Name() < props[j].Name()
	})

	for _, sc := range b.subConfigs {
		if sc == nil {
			return nil, nodeError(errors.New(errors.KindValidation, "nil subtype"), b.h.name)
		}
		if sc.typeLabel == "" {
			err := errors.Errorf(errors.KindValidation, "subtype %s has no type label", sc.typ)
			return nil, nodeError(err, b.h.name)
		}
	}
	if b.abstract && len(b.subConfigs) == 0 {
		return nil, nodeError(errors.New(errors.KindValidation, "abstract object has no subtypes"), b.h.name)
	}

	h := b.h
	if h.typ.IsZero() {
		h.typ = Any
	}
	return &Object{
		header:     h,
		typeLabel:  b.typeLabel,
		abstract:   b.abstract,
		properties: props,
		subConfigs: append([]*Object(nil), b.subConfigs...),
	}, nil
}

// MustBuild is Build for statically known trees. It panics on error.
func (b *ObjectBuilder) MustBuild() *Object {
	o, err := b.Build()
	if err != nil {
		panic(err)
	}
	return o
}

func nodeError(err error, name string) error {
	if name == "" {
		return err
	}
	return errors.Attr(err, "node", name)
}

// isNil catches typed nil pointers hidden in a Node interface.
func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Value:
		return v == nil
	case *List:
		return v == nil
	case *Map:
		return v == nil
	case *Object:
		return v == nil
	}
	return false
}
