// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package meta holds the immutable metadata tree that describes a configuration schema.
//
// A tree is made of four node kinds: Value (a scalar), List (a sequence with one
// element shape), Map (scalar keys, any-shaped values) and Object (named properties
// plus optional polymorphic subtypes). Trees are assembled with builders, which
// check the structural invariants once; after Build nothing mutates a node, so a
// tree can be read from several goroutines without locking.
package meta

// Kind identifies the concrete node type.
type Kind int

const (
	KindValue Kind = iota
	KindList
	KindMap
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Node is one of *Value, *List, *Map or *Object. The set is closed: callers
// dispatch with a type switch.
type Node interface {
	// Name is the key in the parent container, empty for anonymous nodes.
	Name() string
	Description() string
	Type() Type
	Kind() Kind

	sealed()
}

type header struct {
	name        string
	description string
	typ         Type
}

func (h *header) Name() string        { return h.name }
func (h *header) Description() string { return h.description }
func (h *header) Type() Type          { return h.typ }
func (h *header) sealed()             {}

// Value describes a scalar.
type Value struct {
	header
}

func (*Value) Kind() Kind { return KindValue }

// List describes a sequence whose elements all share one shape.
type List struct {
	header
	element Node
}

func (*List) Kind() Kind { return KindList }

// Element returns the element shape. Never nil on a built list.
func (l *List) Element() Node { return l.element }

// Map describes a mapping from scalar keys to values of one shape.
type Map struct {
	header
	keys   Type
	values Node
}

func (*Map) Kind() Kind { return KindMap }

// Keys returns the key type. Keys are always rendered as placeholders.
func (m *Map) Keys() Type { return m.keys }

// Values returns the value shape. Never nil on a built map.
func (m *Map) Values() Node { return m.values }

// Object describes a structure with named properties and, when polymorphic,
// a set of concrete subtypes.
type Object struct {
	header
	typeLabel  string
	abstract   bool
	properties []Node
	subConfigs []*Object
}

func (*Object) Kind() Kind { return KindObject }

// TypeLabel is the discriminator value naming this object as a subtype.
func (o *Object) TypeLabel() string { return o.typeLabel }

// Abstract reports whether only the subtypes can be instantiated.
func (o *Object) Abstract() bool { return o.abstract }

// Properties returns the properties sorted by name. The slice must not be modified.
func (o *Object) Properties() []Node { return o.properties }

// SubConfigs returns the subtypes in declaration order. The slice must not be modified.
func (o *Object) SubConfigs() []*Object { return o.subConfigs }

// Property looks up a property by name.
func (o *Object) Property(name string) (Node, bool) {
	for _, p := range o.properties {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Anonymous reports whether n has no name.
func Anonymous(n Node) bool {
	return n.Name() == ""
}
