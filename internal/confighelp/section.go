// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package confighelp

import (
	"grimm.is/confhelp/internal/console"
	"grimm.is/confhelp/internal/meta"
)

// bulletLead prefixes the single sample entry printed for a list.
const bulletLead = "- "

// SectionGenerator renders one metadata tree as annotated, YAML-like help text.
//
// Every node becomes a block of "# " comments (type, description) followed by
// its structural line. Sibling blocks are separated by exactly one blank line.
// Containers descend one console.DefaultOffset deeper than their key line.
type SectionGenerator struct {
	out *console.Appender
}

// NewSectionGenerator returns a generator writing to out at out's current indentation.
func NewSectionGenerator(out *console.Appender) *SectionGenerator {
	return &SectionGenerator{out: out}
}

// Generate renders node as a top-level section and returns the first write error.
func (g *SectionGenerator) Generate(node meta.Node) error {
	g.property(node)
	return g.out.Err()
}

// property renders a node that stands on its own: a root or a named object property.
func (g *SectionGenerator) property(n meta.Node) {
	g.header(n)

	switch n := n.(type) {
	case *meta.Value:
		if n.Name() == "" {
			g.out.Println(n.Type().Placeholder())
			return
		}
		g.out.Println(n.Name() + ": " + n.Type().Placeholder())
	case *meta.Object:
		g.key(n)
		g.nested(func() { g.object(n) })
	case *meta.List:
		g.key(n)
		g.nested(func() { g.list(n) })
	case *meta.Map:
		g.key(n)
		g.nested(func() { g.mapping(n) })
	}
}

func (g *SectionGenerator) header(n meta.Node) {
	g.out.Comment("Type: " + n.Type().String())
	if d := n.Description(); d != "" {
		g.out.Comment(d)
	}
}

func (g *SectionGenerator) key(n meta.Node) {
	if n.Name() != "" {
		g.out.Println(n.Name() + ":")
	}
}

// body renders the structure of an anonymous node whose header was already
// printed by its container (list element, map value).
func (g *SectionGenerator) body(n meta.Node) {
	switch n := n.(type) {
	case *meta.Value:
		g.out.Println(n.Type().Placeholder())
	case *meta.Object:
		g.object(n)
	case *meta.List:
		g.list(n)
	case *meta.Map:
		g.mapping(n)
	}
}

func (g *SectionGenerator) object(o *meta.Object) {
	for i, block := range g.objectBlocks(o, nil) {
		if i > 0 {
			g.out.Blank()
		}
		block()
	}
}

// objectBlocks flattens an object into its blank-line separated blocks: own
// properties first, then one designator block per subtype followed by that
// subtype's blocks. An abstract object's own properties are skipped because
// every concrete subtype carries them.
func (g *SectionGenerator) objectBlocks(o *meta.Object, blocks []func()) []func() {
	if !o.Abstract() {
		for _, p := range o.Properties() {
			blocks = append(blocks, func() { g.property(p) })
		}
	}
	for _, sub := range o.SubConfigs() {
		blocks = append(blocks, func() { g.designator(sub) })
		blocks = g.objectBlocks(sub, blocks)
	}
	return blocks
}

func (g *SectionGenerator) designator(sub *meta.Object) {
	if d := sub.Description(); d != "" {
		g.out.Comment(d)
	}
	g.out.Comment("Designator of subtype: " + sub.Type().String())
	g.out.Println("type: " + sub.TypeLabel())
}

func (g *SectionGenerator) list(l *meta.List) {
	el := l.Element()
	g.out.Bullet(bulletLead, "Element type: "+el.Type().String())

	// Scalars sit under the bullet text; containers descend a full level.
	g.out.PushIndent(len(bulletLead))
	if d := el.Description(); d != "" {
		g.out.Comment(d)
	}
	if v, ok := el.(*meta.Value); ok {
		g.out.Println(v.Type().Placeholder())
		g.out.PopIndent()
		return
	}
	g.out.PopIndent()

	g.nested(func() { g.body(el) })
}

func (g *SectionGenerator) mapping(m *meta.Map) {
	values := m.Values()
	g.out.Comment("Keys type: " + m.Keys().String())
	g.out.Comment("Values type: " + values.Type().String())
	if d := values.Description(); d != "" {
		g.out.Comment(d)
	}

	key := m.Keys().Placeholder()
	if v, ok := values.(*meta.Value); ok {
		g.out.Println(key + ": " + v.Type().Placeholder())
		return
	}
	g.out.Println(key + ":")
	g.nested(func() { g.body(values) })
}

func (g *SectionGenerator) nested(fn func()) {
	g.out.PushIndent(console.DefaultOffset)
	defer g.out.PopIndent()
	fn()
}
