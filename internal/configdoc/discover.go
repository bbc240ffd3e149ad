// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package configdoc

import (
	"go/ast"
	"strings"

	"grimm.is/confhelp/internal/errors"
	"grimm.is/confhelp/internal/meta"
)

// DiscoverOptions tunes how a root struct is turned into a tree.
type DiscoverOptions struct {
	// Name is the root property name. Defaults to the lowercased type name.
	Name string
	// Package prefixes qualified type names. Defaults to the parsed package name.
	Package string
}

// Discover builds the metadata tree rooted at the named struct.
func (p *Parser) Discover(rootType string, opts DiscoverOptions) (meta.Node, error) {
	root := p.structs[rootType]
	if root == nil {
		return nil, errors.Attr(errors.New(errors.KindNotFound, "root struct not found"), "type", rootType)
	}

	if opts.Name == "" {
		opts.Name = strings.ToLower(rootType)
	}
	if opts.Package == "" {
		opts.Package = p.pkgName
	}

	d := &discovery{p: p, pkg: opts.Package, path: make(map[string]bool)}
	node, err := d.object(opts.Name, root.Doc, root)
	if err != nil {
		return nil, err
	}
	p.log.Debug("discovered configuration", "root", rootType, "name", opts.Name)
	return node, nil
}

// discovery walks struct references. path holds the structs on the current
// branch; reaching one again yields an opaque value so the tree stays finite.
type discovery struct {
	p    *Parser
	pkg  string
	path map[string]bool
}

func (d *discovery) qualify(name string) meta.Type {
	if d.pkg == "" {
		return meta.Named(name)
	}
	return meta.Named(d.pkg + "." + name)
}

func (d *discovery) object(name, desc string, s *ParsedStruct) (meta.Node, error) {
	typ := d.qualify(s.Name)
	if s.Annotation.Type != "" {
		typ = meta.TypeOf(s.Annotation.Type)
	}
	if d.path[s.Name] {
		return meta.NewValue(name).Type(typ).Description(desc).Build(), nil
	}
	d.path[s.Name] = true
	defer delete(d.path, s.Name)

	b := meta.NewObject(name).
		Type(typ).
		Description(desc).
		TypeLabel(s.Annotation.TypeLabel).
		Abstract(s.Annotation.Abstract)

	if err := d.fields(b, s); err != nil {
		return nil, err
	}

	for _, sub := range d.p.GetAllStructs() {
		if sub.Annotation.SubtypeOf != s.Name || d.path[sub.Name] {
			continue
		}
		n, err := d.object("", sub.Doc, sub)
		if err != nil {
			return nil, err
		}
		b.AddSubConfig(n.(*meta.Object))
	}

	o, err := b.Build()
	if err != nil {
		return nil, err
	}
	return o, nil
}

// fields adds the properties of s to b, flattening inline fields.
func (d *discovery) fields(b *meta.ObjectBuilder, s *ParsedStruct) error {
	for _, f := range s.Fields {
		if f.Tag.Inline {
			if inner := d.p.structs[typeName(f.Expr)]; inner != nil && !d.path[inner.Name] {
				d.path[inner.Name] = true
				err := d.fields(b, inner)
				delete(d.path, inner.Name)
				if err != nil {
					return err
				}
				continue
			}
			if f.Tag.Name == "" {
				// Catch-all fields such as map[string]string hold keys
				// that have no fixed name.
				d.p.log.Debug("skipping inline field", "struct", s.Name, "field", f.Name, "type", f.GoType)
				continue
			}
		}

		n, err := d.node(f.Tag.Name, f.Doc, f.Expr, f.Annotation.Type)
		if err != nil {
			return errors.Attr(err, "field", s.Name+"."+f.Name)
		}
		b.AddProperty(n)
	}
	return nil
}

// node maps a Go type expression onto a metadata node.
func (d *discovery) node(name, desc string, expr ast.Expr, override string) (meta.Node, error) {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return d.node(name, desc, t.X, override)
	case *ast.ParenExpr:
		return d.node(name, desc, t.X, override)
	case *ast.ArrayType:
		if isByte(t.Elt) {
			return d.value(name, desc, meta.String, override), nil
		}
		el, err := d.node("", "", t.Elt, "")
		if err != nil {
			return nil, err
		}
		l, err := meta.NewList(name).Description(desc).Element(el).Build()
		if err != nil {
			return nil, err
		}
		return l, nil
	case *ast.MapType:
		values, err := d.node("", "", t.Value, "")
		if err != nil {
			return nil, err
		}
		m, err := meta.NewMap(name).
			Description(desc).
			Keys(d.scalarType(t.Key)).
			Values(values).
			Build()
		if err != nil {
			return nil, err
		}
		return m, nil
	case *ast.Ident:
		if s := d.p.structs[t.Name]; s != nil && override == "" {
			return d.object(name, firstNonEmpty(desc, s.Doc), s)
		}
		return d.value(name, desc, d.scalarType(t), override), nil
	default:
		return d.value(name, desc, d.scalarType(expr), override), nil
	}
}

func (d *discovery) value(name, desc string, typ meta.Type, override string) meta.Node {
	if override != "" {
		typ = meta.TypeOf(override)
	}
	return meta.NewValue(name).Type(typ).Description(desc).Build()
}

// scalarType resolves a non-container type expression.
func (d *discovery) scalarType(expr ast.Expr) meta.Type {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return d.scalarType(t.X)
	case *ast.Ident:
		switch t.Name {
		case "byte":
			return meta.Uint8
		case "rune":
			return meta.Int32
		}
		if isPredeclared(t.Name) {
			return meta.TypeOf(t.Name)
		}
		return d.qualify(t.Name)
	case *ast.InterfaceType:
		return meta.Any
	case *ast.SelectorExpr:
		return meta.Named(typeToString(t))
	default:
		return meta.Named(typeToString(expr))
	}
}

func isPredeclared(name string) bool {
	switch name {
	case "bool", "string", "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "complex64", "complex128", "any":
		return true
	}
	return false
}

func isByte(expr ast.Expr) bool {
	id, ok := expr.(*ast.Ident)
	return ok && (id.Name == "byte" || id.Name == "uint8")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
