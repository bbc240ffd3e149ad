// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package schemafile

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/ext/typeexpr"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"grimm.is/confhelp/internal/errors"
	"grimm.is/confhelp/internal/meta"
)

// objectType names nodes expanded from object(...) shapes.
var objectType = meta.Named("object")

// shapeOf reads a type expression such as map(list(string)).
func shapeOf(expr hcl.Expression) (cty.Type, error) {
	t, diags := typeexpr.TypeConstraint(expr)
	if diags.HasErrors() {
		return cty.NilType, errors.Wrap(diags, errors.KindValidation, "invalid shape")
	}
	return t, nil
}

// parseShape parses a type expression given as text.
func parseShape(filename, src string) (cty.Type, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return cty.NilType, errors.Attr(errors.Wrap(diags, errors.KindValidation, "invalid shape"), "shape", src)
	}
	t, err := shapeOf(expr)
	if err != nil {
		return cty.NilType, errors.Attr(err, "shape", src)
	}
	return t, nil
}

// fromShape expands a type constraint into nodes. typeName, when set,
// overrides the type of the outermost value or object.
func fromShape(name, desc, typeName string, t cty.Type) (meta.Node, error) {
	switch {
	case t.IsListType() || t.IsSetType():
		el, err := fromShape("", "", "", t.ElementType())
		if err != nil {
			return nil, err
		}
		l, err := meta.NewList(name).Description(desc).Element(el).Build()
		if err != nil {
			return nil, err
		}
		return l, nil

	case t.IsTupleType():
		l, err := meta.NewList(name).Description(desc).Element(meta.NewValue("").Build()).Build()
		if err != nil {
			return nil, err
		}
		return l, nil

	case t.IsMapType():
		values, err := fromShape("", "", "", t.ElementType())
		if err != nil {
			return nil, err
		}
		m, err := meta.NewMap(name).Description(desc).Keys(meta.String).Values(values).Build()
		if err != nil {
			return nil, err
		}
		return m, nil

	case t.IsObjectType():
		typ := objectType
		if typeName != "" {
			typ = meta.TypeOf(typeName)
		}
		b := meta.NewObject(name).Type(typ).Description(desc)

		attrs := t.AttributeTypes()
		names := make([]string, 0, len(attrs))
		for n := range attrs {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			p, err := fromShape(n, "", "", attrs[n])
			if err != nil {
				return nil, err
			}
			b.AddProperty(p)
		}
		o, err := b.Build()
		if err != nil {
			return nil, err
		}
		return o, nil
	}

	typ := primitive(t)
	if typeName != "" {
		typ = meta.TypeOf(typeName)
	}
	return meta.NewValue(name).Type(typ).Description(desc).Build(), nil
}

func primitive(t cty.Type) meta.Type {
	switch {
	case t.Equals(cty.Bool):
		return meta.Bool
	case t.Equals(cty.Number):
		return meta.Number
	case t.Equals(cty.String):
		return meta.String
	default:
		return meta.Any
	}
}
