// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package schemafile

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"grimm.is/confhelp/internal/errors"
)

// hclFile is the top level of an HCL schema.
type hclFile struct {
	Roots []hclNamed `hcl:"root,block"`
}

// hclNamed is a labelled block whose body is decoded on demand, so nesting
// depth is unbounded.
type hclNamed struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

type hclAnon struct {
	Body hcl.Body `hcl:",remain"`
}

// hclNode is the content of any node block.
type hclNode struct {
	Kind        string         `hcl:"kind,optional"`
	Type        string         `hcl:"type,optional"`
	Description string         `hcl:"description,optional"`
	TypeLabel   string         `hcl:"type_label,optional"`
	Abstract    bool           `hcl:"abstract,optional"`
	Keys        string         `hcl:"keys,optional"`
	Shape       hcl.Expression `hcl:"shape,optional"`
	Element     *hclAnon       `hcl:"element,block"`
	Values      *hclAnon       `hcl:"values,block"`
	Properties  []hclNamed     `hcl:"property,block"`
	Subtypes    []hclAnon      `hcl:"subtype,block"`
}

func decodeHCL(filename string, data []byte) ([]*nodeSpec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Wrap(diags, errors.KindValidation, "failed to parse HCL schema")
	}

	var f hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &f); diags.HasErrors() {
		return nil, errors.Wrap(diags, errors.KindValidation, "failed to decode HCL schema")
	}

	specs := make([]*nodeSpec, 0, len(f.Roots))
	for _, r := range f.Roots {
		s, err := decodeNode(r.Name, r.Body)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}

func decodeNode(name string, body hcl.Body) (*nodeSpec, error) {
	var n hclNode
	if diags := gohcl.DecodeBody(body, nil, &n); diags.HasErrors() {
		return nil, nodeError(errors.Wrap(diags, errors.KindValidation, "failed to decode HCL schema"), name)
	}

	s := &nodeSpec{
		Name:        name,
		Kind:        n.Kind,
		Type:        n.Type,
		Description: n.Description,
		TypeLabel:   n.TypeLabel,
		Abstract:    n.Abstract,
		Keys:        n.Keys,
	}

	if hasExpr(n.Shape) {
		t, err := shapeOf(n.Shape)
		if err != nil {
			return nil, nodeError(err, name)
		}
		s.shape = t
	}

	var err error
	if n.Element != nil {
		if s.Element, err = decodeNode("", n.Element.Body); err != nil {
			return nil, nodeError(err, name)
		}
	}
	if n.Values != nil {
		if s.Values, err = decodeNode("", n.Values.Body); err != nil {
			return nil, nodeError(err, name)
		}
	}
	for _, p := range n.Properties {
		ps, err := decodeNode(p.Name, p.Body)
		if err != nil {
			return nil, nodeError(err, name)
		}
		s.Properties = append(s.Properties, ps)
	}
	for _, sub := range n.Subtypes {
		ss, err := decodeNode("", sub.Body)
		if err != nil {
			return nil, nodeError(err, name)
		}
		s.Subtypes = append(s.Subtypes, ss)
	}
	return s, nil
}

// hasExpr reports whether an optional expression attribute was set. gohcl
// fills a missing one with a static null.
func hasExpr(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return true
	}
	return !(v.IsNull() && v.Type() == cty.DynamicPseudoType)
}
