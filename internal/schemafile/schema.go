// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package schemafile loads configuration metadata trees from YAML and HCL
// schema files.
//
// A YAML schema lists its roots:
//
//	roots:
//	  - name: server
//	    type: example.com/app.Server
//	    properties:
//	      - name: port
//	        type: int
//	      - name: hosts
//	        shape: list(string)
//
// The HCL form uses labelled blocks:
//
//	root "server" {
//	  type = "example.com/app.Server"
//	  property "port" { type = "int" }
//	  property "hosts" { shape = list(string) }
//	}
package schemafile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"grimm.is/confhelp/internal/errors"
	"grimm.is/confhelp/internal/logging"
	"grimm.is/confhelp/internal/meta"
	"grimm.is/confhelp/internal/validation"
)

// Node kinds accepted in schema files.
const (
	kindValue  = "value"
	kindList   = "list"
	kindMap    = "map"
	kindObject = "object"
)

var kinds = []string{kindValue, kindList, kindMap, kindObject}

// nodeSpec is the file form of a node, shared by both formats.
type nodeSpec struct {
	Name        string      `yaml:"name"`
	Kind        string      `yaml:"kind"`
	Type        string      `yaml:"type"`
	Description string      `yaml:"description"`
	TypeLabel   string      `yaml:"type_label"`
	Abstract    bool        `yaml:"abstract"`
	Keys        string      `yaml:"keys"`
	Shape       string      `yaml:"shape"`
	Element     *nodeSpec   `yaml:"element"`
	Values      *nodeSpec   `yaml:"values"`
	Properties  []*nodeSpec `yaml:"properties"`
	Subtypes    []*nodeSpec `yaml:"subtypes"`

	// shape is the parsed type expression. cty.NilType when absent.
	shape cty.Type
}

// Load reads a schema file, choosing the format by extension.
func Load(path string) ([]meta.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		kind := errors.KindIO
		if os.IsNotExist(err) {
			kind = errors.KindNotFound
		}
		return nil, errors.Attr(errors.Wrap(err, kind, "read schema"), "path", path)
	}
	return Parse(path, data)
}

// Parse decodes schema data. filename selects the format and labels errors.
func Parse(filename string, data []byte) ([]meta.Node, error) {
	var (
		specs []*nodeSpec
		err   error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		specs, err = decodeYAML(filename, data)
	case ".hcl":
		specs, err = decodeHCL(filename, data)
	default:
		err = errors.Errorf(errors.KindUnsupported, "unsupported schema format %q", ext)
	}
	if err != nil {
		return nil, errors.Attr(err, "path", filename)
	}

	roots := make([]meta.Node, 0, len(specs))
	for _, s := range specs {
		if s.Name == "" {
			return nil, errors.Attr(errors.New(errors.KindValidation, "root has no name"), "path", filename)
		}
		n, err := build(s)
		if err != nil {
			return nil, errors.Attr(err, "path", filename)
		}
		roots = append(roots, n)
	}
	logging.WithComponent("schemafile").Debug("loaded schema", "path", filename, "roots", len(roots))
	return roots, nil
}

// kind returns the explicit kind or infers it from the populated fields.
func (s *nodeSpec) kind() string {
	if s.Kind != "" {
		return strings.ToLower(s.Kind)
	}
	switch {
	case s.Element != nil:
		return kindList
	case s.Values != nil:
		return kindMap
	case len(s.Properties) > 0 || len(s.Subtypes) > 0 || s.Abstract || s.TypeLabel != "":
		return kindObject
	default:
		return kindValue
	}
}

// check validates the names of a single spec.
func (s *nodeSpec) check() error {
	if s.Name != "" {
		if err := validation.ValidateName(s.Name); err != nil {
			return err
		}
	}
	if s.TypeLabel != "" {
		if err := validation.ValidateIdentifier(s.TypeLabel); err != nil {
			return err
		}
	}
	if err := validation.ValidateTypeName(s.Type); err != nil {
		return err
	}
	if err := validation.ValidateTypeName(s.Keys); err != nil {
		return err
	}
	if s.shape == cty.NilType {
		if err := validation.ValidateAllowlist(s.kind(), kinds); err != nil {
			return errors.Attr(err, "kind", s.Kind)
		}
	}
	return nil
}

// build converts a spec into a node through the meta builders.
func build(s *nodeSpec) (meta.Node, error) {
	if err := s.check(); err != nil {
		return nil, nodeError(err, s.Name)
	}
	if s.shape != cty.NilType {
		return fromShape(s.Name, s.Description, s.Type, s.shape)
	}

	switch s.kind() {
	case kindValue:
		return meta.NewValue(s.Name).Type(typeOf(s.Type)).Description(s.Description).Build(), nil

	case kindList:
		if s.Element == nil {
			return nil, nodeError(errors.New(errors.KindValidation, "list has no element"), s.Name)
		}
		el, err := anonymous(s.Element)
		if err != nil {
			return nil, nodeError(err, s.Name)
		}
		l, err := meta.NewList(s.Name).Description(s.Description).Element(el).Build()
		if err != nil {
			return nil, err
		}
		return l, nil

	case kindMap:
		if s.Values == nil {
			return nil, nodeError(errors.New(errors.KindValidation, "map has no values"), s.Name)
		}
		values, err := anonymous(s.Values)
		if err != nil {
			return nil, nodeError(err, s.Name)
		}
		m, err := meta.NewMap(s.Name).
			Description(s.Description).
			Keys(typeOf(s.Keys)).
			Values(values).
			Build()
		if err != nil {
			return nil, err
		}
		return m, nil

	case kindObject:
		o, err := buildObject(s)
		if err != nil {
			return nil, err
		}
		return o, nil
	}
	return nil, errors.Errorf(errors.KindInternal, "unhandled kind %q", s.Kind)
}

func buildObject(s *nodeSpec) (*meta.Object, error) {
	b := meta.NewObject(s.Name).
		Type(typeOf(s.Type)).
		Description(s.Description).
		TypeLabel(s.TypeLabel).
		Abstract(s.Abstract)

	for _, p := range s.Properties {
		n, err := build(p)
		if err != nil {
			return nil, nodeError(err, s.Name)
		}
		b.AddProperty(n)
	}

	for _, sub := range s.Subtypes {
		if k := sub.kind(); k != kindObject {
			err := errors.Errorf(errors.KindValidation, "subtype %q must be an object, not a %s", sub.TypeLabel, k)
			return nil, nodeError(err, s.Name)
		}
		sub.Name = ""
		if err := sub.check(); err != nil {
			return nil, nodeError(err, s.Name)
		}
		o, err := buildObject(sub)
		if err != nil {
			return nil, nodeError(err, s.Name)
		}
		b.AddSubConfig(o)
	}

	return b.Build()
}

// anonymous builds a list element or map value, which never carry a name.
func anonymous(s *nodeSpec) (meta.Node, error) {
	s.Name = ""
	return build(s)
}

// typeOf resolves a type name; empty leaves the builder default.
func typeOf(name string) meta.Type {
	if name == "" {
		return meta.Type{}
	}
	return meta.TypeOf(name)
}

func nodeError(err error, name string) error {
	if name == "" {
		return err
	}
	if _, ok := errors.GetAttributes(err)["node"]; ok {
		return err
	}
	return errors.Attr(err, "node", name)
}
