// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package schemafile

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"grimm.is/confhelp/internal/errors"
)

type yamlFile struct {
	Roots []*nodeSpec `yaml:"roots"`
}

func decodeYAML(filename string, data []byte) ([]*nodeSpec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f yamlFile
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.KindValidation, "decode YAML schema")
	}

	for _, r := range f.Roots {
		if err := resolveShapes(filename, r); err != nil {
			return nil, err
		}
	}
	return f.Roots, nil
}

// resolveShapes parses every textual shape in the tree.
func resolveShapes(filename string, s *nodeSpec) error {
	if s == nil {
		return nil
	}
	if s.Shape != "" {
		t, err := parseShape(filename, s.Shape)
		if err != nil {
			return nodeError(err, s.Name)
		}
		s.shape = t
	}

	children := append([]*nodeSpec{s.Element, s.Values}, s.Properties...)
	children = append(children, s.Subtypes...)
	for _, c := range children {
		if err := resolveShapes(filename, c); err != nil {
			return err
		}
	}
	return nil
}
