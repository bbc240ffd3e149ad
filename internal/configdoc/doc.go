// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package configdoc builds configuration metadata trees from Go struct definitions.
//
// It parses Go source files and turns a root struct into a meta.Object:
//   - Go doc comments on types and fields become descriptions
//   - yaml, hcl and json struct tags give property names (in that order)
//   - []T becomes a List, map[K]V a Map, known structs nested Objects
//   - annotation comments describe polymorphism and type overrides
//
// Annotations are doc comment lines of the form:
//
//	// @abstract
//	// @type-label: postgres
//	// @subtype-of: Database
//	// @type: example.com/app.Duration
package configdoc
