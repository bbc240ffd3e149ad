// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package validation checks names read from schema files before they reach
// the rendered help.
package validation

import (
	"regexp"
	"strings"

	"grimm.is/confhelp/internal/errors"
)

var (
	// Valid property name: alphanumeric, dash, underscore, dot
	nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	// Valid type label: alphanumeric, dash, underscore
	identifierRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	// Characters that would break a help line
	dangerousChars = []string{"#", ":", "\n", "\r", "\t"}
)

// ValidateName validates a property or root name.
func ValidateName(name string) error {
	if name == "" {
		return errors.New(errors.KindValidation, "name cannot be empty")
	}

	if len(name) > 255 {
		return errors.New(errors.KindValidation, "name too long (max 255 characters)")
	}

	if !nameRegex.MatchString(name) {
		return errors.Errorf(errors.KindValidation, "invalid name: %q (must be alphanumeric with -_.)", name)
	}

	return nil
}

// ValidateIdentifier validates a type label.
func ValidateIdentifier(id string) error {
	if id == "" {
		return errors.New(errors.KindValidation, "identifier cannot be empty")
	}

	if !identifierRegex.MatchString(id) {
		return errors.Errorf(errors.KindValidation, "invalid identifier: %q (must be alphanumeric with -_)", id)
	}

	return nil
}

// ValidateTypeName validates a type name. Qualified names may contain any
// printable character except those that would break a help line.
func ValidateTypeName(name string) error {
	if strings.TrimSpace(name) != name {
		return errors.Errorf(errors.KindValidation, "type name has surrounding space: %q", name)
	}

	for _, char := range dangerousChars {
		if strings.Contains(name, char) {
			return errors.Errorf(errors.KindValidation, "type name contains invalid character %q: %q", char, name)
		}
	}

	return nil
}

// ValidateAllowlist checks if a value is in an allowed list
func ValidateAllowlist(value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errors.Errorf(errors.KindValidation, "%q is not one of: %s", value, strings.Join(allowed, ", "))
}
