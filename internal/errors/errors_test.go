// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package errors

import (
	"errors"
	"io/fs"
	"testing"
)

func TestError(t *testing.T) {
	err := New(KindValidation, "list has no element type")
	if err.Error() != "list has no element type" {
		t.Errorf("expected 'list has no element type', got '%s'", err.Error())
	}

	wrapped := Wrap(err, KindInternal, "failed to build schema")
	if wrapped.Error() != "failed to build schema: list has no element type" {
		t.Errorf("unexpected message '%s'", wrapped.Error())
	}
}

func TestErrorAttributesInMessage(t *testing.T) {
	err := Attr(New(KindValidation, "duplicate property"), "property", "port")
	err = Attr(err, "node", "server")

	want := "duplicate property [node=server property=port]"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestGetKind(t *testing.T) {
	err := New(KindValidation, "invalid schema")
	if GetKind(err) != KindValidation {
		t.Errorf("expected KindValidation, got %v", GetKind(err))
	}

	wrapped := Wrap(err, KindNotFound, "failed")
	if GetKind(wrapped) != KindNotFound {
		t.Errorf("expected KindNotFound, got %v", GetKind(wrapped))
	}

	if GetKind(errors.New("std error")) != KindUnknown {
		t.Errorf("expected KindUnknown, got %v", GetKind(errors.New("std error")))
	}
}

func TestAttributes(t *testing.T) {
	err := New(KindValidation, "invalid node")
	err = Attr(err, "path", "schema.yaml")
	err = Attr(err, "node", "m1root")

	attrs := GetAttributes(err)
	if attrs["path"] != "schema.yaml" {
		t.Errorf("expected schema.yaml, got %v", attrs["path"])
	}
	if attrs["node"] != "m1root" {
		t.Errorf("expected m1root, got %v", attrs["node"])
	}

	wrapped := Wrap(err, KindInternal, "failed")
	wrapped = Attr(wrapped, "operation", "render")

	allAttrs := GetAttributes(wrapped)
	if allAttrs["path"] != "schema.yaml" || allAttrs["operation"] != "render" {
		t.Errorf("missing attributes: %v", allAttrs)
	}
}

func TestAttrOnForeignError(t *testing.T) {
	err := Attr(fs.ErrNotExist, "path", "missing.hcl")

	if GetKind(err) != KindInternal {
		t.Errorf("expected KindInternal, got %v", GetKind(err))
	}
	if !Is(err, fs.ErrNotExist) {
		t.Error("expected the original error to stay reachable")
	}
	if err.Error() != "file does not exist [path=missing.hcl]" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindUnknown:     "unknown",
		KindInternal:    "internal",
		KindValidation:  "validation",
		KindNotFound:    "not_found",
		KindUnsupported: "unsupported",
		KindIO:          "io",
	}
	for kind, want := range cases {
		if kind.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, kind.String(), want)
		}
	}
}
