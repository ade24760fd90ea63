package mdir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFieldsSetKeepsPosition(t *testing.T) {
	t.Parallel()
	var f Fields
	f.Set("b", "1")
	f.Set("a", "2")
	f.Set("b", "3")
	want := Fields{{Key: "b", Value: "3"}, {Key: "a", Value: "2"}}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Fatalf("unexpected fields (-want +got):\n%s", diff)
	}
	if v, ok := f.Get("b"); !ok || v != "3" {
		t.Fatalf("Get(b) = %q, %v", v, ok)
	}
	if _, ok := f.Get("missing"); ok {
		t.Fatalf("Get(missing) reported present")
	}
	if f.Value("missing") != "" || f.Has("missing") || !f.Has("a") {
		t.Fatalf("lookup helpers disagree with contents %v", f)
	}
	if f.Len() != 2 {
		t.Fatalf("Len = %d", f.Len())
	}
}

func TestFieldsCloneIsIndependent(t *testing.T) {
	t.Parallel()
	orig := Fields{{Key: "a", Value: "1"}}
	cp := orig.Clone()
	cp.Set("a", "changed")
	cp.Set("b", "2")
	if orig.Value("a") != "1" || orig.Has("b") {
		t.Fatalf("clone shares storage with original: %v", orig)
	}
	if Fields(nil).Clone() != nil {
		t.Fatalf("clone of nil should stay nil")
	}
}

func TestFieldsFromMap(t *testing.T) {
	t.Parallel()
	got := FieldsFromMap(map[string]string{"c": "3", "a": "1", "b": "2"})
	if diff := cmp.Diff([]string{"a", "b", "c"}, got.Keys()); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"a": "1", "b": "2", "c": "3"}, got.Map()); diff != "" {
		t.Fatalf("map (-want +got):\n%s", diff)
	}
	if FieldsFromMap(nil) != nil {
		t.Fatalf("expected nil for empty map")
	}
}

func TestFieldsRequire(t *testing.T) {
	t.Parallel()
	f := Fields{{Key: "id", Value: "E1"}, {Key: "title", Value: ""}}
	if err := f.Require("id"); err != nil {
		t.Fatalf("Require(id): %v", err)
	}
	for _, key := range []string{"title", "owner"} {
		err := f.Require("id", key)
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Element != key {
			t.Fatalf("Require(%s) = %v", key, err)
		}
	}
}
