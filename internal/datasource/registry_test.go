package datasource

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	if r == nil {
		t.Fatal("expected non-nil registry")
	}
	if r.Count() != 0 {
		t.Errorf("expected 0 connections, got %d", r.Count())
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(Connection{Name: "Shop", Provider: "sqlite"}); err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	if !r.Has("Shop") {
		t.Error("expected Shop to be registered")
	}
	if err := r.Register(Connection{Name: "Shop"}); err == nil {
		t.Error("expected error for duplicate registration")
	}
	if err := r.Register(Connection{}); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(Connection{Name: "Shop", ConnectionString: "file:shop.db"})

	c, err := r.Get("Shop")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if c.ConnectionString != "file:shop.db" {
		t.Errorf("unexpected connection string %q", c.ConnectionString)
	}

	_, err = r.Get("Missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistry_ListAndUnregister(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"b", "c", "a"} {
		_ = r.Register(Connection{Name: name})
	}

	if got := r.List(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("expected sorted names, got %v", got)
	}
	if err := r.Unregister("b"); err != nil {
		t.Fatalf("failed to unregister: %v", err)
	}
	if r.Count() != 2 {
		t.Errorf("expected 2 connections, got %d", r.Count())
	}
	if err := r.Unregister("b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
