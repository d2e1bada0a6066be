package configs

import (
	"errors"
	"testing"
)

func TestLoader(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bf.cue",
		"testdata/override.cue",
	}, "")

	var mode string
	if err := loader.AssignFirst("eof_mode", &mode); err != nil {
		t.Fatal(err)
	}
	if mode != "unchanged" {
		t.Fatalf("got %q", mode)
	}

	// only the second file sets it
	var limit int
	if err := loader.AssignFirst("tape_limit", &limit); err != nil {
		t.Fatal(err)
	}
	if limit != 30000 {
		t.Fatalf("got %d", limit)
	}

	err := loader.AssignFirst("step_limit", new(int))
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderSchema(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, `eof_mode?: string`)
	err := loader.AssignFirst("eof_mode", new(string))
	if err == nil {
		t.Fatal("expected schema error")
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/override.cue",
	}, "")
	if mode := First[string](loader, "eof_mode"); mode != "zero" {
		t.Fatalf("got %q", mode)
	}
	if limit := First[int](loader, "step_limit"); limit != 0 {
		t.Fatalf("got %d", limit)
	}
}
