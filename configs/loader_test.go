package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
tape_size?: int & >0
eof?: "zero" | "keep" | "max" | "error"
`

func writeFile(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "local.cue", `tape_size: 1024`),
		writeFile(t, "global.cue", `tape_size: 65536, eof: "keep"`),
	}, testSchema)

	var size int
	if err := loader.AssignFirst("tape_size", &size); err != nil {
		t.Fatal(err)
	}
	if size != 1024 {
		t.Fatalf("got %v", size)
	}

	var eof string
	if err := loader.AssignFirst("eof", &eof); err != nil {
		t.Fatal(err)
	}
	if eof != "keep" {
		t.Fatalf("got %q", eof)
	}

	if err := loader.AssignFirst("trace", &eof); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

	paths, err := loader.Paths()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}
}

func TestLoaderValues(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "a.cue", `tape_size: 1`),
		writeFile(t, "b.cue", `eof: "max"`),
		writeFile(t, "c.cue", `tape_size: 3`),
	}, testSchema)

	var sizes []int
	for value, err := range loader.Values("tape_size") {
		if err != nil {
			t.Fatal(err)
		}
		var n int
		if err := value.Decode(&n); err != nil {
			t.Fatal(err)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) != 2 || sizes[0] != 1 || sizes[1] != 3 {
		t.Fatalf("got %v", sizes)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "bf.cue", `eof: "error"`),
	}, testSchema)
	if eof := First[string](loader, "eof"); eof != "error" {
		t.Fatalf("got %q", eof)
	}
	if size := First[int](loader, "tape_size"); size != 0 {
		t.Fatalf("got %v", size)
	}
}

func TestSchemaViolation(t *testing.T) {
	for _, content := range []string{
		`unknown_field: 1`,
		`tape_size: -1`,
		`eof: "panic"`,
	} {
		loader := NewLoader([]string{
			writeFile(t, "bad.cue", content),
		}, testSchema)
		var size int
		if err := loader.AssignFirst("tape_size", &size); err == nil {
			t.Fatalf("%s: should error", content)
		}
	}
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	if size := First[int](loader, "tape_size"); size != 0 {
		t.Fatalf("got %v", size)
	}
}
