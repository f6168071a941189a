package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
nested?: {
	n?: int
}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "test.cue", `
str: "bar"
list: [1, 2, 3]
nested: n: 42
`),
	}, testSchema)

	var str string
	if err := loader.AssignFirst("str", &str); err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	if err := loader.AssignFirst("list", &list); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	if n := First[int](loader, "nested.n"); n != 42 {
		t.Fatalf("got %v", n)
	}

	err := loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
	if n := First[int](loader, "not"); n != 0 {
		t.Fatalf("got %v", n)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "test.cue", `str: "bar"`),
		writeFile(t, "empty.cue", ``),
		writeFile(t, "test2.cue", `str: "foo"`),
	}, testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("str") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "bad.cue", `unknown_field: "x"`),
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestDecodeErrorNamesFile(t *testing.T) {
	file := writeFile(t, "typed.cue", `str: "bar"`)
	loader := NewLoader([]string{file}, testSchema)
	var n int
	err := loader.AssignFirst("str", &n)
	if err == nil || !strings.Contains(err.Error(), file+": decode str") {
		t.Fatalf("got %v", err)
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		filepath.Join(t.TempDir(), "nope.cue"),
	}, "")
	var str string
	if err := loader.AssignFirst("str", &str); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}
