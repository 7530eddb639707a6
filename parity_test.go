package strutil

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func parseFuncs(t *testing.T, dir string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	fset := token.NewFileSet()
	for _, filename := range matches {
		if strings.HasSuffix(filename, "_test.go") {
			continue
		}
		af, err := parser.ParseFile(fset, filename, nil, parser.AllErrors)
		if err != nil {
			t.Fatal(err)
		}
		for _, d := range af.Decls {
			if fd, _ := d.(*ast.FuncDecl); fd != nil && fd.Recv == nil {
				if fd.Name != nil && ast.IsExported(fd.Name.Name) {
					names = append(names, fd.Name.Name)
				}
			}
		}
	}
	sort.Strings(names)
	return names
}

// Test that every "go run" generate directive names .go files instead
// of a package path. With the gen tag set the root directory holds both
// package strutil and package main (gen.go), so loading it by import
// path fails; only the file mode form works.
func TestGenerateDirectiveFileMode(t *testing.T) {
	for _, dir := range []string{".", "charutil"} {
		matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatal(err)
		}
		for _, filename := range matches {
			data, err := os.ReadFile(filename)
			if err != nil {
				t.Fatal(err)
			}
			for _, line := range strings.Split(string(data), "\n") {
				if !strings.HasPrefix(line, "//go:generate ") {
					continue
				}
				args := strings.Fields(strings.TrimPrefix(line, "//go:generate "))
				if len(args) < 2 || args[0] != "go" || args[1] != "run" {
					continue
				}
				var files, other int
				for _, a := range args[2:] {
					switch {
					case strings.HasPrefix(a, "-"):
						// flag
					case strings.HasSuffix(a, ".go"):
						files++
					default:
						other++
					}
				}
				if files == 0 || other != 0 {
					t.Errorf("%s: directive %q must name .go files, not a package path",
						filename, line)
				}
			}
		}
	}
}

// Test that every mutating To* sequence operation has a non-mutating
// Get* counterpart.
func TestMutatorAccessorParity(t *testing.T) {
	names := parseFuncs(t, ".")
	have := make(map[string]bool, len(names))
	for _, name := range names {
		have[name] = true
	}
	for _, name := range names {
		if !strings.HasPrefix(name, "To") {
			continue
		}
		want := "Get" + strings.TrimPrefix(name, "To")
		if !have[want] {
			t.Errorf("mutator %s has no accessor %s", name, want)
		}
	}
}
