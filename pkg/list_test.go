package verctl

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestListSingle(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "Cargo.toml", simpleManifest)
	var out bytes.Buffer

	if err := List(&Config{Stdout: &out}, path); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got:\n%s", out.String())
	}
	if fields := strings.Fields(lines[1]); len(fields) != 3 || fields[0] != "example" || fields[1] != "0.1.0" {
		t.Errorf("unexpected row %q", lines[1])
	}
	if got := readFile(t, path); got != simpleManifest {
		t.Errorf("List modified the manifest:\n%s", got)
	}
}

func TestListWorkspace(t *testing.T) {
	dir := t.TempDir()
	root := writeManifest(t, dir, "Cargo.toml", "[workspace]\nmembers = [\"a\", \"b\", \"c\", \"gone\"]\n")
	writeManifest(t, dir, "a/Cargo.toml", "[package]\nname = \"alpha\"\nversion = \"1.2.3\"\n")
	writeManifest(t, dir, "b/Cargo.toml", "[package]\nedition = \"2021\"\n")
	writeManifest(t, dir, "c/Cargo.toml", "[package]\nname = \"gamma\"\nversion.workspace = true\n")
	var out bytes.Buffer

	if err := List(&Config{Stdout: &out}, root); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "Workspace members:\n") {
		t.Errorf("missing heading, got:\n%s", got)
	}
	rows := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(got), "\n")[2:] {
		fields := strings.Fields(line)
		rows[filepath.Base(filepath.Dir(fields[2]))] = fields[0] + " " + fields[1]
	}
	want := map[string]string{
		"a": "alpha 1.2.3",
		"b": "unknown missing",
		"c": "gamma workspace",
	}
	if len(rows) != len(want) {
		t.Errorf("rows = %v, expected %v", rows, want)
	}
	for k, v := range want {
		if rows[k] != v {
			t.Errorf("row for %s = %q, expected %q", k, rows[k], v)
		}
	}
}

func TestListErrors(t *testing.T) {
	if err := List(&Config{Stdout: &bytes.Buffer{}}, filepath.Join(t.TempDir(), "Cargo.toml")); !errors.Is(err, ErrNotFound) {
		t.Errorf("List(missing) error = %v, expected ErrNotFound", err)
	}

	dir := t.TempDir()
	root := writeManifest(t, dir, "Cargo.toml", "[workspace]\nmembers = [\"a\"]\n")
	writeManifest(t, dir, "a/Cargo.toml", "[package\n")
	if err := List(&Config{Stdout: &bytes.Buffer{}}, root); !errors.Is(err, ErrParse) {
		t.Errorf("List(broken member) error = %v, expected ErrParse", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()

	if _, err := Run(Config{File: filepath.Join(dir, "Cargo.toml")}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Run(missing) error = %v, expected ErrNotFound", err)
	}

	root := writeManifest(t, dir, "Cargo.toml", "[workspace]\nmembers = [\"a\", \"b\"]\n")
	a := writeManifest(t, dir, "a/Cargo.toml", simpleManifest)
	b := writeManifest(t, dir, "b/Cargo.toml", simpleManifest)
	var out bytes.Buffer

	metas, err := Run(Config{File: root, Bump: bumpPtr(BumpMinor), Only: "b", Stdout: &out})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(metas) != 1 || metas[0].Path != b || metas[0].NewVersion != "0.2.0" {
		t.Errorf("unexpected results: %+v", metas)
	}
	if got := readFile(t, a); got != simpleManifest {
		t.Errorf("filtered-out member was modified:\n%s", got)
	}

	// --list ignores mutation flags.
	out.Reset()
	metas, err = Run(Config{File: a, Set: strPtr("5.0.0"), List: true, Stdout: &out})
	if err != nil || metas != nil {
		t.Fatalf("Run(list) = %v, %v", metas, err)
	}
	if got := readFile(t, a); got != simpleManifest {
		t.Errorf("--list modified the manifest:\n%s", got)
	}
	if !strings.Contains(out.String(), "example") {
		t.Errorf("unexpected list output:\n%s", out.String())
	}

	metas, err = Run(Config{File: a, Set: strPtr("5.0.0"), Stdout: &out, Stderr: &bytes.Buffer{}})
	if err != nil || len(metas) != 1 || metas[0].BumpType != "explicit" {
		t.Fatalf("Run(single) = %+v, %v", metas, err)
	}
}
