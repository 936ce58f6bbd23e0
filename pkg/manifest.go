package verctl

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file name of a package manifest inside a member directory.
const ManifestName = "Cargo.toml"

// Manifest is a loaded Cargo.toml. The raw bytes are kept so that saving
// reproduces the file exactly, apart from fields changed through its setters.
type Manifest struct {
	Path string

	data     []byte
	doc      map[string]any
	modified bool
}

// LoadManifest reads and decodes the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w: %w", path, ErrIO, err)
	}
	return ParseManifest(path, data)
}

// ParseManifest decodes manifest content. path is used for error messages and Save.
func ParseManifest(path string, data []byte) (*Manifest, error) {
	doc, err := decodeTOML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w: %w", path, ErrParse, err)
	}
	return &Manifest{Path: path, data: data, doc: doc}, nil
}

func decodeTOML(data []byte) (map[string]any, error) {
	doc := make(map[string]any)
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Save writes the manifest back to its path, replacing the file.
func (m *Manifest) Save() error {
	if err := os.WriteFile(m.Path, m.data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w: %w", m.Path, ErrIO, err)
	}
	m.modified = false
	return nil
}

// Bytes returns the current document content.
func (m *Manifest) Bytes() []byte { return m.data }

// Modified reports whether the document changed since it was loaded or saved.
func (m *Manifest) Modified() bool { return m.modified }

// Has reports whether the document has a top-level key.
func (m *Manifest) Has(key string) bool {
	_, ok := m.doc[key]
	return ok
}

// IsWorkspace reports whether the manifest declares a [workspace] table.
func (m *Manifest) IsWorkspace() bool { return m.Has("workspace") }

func (m *Manifest) table(key string) map[string]any {
	t, _ := m.doc[key].(map[string]any)
	return t
}

// PackageName returns package.name, if it is a string.
func (m *Manifest) PackageName() (string, bool) {
	name, ok := m.table("package")["name"].(string)
	return name, ok
}

// PackageVersion returns package.version, if it is a string.
func (m *Manifest) PackageVersion() (string, bool) {
	v, ok := m.table("package")["version"].(string)
	return v, ok
}

// InheritsVersion reports whether the package takes its version from the
// workspace (version.workspace = true).
func (m *Manifest) InheritsVersion() bool {
	v, ok := m.table("package")["version"].(map[string]any)
	if !ok {
		return false
	}
	inherit, _ := v["workspace"].(bool)
	return inherit
}

// WorkspaceMembers returns workspace.members. Entries that are not strings
// are returned as empty strings.
func (m *Manifest) WorkspaceMembers() []string {
	return stringList(m.table("workspace")["members"])
}

// WorkspaceExclude returns workspace.exclude.
func (m *Manifest) WorkspaceExclude() []string {
	return stringList(m.table("workspace")["exclude"])
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, _ := item.(string)
		out = append(out, s)
	}
	return out
}

// SetPackageVersion sets package.version to v. An existing value is replaced
// in place, keeping its surrounding whitespace and comments; a missing key is
// added as the last entry of the [package] table.
func (m *Manifest) SetPackageVersion(v string) error {
	if !m.Has("package") {
		return fmt.Errorf("%w in %s", ErrMissingSection, m.Path)
	}

	l, err := locatePackage(m.data)
	if err != nil {
		return fmt.Errorf("locating [package] in %s: %w: %w", m.Path, ErrParse, err)
	}
	if !l.found {
		return fmt.Errorf("%w in %s: package is not declared with a [package] header", ErrUnsupportedLayout, m.Path)
	}
	if l.dotted || (l.version && !l.editable) {
		return fmt.Errorf("%w in %s: package.version is not a plain value", ErrUnsupportedLayout, m.Path)
	}

	quoted, err := tomlString(v)
	if err != nil {
		return fmt.Errorf("encoding version %q: %w", v, err)
	}
	if l.version {
		return m.splice(l.versionFrom, l.versionTo, quoted)
	}

	newline := "\n"
	if bytes.Contains(m.data, []byte("\r\n")) {
		newline = "\r\n"
	}
	at := l.insertAt(m.data)
	return m.splice(at, at, newline+l.indent+"version = "+quoted)
}

// splice replaces data[from:to] with s and re-decodes the result.
func (m *Manifest) splice(from, to int, s string) error {
	out := make([]byte, 0, len(m.data)-(to-from)+len(s))
	out = append(out, m.data[:from]...)
	out = append(out, s...)
	out = append(out, m.data[to:]...)

	doc, err := decodeTOML(out)
	if err != nil {
		return fmt.Errorf("updating %s: %w: %w", m.Path, ErrParse, err)
	}
	m.data = out
	m.doc = doc
	m.modified = true
	return nil
}
