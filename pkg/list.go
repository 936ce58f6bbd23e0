package verctl

import (
	"fmt"
)

// List prints the name and version of the manifest at root, or of every
// member when root is a workspace. Nothing is written to disk.
func List(cfg *Config, root string) error {
	m, err := LoadManifest(root)
	if err != nil {
		return err
	}
	out := cfg.stdout()

	manifests := []*Manifest{m}
	if m.IsWorkspace() {
		fmt.Fprintln(out, headingStyle.Render("Workspace members:"))
		manifests = nil
		for _, path := range memberManifests(m) {
			member, err := LoadManifest(path)
			if err != nil {
				return err
			}
			manifests = append(manifests, member)
		}
	}

	t := newTable(out, "NAME", "VERSION", "PATH")
	for _, member := range manifests {
		name, version := describe(member)
		t.row(name, version, member.Path)
	}
	return t.flush()
}

func describe(m *Manifest) (name, version string) {
	name, ok := m.PackageName()
	if !ok {
		name = "unknown"
	}
	switch v, ok := m.PackageVersion(); {
	case ok:
		version = v
	case m.InheritsVersion():
		version = "workspace"
	default:
		version = "missing"
	}
	return name, version
}
