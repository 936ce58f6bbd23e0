package verctl

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IsWorkspace reports whether the manifest at path has a [workspace] table.
func IsWorkspace(path string) (bool, error) {
	m, err := LoadManifest(path)
	if err != nil {
		return false, err
	}
	return m.IsWorkspace(), nil
}

// WorkspaceMembers returns the manifest paths of the members of the workspace
// rooted at root, in declaration order. Members are resolved relative to the
// directory of root; glob patterns are expanded and workspace.exclude entries
// dropped. A member without a manifest file is skipped silently.
func WorkspaceMembers(root string) ([]string, error) {
	m, err := LoadManifest(root)
	if err != nil {
		return nil, err
	}
	return memberManifests(m), nil
}

func memberManifests(m *Manifest) []string {
	base := filepath.Dir(m.Path)
	exclude := m.WorkspaceExclude()

	var out []string
	seen := make(map[string]bool)
	for _, member := range m.WorkspaceMembers() {
		for _, dir := range expandMember(base, member) {
			if isExcluded(base, dir, exclude) {
				continue
			}
			manifest := filepath.Join(dir, ManifestName)
			if seen[manifest] {
				continue
			}
			if info, err := os.Stat(manifest); err != nil || info.IsDir() {
				continue
			}
			seen[manifest] = true
			out = append(out, manifest)
		}
	}
	return out
}

// expandMember resolves one workspace.members entry to directories.
// An absolute entry is used as is.
func expandMember(base, member string) []string {
	dir := filepath.FromSlash(member)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(base, dir)
	}
	if !hasGlobMeta(member) {
		return []string{dir}
	}
	matches, err := doublestar.FilepathGlob(dir)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, match := range matches {
		if info, err := os.Stat(match); err == nil && info.IsDir() {
			dirs = append(dirs, match)
		}
	}
	slices.Sort(dirs)
	return dirs
}

func hasGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

func isExcluded(base, dir string, exclude []string) bool {
	if len(exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(base, dir)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range exclude {
		pattern = strings.TrimSuffix(filepath.ToSlash(filepath.Clean(pattern)), "/")
		if pattern == rel {
			return true
		}
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// HandleWorkspaceDefault runs HandleSingle on every selected workspace member.
func HandleWorkspaceDefault(cfg *Config, root string) ([]VersionMeta, error) {
	return HandleWorkspace(cfg, root, HandleSingle)
}

// HandleWorkspace calls handler for each member of the workspace at root, one
// after another. When cfg.Only is set, only members whose directory name
// equals it are handled. The first handler error stops the walk and is
// returned together with the results gathered so far.
func HandleWorkspace(cfg *Config, root string, handler HandlerFunc) ([]VersionMeta, error) {
	cfg = cfg.withPrompt()
	newReporter(cfg).workspace(root)

	members, err := WorkspaceMembers(root)
	if err != nil {
		return nil, err
	}

	var results []VersionMeta
	for _, member := range members {
		if cfg.Only != "" && memberDirName(member) != cfg.Only {
			continue
		}
		meta, err := handler(cfg, member)
		if err != nil {
			return results, err
		}
		results = append(results, meta)
	}
	return results, nil
}

// memberDirName is the name of the directory holding a member manifest.
func memberDirName(manifest string) string {
	return filepath.Base(filepath.Dir(manifest))
}
