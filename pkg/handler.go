package verctl

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// HandleSingle updates the version of one package manifest.
//
// A missing package.version is filled in with DefaultVersion and persisted
// with the final write, even when the resolved bump is none. An explicit
// cfg.Set is written verbatim and takes precedence over any bump. Otherwise
// the bump comes from cfg.Bump, then cfg.Auto (patch), then cfg.Prompt.
// The file is written last, so a failure never leaves a partial update.
func HandleSingle(cfg *Config, path string) (VersionMeta, error) {
	meta := VersionMeta{Path: path}
	rep := newReporter(cfg)

	m, err := LoadManifest(path)
	if err != nil {
		return meta, err
	}
	if !m.Has("package") {
		return meta, fmt.Errorf("%w in %s", ErrMissingSection, path)
	}
	if m.InheritsVersion() {
		rep.inherited(path)
		meta.BumpType = "inherited"
		return meta, nil
	}

	current, ok := m.PackageVersion()
	if !ok {
		rep.defaulted(path)
		if err := m.SetPackageVersion(DefaultVersion); err != nil {
			return meta, err
		}
		current = DefaultVersion
	}
	meta.OldVersion = current
	meta.NewVersion = current

	if cfg.Set != nil {
		explicit := *cfg.Set
		checkExplicit(rep, current, explicit)
		if err := m.SetPackageVersion(explicit); err != nil {
			return meta, err
		}
		meta.NewVersion = explicit
		meta.BumpType = "explicit"
		if err := persist(cfg, m, &meta); err != nil {
			return meta, err
		}
		rep.set(path, explicit)
		return meta, nil
	}

	kind, err := resolveBump(cfg, path)
	if err != nil {
		return meta, err
	}
	meta.BumpType = kind.String()

	if kind == BumpNone {
		// Only the inserted default, if any, needs saving.
		if err := persist(cfg, m, &meta); err != nil {
			return meta, err
		}
		rep.kept(path, current)
		return meta, nil
	}

	next := bumpVersion(current, kind)
	if err := m.SetPackageVersion(next); err != nil {
		return meta, err
	}
	meta.NewVersion = next
	if err := persist(cfg, m, &meta); err != nil {
		return meta, err
	}
	rep.updated(path, next)
	return meta, nil
}

func resolveBump(cfg *Config, path string) (BumpKind, error) {
	switch {
	case cfg.Bump != nil:
		return *cfg.Bump, nil
	case cfg.Auto:
		return BumpPatch, nil
	}
	prompt := cfg.Prompt
	if prompt == nil {
		prompt = LinePrompt(cfg.stdin(), cfg.stdout())
	}
	return prompt(path)
}

// persist saves m if it changed. Dry runs only record that a write would happen.
func persist(cfg *Config, m *Manifest, meta *VersionMeta) error {
	if !m.Modified() {
		return nil
	}
	meta.Written = true
	if cfg.DryRun {
		return nil
	}
	return m.Save()
}

// checkExplicit warns about explicit versions that look wrong. They are
// written regardless.
func checkExplicit(rep reporter, current, explicit string) {
	canonical := "v" + strings.TrimPrefix(explicit, "v")
	if !semver.IsValid(canonical) {
		rep.warn("%q is not a valid semantic version; writing it as given", explicit)
		return
	}
	if old := "v" + current; semver.IsValid(old) && semver.Compare(canonical, old) < 0 {
		rep.warn("setting version %s lower than current version %s", explicit, current)
	}
}
