package verctl

import (
	"fmt"
	"io"
	"os"
)

// Config is the resolved input of one run. It is not modified while the run
// is in progress.
type Config struct {
	File string    // manifest path, usually Cargo.toml
	Set  *string   // explicit version, written verbatim; wins over Bump
	Bump *BumpKind // explicit bump; wins over Auto
	Auto bool      // bump patch without asking
	Only string    // restrict a workspace run to the member in this directory
	List bool      // report versions only

	DryRun bool // compute and report without writing

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Prompt resolves the bump when neither Bump nor Auto is set.
	// Nil means asking on Stdin/Stdout.
	Prompt PromptFunc
}

func (c *Config) stdin() io.Reader {
	if c.Stdin != nil {
		return c.Stdin
	}
	return os.Stdin
}

func (c *Config) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}

func (c *Config) stderr() io.Writer {
	if c.Stderr != nil {
		return c.Stderr
	}
	return os.Stderr
}

// withPrompt returns a copy of c whose Prompt is set, so that every manifest
// handled in one run shares the same input reader.
func (c *Config) withPrompt() *Config {
	out := *c
	if out.Prompt == nil {
		out.Prompt = LinePrompt(c.stdin(), c.stdout())
	}
	return &out
}

// VersionMeta holds the outcome for one manifest.
type VersionMeta struct {
	Path       string // manifest file
	OldVersion string // version before the run; DefaultVersion if it had none
	NewVersion string // version after the run
	BumpType   string // major, minor, patch, none, explicit, or inherited
	Written    bool   // whether the file was (or, in a dry run, would be) rewritten
}

// HandlerFunc processes a single manifest.
type HandlerFunc func(cfg *Config, path string) (VersionMeta, error)

// Run is the entry point of the tool. It checks that cfg.File exists, then
// lists versions, walks the workspace, or handles the single manifest.
func Run(cfg Config) ([]VersionMeta, error) {
	if _, err := os.Stat(cfg.File); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrNotFound, cfg.File)
		}
		return nil, fmt.Errorf("checking %s: %w: %w", cfg.File, ErrIO, err)
	}

	if cfg.List {
		return nil, List(&cfg, cfg.File)
	}

	c := cfg.withPrompt()
	ws, err := IsWorkspace(c.File)
	if err != nil {
		return nil, err
	}
	if ws {
		return HandleWorkspaceDefault(c, c.File)
	}
	meta, err := HandleSingle(c, c.File)
	if err != nil {
		return nil, err
	}
	return []VersionMeta{meta}, nil
}
