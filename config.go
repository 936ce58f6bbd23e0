package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	verctl "github.com/bcomnes/cargo-verctl/pkg"
	"github.com/spf13/cobra"
)

// Environment variables that provide flag defaults. A .env file in the
// working directory is loaded before they are read.
const (
	envFile = "VERCTL_FILE"
	envBump = "VERCTL_BUMP"
)

type options struct {
	bump string
	auto bool
	set  string
	file string
	only string
	list bool
	dry  bool
}

func defaultFile() string {
	if f := strings.TrimSpace(os.Getenv(envFile)); f != "" {
		return f
	}
	return "Cargo.toml"
}

// config turns parsed flags into a run configuration. Flags given on the
// command line win over environment defaults.
func (o *options) config(cmd *cobra.Command, stdin io.Reader, stdout, stderr io.Writer) (verctl.Config, error) {
	cfg := verctl.Config{
		File:   o.file,
		Auto:   o.auto,
		Only:   o.only,
		List:   o.list,
		DryRun: o.dry,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	if cmd.Flags().Changed("set") {
		set := o.set
		cfg.Set = &set
	}

	bump := o.bump
	if !cmd.Flags().Changed("bump") {
		bump = strings.TrimSpace(os.Getenv(envBump))
	}
	if bump != "" {
		kind, err := verctl.ParseBumpKind(bump)
		if err != nil {
			return cfg, fmt.Errorf("invalid --bump: %w", err)
		}
		cfg.Bump = &kind
	}
	return cfg, nil
}
