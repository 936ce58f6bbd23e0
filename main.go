// Package main implements a CLI tool to bump, set, and list the package
// versions of a Cargo manifest or of every member of a Cargo workspace.
package main

import (
	"fmt"
	"io"
	"os"

	verctl "github.com/bcomnes/cargo-verctl/pkg"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const longHelp = `Bumps the package version in a Cargo manifest (default: ./Cargo.toml).
If the manifest is a workspace, every member listed in workspace.members is handled in turn.

When no version is declared, 0.1.0 is written first. --set writes the given version verbatim
and takes precedence over --bump. Without --bump, --auto, or --set the tool asks for each manifest.

Examples:
  cargo-verctl --bump minor
  cargo-verctl --auto --only core
  cargo-verctl --set 2.0.0 --file crates/api/Cargo.toml
  cargo-verctl --list

Defaults for --file and --bump can be provided through VERCTL_FILE and VERCTL_BUMP
(also read from a .env file).`

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:           "cargo-verctl",
		Short:         "Manage Cargo.toml versions (bump, set, or workspace-wide)",
		Long:          longHelp,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.config(cmd, stdin, stdout, stderr)
			if err != nil {
				return err
			}
			metas, err := verctl.Run(cfg)
			if err != nil {
				return err
			}
			if !cfg.List {
				printSummary(stdout, metas, cfg.DryRun)
			}
			return nil
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&o.bump, "bump", "", "Version increment: major, minor, patch, or none")
	f.BoolVar(&o.auto, "auto", false, "Bump the patch version without asking")
	f.StringVar(&o.set, "set", "", "Set an explicit version, written verbatim (overrides --bump)")
	f.StringVar(&o.file, "file", defaultFile(), "Path to the Cargo.toml to update")
	f.StringVar(&o.only, "only", "", "Only handle the workspace member in the directory with this name")
	f.BoolVar(&o.list, "list", false, "List package names and versions without changing anything")
	f.BoolVar(&o.dry, "dry", false, "Perform a dry run without modifying any files")

	return cmd
}

func printSummary(out io.Writer, metas []verctl.VersionMeta, dry bool) {
	var written []string
	for _, m := range metas {
		if m.Written {
			written = append(written, m.Path)
		}
	}

	if dry {
		fmt.Fprintln(out, "Dry run complete, no files were modified.")
	}
	if len(written) == 0 {
		return
	}
	if dry {
		fmt.Fprintln(out, "Files that would be updated:")
	} else {
		fmt.Fprintln(out, "Files updated:")
	}
	for _, f := range written {
		fmt.Fprintf(out, "  %s\n", f)
	}
}

// cargoArgs drops the subcommand name cargo passes when the tool is invoked
// as "cargo verctl".
func cargoArgs(args []string) []string {
	if len(args) > 0 && args[0] == "verctl" {
		return args[1:]
	}
	return args
}

func main() {
	_ = godotenv.Load()

	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	cmd.SetArgs(cargoArgs(os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
