// Package main implements the cargo-verctl CLI tool.
//
// The cargo-verctl tool is a command-line interface that manages the package version
// of Rust projects. It reads package.version from a Cargo manifest (default "./Cargo.toml"),
// bumps it according to a directive (major, minor, patch, or none) or sets an explicit version,
// and writes the manifest back with every other byte left as it was. When the manifest is a
// workspace, each member listed in workspace.members is handled in turn.
//
// Command Usage:
//
//	cargo-verctl [flags]
//	cargo verctl [flags]
//
// Flags:
//
//	--bump:  Version increment: major, minor, patch, or none.
//	--auto:  Bump the patch version without asking.
//	--set:   Explicit version, written verbatim. Takes precedence over --bump and --auto.
//	--file:  Path to the manifest (defaults to "Cargo.toml", or $VERCTL_FILE).
//	--only:  Restrict a workspace run to the member whose directory has this name.
//	--list:  Print package names and versions; nothing is written.
//	--dry:   Report what would change without writing any file.
//
// When neither --bump, --auto, nor --set is given, the tool asks on standard input for each
// manifest it handles; an empty answer means patch.
//
// Examples:
//
//	# Bump the patch version (e.g. 1.2.3 → 1.2.4)
//	cargo-verctl --bump patch
//
//	# Bump the major version (e.g. 1.2.3 → 2.0.0)
//	cargo-verctl --bump major
//
//	# Set an explicit version directly
//	cargo-verctl --set 2.1.0
//
//	# Bump only the workspace member in ./crates/core
//	cargo-verctl --auto --only core
//
//	# Show every workspace member and its version
//	cargo-verctl --list
//
// For more detailed API documentation, please see the documentation in the "pkg" package
// or visit [PkgGoDev](https://pkg.go.dev/github.com/bcomnes/cargo-verctl).
package main
