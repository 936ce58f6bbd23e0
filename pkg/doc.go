// Package verctl provides a library for managing package versions in Cargo manifests.
//
// It provides functionalities for:
//   - Loading a Cargo.toml and writing it back byte for byte, apart from the
//     package.version field it changes (comments and layout are kept).
//   - Parsing dotted numeric versions leniently and bumping them
//     (major, minor, patch, or none).
//   - Handling a single package: inserting a default 0.1.0 when no version is
//     declared, setting an explicit version, or applying a bump chosen by flag,
//     auto mode, or an interactive prompt.
//   - Walking the members of a workspace (including glob members and
//     workspace.exclude), optionally restricted to one member directory.
//   - Listing package names and versions without modifying anything.
//
// This library is used by the cargo-verctl command-line tool (in the module
// root) and can also be called from other Go programs.
//
// Usage Example:
//
//	import (
//	    "log"
//	    verctl "github.com/bcomnes/cargo-verctl/pkg"
//	)
//
//	func main() {
//	    patch := verctl.BumpPatch
//	    _, err := verctl.Run(verctl.Config{File: "Cargo.toml", Bump: &patch})
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	}
//
// For additional details and API documentation, see https://pkg.go.dev/github.com/bcomnes/cargo-verctl/pkg.
package verctl
