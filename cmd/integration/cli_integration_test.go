package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestCLIBinaryIntegration(t *testing.T) {
	// 1. Build the CLI binary.
	// Create a temporary directory for the build.
	tmpBuildDir, err := os.MkdirTemp("", "verctl_build")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpBuildDir)

	// The built binary will be written to "cargo-verctl" in tmpBuildDir.
	binPath := filepath.Join(tmpBuildDir, "cargo-verctl")
	// Since this test resides in cmd/integration, the main package is two directories up.
	buildCmd := exec.Command("go", "build", "-o", binPath, "../../")
	buildOutput, err := buildCmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build CLI binary: %v; build output: %s", err, string(buildOutput))
	}

	// 2. Set up a temporary workspace with three members; one is not on disk.
	tmpWs, err := os.MkdirTemp("", "verctl_integration")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpWs)

	rootManifest := `# workspace root
[workspace]
members = ["crates/core", "crates/cli", "crates/gone"]
resolver = "2"
`
	if err := os.WriteFile(filepath.Join(tmpWs, "Cargo.toml"), []byte(rootManifest), 0644); err != nil {
		t.Fatalf("failed to write workspace manifest: %v", err)
	}

	members := map[string]string{
		"core": `[package]
name = "core"
version = "1.2.3" # keep this comment
edition = "2021"

[dependencies]
serde = { version = "1.0.0", features = ["derive"] }
`,
		"cli": `[package]
name = "cli"
edition = "2021"
`,
	}
	for name, content := range members {
		dir := filepath.Join(tmpWs, "crates", name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
		if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s manifest: %v", name, err)
		}
	}

	// 3. Run the CLI binary against the whole workspace with a minor bump.
	cliCmd := exec.Command(binPath, "--bump", "minor")
	cliCmd.Dir = tmpWs
	cliCmd.Env = append(os.Environ(), "VERCTL_FILE=", "VERCTL_BUMP=")
	var cliStdout, cliStderr bytes.Buffer
	cliCmd.Stdout = &cliStdout
	cliCmd.Stderr = &cliStderr
	if err := cliCmd.Run(); err != nil {
		t.Fatalf("CLI command failed: %v; stdout: %s; stderr: %s", err, cliStdout.String(), cliStderr.String())
	}

	// 4. Verify core was bumped with everything else preserved.
	coreContent, err := os.ReadFile(filepath.Join(tmpWs, "crates", "core", "Cargo.toml"))
	if err != nil {
		t.Fatalf("failed to read core manifest: %v", err)
	}
	wantCore := strings.Replace(members["core"], `"1.2.3"`, `"1.3.0"`, 1)
	if string(coreContent) != wantCore {
		t.Errorf("core manifest =\n%s\nexpected\n%s", coreContent, wantCore)
	}

	// 5. Verify cli got the default version and then the bump.
	cliContent, err := os.ReadFile(filepath.Join(tmpWs, "crates", "cli", "Cargo.toml"))
	if err != nil {
		t.Fatalf("failed to read cli manifest: %v", err)
	}
	if !strings.Contains(string(cliContent), `version = "0.2.0"`) {
		t.Errorf("cli manifest not updated; got:\n%s", cliContent)
	}

	// 6. Listing reports both members and writes nothing.
	listCmd := exec.Command(binPath, "--list")
	listCmd.Dir = tmpWs
	listCmd.Env = cliCmd.Env
	listOutput, err := listCmd.CombinedOutput()
	if err != nil {
		t.Fatalf("CLI --list failed: %v; output: %s", err, listOutput)
	}
	for _, want := range []string{"core", "1.3.0", "cli", "0.2.0"} {
		if !strings.Contains(string(listOutput), want) {
			t.Errorf("list output missing %q:\n%s", want, listOutput)
		}
	}
}
