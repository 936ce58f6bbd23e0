package verctl

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// reporter prints the status lines of a run.
type reporter struct {
	out    io.Writer
	errOut io.Writer
	dry    bool
}

func newReporter(cfg *Config) reporter {
	return reporter{out: cfg.stdout(), errOut: cfg.stderr(), dry: cfg.DryRun}
}

func (r reporter) workspace(root string) {
	fmt.Fprintf(r.out, "%s %s\n", headingStyle.Render("Workspace detected:"), root)
}

func (r reporter) defaulted(path string) {
	fmt.Fprintf(r.out, "%s No version found in %s, setting default %s\n", noticeStyle.Render("+"), path, DefaultVersion)
}

func (r reporter) set(path, version string) {
	fmt.Fprintf(r.out, "%s Set %s version to %s%s\n", changedStyle.Render("*"), path, version, r.suffix())
}

func (r reporter) kept(path, version string) {
	fmt.Fprintf(r.out, "%s Keeping version %s for %s\n", noticeStyle.Render("="), version, path)
}

func (r reporter) inherited(path string) {
	fmt.Fprintf(r.out, "%s %s inherits its version from the workspace, skipping\n", noticeStyle.Render("="), path)
}

func (r reporter) updated(path, version string) {
	fmt.Fprintf(r.out, "%s Updated %s -> %s%s\n", changedStyle.Render("^"), path, version, r.suffix())
}

func (r reporter) warn(format string, args ...any) {
	fmt.Fprintf(r.errOut, "%s %s\n", warnStyle.Render("Warning:"), fmt.Sprintf(format, args...))
}

func (r reporter) suffix() string {
	if r.dry {
		return " (dry run)"
	}
	return ""
}
