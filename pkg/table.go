package verctl

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// table renders rows in aligned columns.
type table struct {
	w *tabwriter.Writer
}

func newTable(out io.Writer, headers ...string) *table {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	t := &table{w: tw}
	t.row(headers...)
	return t
}

func (t *table) row(values ...string) {
	_, _ = fmt.Fprintln(t.w, strings.Join(values, "\t"))
}

func (t *table) flush() error {
	return t.w.Flush()
}
