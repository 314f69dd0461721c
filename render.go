package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"clementus360/ai-helper-client/types"

	"github.com/dustin/go-humanize"
)

func table(out io.Writer, header string, rows func(w io.Writer)) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	rows(w)
	w.Flush()
}

func stdoutTable(header string, rows func(w io.Writer)) {
	table(os.Stdout, header, rows)
}

// ago renders a timestamp relative to now, or "-" when unknown.
func ago(t types.Timestamp) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t.Time)
}

func check(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
