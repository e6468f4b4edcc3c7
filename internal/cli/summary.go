package cli

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"

	"github.com/maruosan78/mk-line-length-check/pkg/bilingual"
)

const previewWidth = 48

// printSummary mirrors the report's summary line on the console and lists
// the violating segments in a compact table.
func printSummary(w io.Writer, violations []bilingual.Violation, limit int) {
	headline := color.New(color.FgCyan, color.Bold)
	if len(violations) == 0 {
		headline.Fprintf(w, "No segments exceed the limit of %d characters per line.\n", limit)
		return
	}
	headline.Fprintf(w, "Found %d segments with at least one line longer than %d characters.\n",
		len(violations), limit)

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"ID", "Source", "Max line", "Segment"})
	for i := range violations {
		v := &violations[i]
		tw.AppendRow(table.Row{v.DisplayID(), sourcePreview(v.Source), v.MaxLineLength, v.SegmentLength})
	}
	tw.SetStyle(table.StyleLight)
	tw.Render()
}

// sourcePreview truncates by display width, not rune count, so CJK source
// text keeps the table columns aligned.
func sourcePreview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.Truncate(s, previewWidth, "…")
}
