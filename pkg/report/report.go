package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/maruosan78/mk-line-length-check/pkg/bilingual"
)

//go:embed templates/report.tmpl
var templateFS embed.FS

// Data carries everything the report depends on. Render is a pure function
// of it: no filesystem access, no re-analysis.
type Data struct {
	Violations []bilingual.Violation
	Limit      int
	SourceName string
	Version    string
	RunID      string
}

// row is one rendered violation. Target is the precomputed highlighted
// rendering embedded as-is; Original is the same bytes placed (escaped) in
// the data-original-html attribute so the reset button can restore the
// exact render-time content after any number of edits.
type row struct {
	ID            string
	Source        string
	Target        template.HTML
	Original      string
	MaxLineLength int
	SegmentLength int
}

type page struct {
	Title      string
	Version    string
	SourceBase string
	Limit      int
	Summary    string
	RunID      string
	Rows       []row
}

// Render produces the self-contained dark-mode HTML report with the
// overflow-highlighted target cells and their edit/reset affordances.
func Render(data Data) ([]byte, error) {
	tmpl, err := template.New("report.tmpl").ParseFS(templateFS, "templates/report.tmpl")
	if err != nil {
		return nil, fmt.Errorf("error parsing report template: %w", err)
	}

	rows := make([]row, 0, len(data.Violations))
	for i := range data.Violations {
		v := &data.Violations[i]
		rows = append(rows, row{
			ID:            v.DisplayID(),
			Source:        v.Source,
			Target:        template.HTML(v.Highlighted),
			Original:      v.Highlighted,
			MaxLineLength: v.MaxLineLength,
			SegmentLength: v.SegmentLength,
		})
	}

	p := page{
		Title:      fmt.Sprintf("MK Line Length Check - limit %d", data.Limit),
		Version:    data.Version,
		SourceBase: filepath.Base(data.SourceName),
		Limit:      data.Limit,
		Summary:    summary(len(data.Violations), data.Limit),
		RunID:      data.RunID,
		Rows:       rows,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("error rendering report template: %w", err)
	}
	return buf.Bytes(), nil
}

func summary(count, limit int) string {
	if count == 0 {
		return fmt.Sprintf("NO SEGMENTS EXCEED THE LIMIT OF %d CHARACTERS PER LINE.", limit)
	}
	return fmt.Sprintf("Found %d segments with at least one line longer than %d characters.", count, limit)
}
