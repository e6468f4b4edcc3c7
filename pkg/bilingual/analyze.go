package bilingual

import (
	"html"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// Violation records one segment with at least one logical line over the
// limit. Highlighted holds the HTML rendering of the whole target with the
// overflow portion of each long line wrapped in an overflow span; the
// renderer embeds it verbatim and never re-derives it.
type Violation struct {
	ID            string
	Source        string
	Target        string
	MaxLineLength int
	SegmentLength int
	LineLengths   []int
	Highlighted   string
}

// DisplayID returns the leading whitespace-delimited token of the segment
// ID. memoQ appends context notes after the segment number; reports show
// only the number while the full ID stays in the record.
func (v *Violation) DisplayID() string {
	if fields := strings.Fields(v.ID); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// Analyzer walks the data rows of a located bilingual table and collects
// the segments whose longest logical line exceeds the per-line limit.
type Analyzer struct {
	normalizer *Normalizer
	limit      int
	logger     *zap.Logger
}

// NewAnalyzer rejects a non-positive limit before any analysis starts.
func NewAnalyzer(normalizer *Normalizer, limit int, logger *zap.Logger) (*Analyzer, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{normalizer: normalizer, limit: limit, logger: logger}, nil
}

// Analyze processes every row below the header in document order and
// returns violations in the same relative order. ErrColumnLayout is a
// recoverable zero-violation outcome; a *RowLayoutError aborts the run.
//
// Lengths are Unicode code points counted after NFC normalization, so the
// precomposed and combining-mark spellings of the same visible text measure
// the same.
func (a *Analyzer) Analyze(loc *Location) ([]Violation, error) {
	rows := loc.Table.Rows()
	header := rows[loc.HeaderRow].Cells()
	if loc.TargetColumn() >= len(header) {
		a.logger.Warn("could not determine target column",
			zap.Int("headerCells", len(header)),
			zap.Int("targetColumn", loc.TargetColumn()))
		return nil, ErrColumnLayout
	}

	var violations []Violation
	for i, row := range rows[loc.HeaderRow+1:] {
		cells := row.Cells()
		if loc.TargetColumn() >= len(cells) {
			return nil, &RowLayoutError{Row: i + 1, Cells: len(cells), Need: loc.TargetColumn() + 1}
		}

		segID := strings.TrimSpace(cells[loc.IDColumn].Text())
		source := cells[loc.SourceColumn()].Text()
		target := cells[loc.TargetColumn()].Text()

		processed := norm.NFC.String(a.normalizer.Normalize(target))
		lines := strings.Split(processed, "\n")

		var lengths []int
		maxLen, segmentLen := 0, 0
		for _, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			length := utf8.RuneCountInString(line)
			lengths = append(lengths, length)
			segmentLen += length
			if length > maxLen {
				maxLen = length
			}
		}

		// A target made entirely of tags or whitespace cannot overflow.
		if len(lengths) == 0 {
			continue
		}
		if maxLen <= a.limit {
			continue
		}

		violations = append(violations, Violation{
			ID:            segID,
			Source:        source,
			Target:        target,
			MaxLineLength: maxLen,
			SegmentLength: segmentLen,
			LineLengths:   lengths,
			Highlighted:   a.highlight(lines),
		})
	}

	a.logger.Info("analysis complete",
		zap.Int("violations", len(violations)),
		zap.Int("limit", a.limit))
	return violations, nil
}

// highlight renders every original line, empty ones included. A line at or
// under the limit is emitted escaped and verbatim; a longer line is split
// at the limit boundary and only the overflow suffix is wrapped. The
// overflow class is the stable marker downstream consumers may extract.
func (a *Analyzer) highlight(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			b.WriteString("<br>")
			continue
		}

		runes := []rune(line)
		if len(runes) <= a.limit {
			b.WriteString(html.EscapeString(line))
			b.WriteString("<br>")
			continue
		}

		b.WriteString(html.EscapeString(string(runes[:a.limit])))
		b.WriteString(`<span class="overflow">`)
		b.WriteString(html.EscapeString(string(runes[a.limit:])))
		b.WriteString(`</span><br>`)
	}
	return b.String()
}
