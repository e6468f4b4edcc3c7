package bilingual

import (
	"errors"
	"fmt"
)

// Recoverable structural outcomes. A document without a bilingual table, or
// one whose header is too narrow for a target column, still yields a valid
// zero-violation report.
var (
	ErrNoBilingualTable = errors.New("no table with an ID header and at least three columns was found")
	ErrColumnLayout     = errors.New("could not determine target column (not enough columns)")
	ErrInvalidLimit     = errors.New("character limit must be a positive integer")
)

// RowLayoutError reports a data row with fewer cells than the detected
// column layout requires. It aborts the analysis run: a row that does not
// match the header layout means the rest of the table cannot be trusted
// either, and skipping it would silently produce wrong metrics.
type RowLayoutError struct {
	Row   int // 1-based position below the header row
	Cells int
	Need  int
}

func (e *RowLayoutError) Error() string {
	return fmt.Sprintf("data row %d has %d cells but the target column requires %d", e.Row, e.Cells, e.Need)
}
