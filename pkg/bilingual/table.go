package bilingual

import "strings"

// Document is the read-only view of a parsed document the checker needs:
// enumerable tables of rows of cells with plain-text access. The concrete
// backend (DOCX or a test fixture) lives behind this interface so table
// discovery stays a pure function.
type Document interface {
	Tables() []Table
}

// Table is an ordered sequence of rows.
type Table interface {
	Rows() []Row
}

// Row is an ordered sequence of cells.
type Row interface {
	Cells() []Cell
}

// Cell exposes the plain text of one table cell.
type Cell interface {
	Text() string
}

const (
	// headerToken is the literal column label identifying the header row
	// of a bilingual export.
	headerToken = "ID"

	// minHeaderCells is the smallest header that can carry ID, source and
	// target columns.
	minHeaderCells = 3
)

// Location pins the bilingual table inside a document: the table itself,
// its header row index and the ID column index. Column roles are fixed once
// per document and hold for every data row below the header.
type Location struct {
	Table     Table
	HeaderRow int
	IDColumn  int
}

// SourceColumn is the column immediately to the right of the ID column.
func (l *Location) SourceColumn() int { return l.IDColumn + 1 }

// TargetColumn is the column immediately to the right of the source column.
func (l *Location) TargetColumn() int { return l.IDColumn + 2 }

// Locate scans every table in document order and returns the location of
// the first row whose trimmed cell texts contain "ID" and that carries at
// least three cells. Multiple qualifying tables are not disambiguated:
// first match wins. ErrNoBilingualTable is a recoverable outcome, not a
// failure.
func Locate(doc Document) (*Location, error) {
	for _, table := range doc.Tables() {
		for rowIdx, row := range table.Rows() {
			cells := row.Cells()
			if len(cells) < minHeaderCells {
				continue
			}
			for colIdx, cell := range cells {
				if strings.TrimSpace(cell.Text()) == headerToken {
					return &Location{Table: table, HeaderRow: rowIdx, IDColumn: colIdx}, nil
				}
			}
		}
	}
	return nil, ErrNoBilingualTable
}
