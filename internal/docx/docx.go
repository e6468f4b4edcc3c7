package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/maruosan78/mk-line-length-check/pkg/bilingual"
)

const documentEntry = "word/document.xml"

// File is a parsed DOCX document. It implements bilingual.Document so the
// checker core never touches the DOCX serialization directly.
type File struct {
	doc    *WordDocument
	logger *zap.Logger
}

// Open reads and parses the DOCX file at path.
func Open(path string, logger *zap.Logger) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat DOCX file: %w", err)
	}

	return Parse(f, info.Size(), logger)
}

// Parse reads a DOCX archive and unmarshals word/document.xml.
func Parse(r io.ReaderAt, size int64, logger *zap.Logger) (*File, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read DOCX archive: %w", err)
	}

	var entry *zip.File
	for _, zf := range zr.File {
		if zf.Name == documentEntry {
			entry = zf
			break
		}
	}
	if entry == nil {
		return nil, fmt.Errorf("DOCX archive has no %s", documentEntry)
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", documentEntry, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", documentEntry, err)
	}

	var doc WordDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", documentEntry, err)
	}

	logger.Debug("parsed DOCX document",
		zap.Int("tables", len(doc.Body.Tables)),
		zap.Int("paragraphs", len(doc.Body.Paragraphs)))

	return &File{doc: &doc, logger: logger}, nil
}

// Tables enumerates the document's top-level tables.
func (f *File) Tables() []bilingual.Table {
	tables := make([]bilingual.Table, 0, len(f.doc.Body.Tables))
	for i := range f.doc.Body.Tables {
		tables = append(tables, &docTable{t: &f.doc.Body.Tables[i]})
	}
	return tables
}

type docTable struct {
	t *Table
}

func (t *docTable) Rows() []bilingual.Row {
	rows := make([]bilingual.Row, 0, len(t.t.Rows))
	for i := range t.t.Rows {
		rows = append(rows, &docRow{r: &t.t.Rows[i]})
	}
	return rows
}

type docRow struct {
	r *TableRow
}

func (r *docRow) Cells() []bilingual.Cell {
	cells := make([]bilingual.Cell, 0, len(r.r.Cells))
	for i := range r.r.Cells {
		cells = append(cells, &docCell{c: &r.r.Cells[i]})
	}
	return cells
}

type docCell struct {
	c *TableCell
}

func (c *docCell) Text() string {
	return CellText(c.c)
}
