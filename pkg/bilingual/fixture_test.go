package bilingual

// Synthetic table-model fixtures. Table discovery and analysis are pure
// functions over the Document interface, so tests never need a real DOCX
// backend.

type fakeDoc struct {
	tables []Table
}

func (d *fakeDoc) Tables() []Table { return d.tables }

type fakeTable struct {
	rows []Row
}

func (t *fakeTable) Rows() []Row { return t.rows }

type fakeRow struct {
	cells []Cell
}

func (r *fakeRow) Cells() []Cell { return r.cells }

type fakeCell string

func (c fakeCell) Text() string { return string(c) }

func tableOf(rows ...[]string) *fakeTable {
	t := &fakeTable{}
	for _, cells := range rows {
		row := &fakeRow{}
		for _, text := range cells {
			row.cells = append(row.cells, fakeCell(text))
		}
		t.rows = append(t.rows, row)
	}
	return t
}

func docOf(tables ...Table) *fakeDoc {
	return &fakeDoc{tables: tables}
}
