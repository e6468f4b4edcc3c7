package docx

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/maruosan78/mk-line-length-check/pkg/bilingual"
)

func buildArchive(t *testing.T, entries map[string]string) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return bytes.NewReader(buf.Bytes())
}

func parseDocument(t *testing.T, documentXML string) *File {
	t.Helper()
	r := buildArchive(t, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types/>`,
		"word/document.xml":   documentXML,
	})
	f, err := Parse(r, r.Size(), zap.NewNop())
	require.NoError(t, err)
	return f
}

const bilingualDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Preamble paragraph</w:t></w:r></w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>ID</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Source</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Target</w:t></w:r></w:p></w:tc>
      </w:tr>
      <w:tr>
        <w:tc><w:p><w:r><w:t>12 (note)</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t xml:space="preserve">Hello </w:t></w:r><w:r><w:t>world</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>Bonjour</w:t></w:r></w:p><w:p><w:r><w:t>le monde entier</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
  </w:body>
</w:document>`

func TestParseTables(t *testing.T) {
	f := parseDocument(t, bilingualDocumentXML)

	tables := f.Tables()
	require.Len(t, tables, 1)

	rows := tables[0].Rows()
	require.Len(t, rows, 2)

	header := rows[0].Cells()
	require.Len(t, header, 3)
	if got := header[0].Text(); got != "ID" {
		t.Errorf("Expected %q, got %q", "ID", got)
	}

	data := rows[1].Cells()
	require.Len(t, data, 3)
	if got := data[1].Text(); got != "Hello world" {
		t.Errorf("Expected runs to concatenate, got %q", got)
	}
	// Paragraphs inside one cell read as separate lines.
	if got := data[2].Text(); got != "Bonjour\nle monde entier" {
		t.Errorf("Expected paragraphs joined by newline, got %q", got)
	}
}

func TestParagraphSpecialRuns(t *testing.T) {
	para := &Paragraph{
		Runs: []Run{
			{Text: &Text{Text: "Line 1"}},
			{Tab: &Tab{}},
			{Text: &Text{Text: "Line 2"}},
			{Break: &Break{}},
			{Text: &Text{Text: "Line 3"}},
		},
	}

	text := ParagraphText(para)
	expected := "Line 1\tLine 2\nLine 3"
	if text != expected {
		t.Errorf("Expected %q, got %q", expected, text)
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("MissingDocumentXML", func(t *testing.T) {
		r := buildArchive(t, map[string]string{"other.xml": "<x/>"})
		_, err := Parse(r, r.Size(), zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "word/document.xml")
	})

	t.Run("NotAZip", func(t *testing.T) {
		r := bytes.NewReader([]byte("this is not a DOCX archive"))
		_, err := Parse(r, r.Size(), zap.NewNop())
		require.Error(t, err)
	})

	t.Run("MalformedXML", func(t *testing.T) {
		r := buildArchive(t, map[string]string{"word/document.xml": "<w:document><unclosed"})
		_, err := Parse(r, r.Size(), zap.NewNop())
		require.Error(t, err)
	})
}

// End to end: a synthetic DOCX flows through locate and analyze the same
// way a real memoQ export does.
func TestDocxThroughPipeline(t *testing.T) {
	f := parseDocument(t, bilingualDocumentXML)

	loc, err := bilingual.Locate(f)
	require.NoError(t, err)
	assert.Equal(t, 0, loc.HeaderRow)
	assert.Equal(t, 0, loc.IDColumn)

	normalizer, err := bilingual.NewNormalizer()
	require.NoError(t, err)
	analyzer, err := bilingual.NewAnalyzer(normalizer, 10, zap.NewNop())
	require.NoError(t, err)

	violations, err := analyzer.Analyze(loc)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "12", violations[0].DisplayID())
	assert.Equal(t, 15, violations[0].MaxLineLength, `"le monde entier"`)
	assert.Equal(t, 22, violations[0].SegmentLength)
}
