package docx

import "encoding/xml"

// WordprocessingML structures for word/document.xml, trimmed to what table
// text extraction needs. Tags match local element names, so the w: prefix
// of the OOXML namespace is irrelevant to unmarshalling.

// WordDocument represents the main document.xml structure.
type WordDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    Body     `xml:"body"`
}

// Body represents the document body.
type Body struct {
	Paragraphs []Paragraph `xml:"p"`
	Tables     []Table     `xml:"tbl"`
}

// Table represents a table element.
type Table struct {
	XMLName xml.Name   `xml:"tbl"`
	Rows    []TableRow `xml:"tr"`
}

// TableRow represents a table row.
type TableRow struct {
	XMLName xml.Name    `xml:"tr"`
	Cells   []TableCell `xml:"tc"`
}

// TableCell represents a table cell. Bilingual exports keep one paragraph
// per visual line inside a cell.
type TableCell struct {
	XMLName    xml.Name    `xml:"tc"`
	Paragraphs []Paragraph `xml:"p"`
}

// Paragraph represents a paragraph element.
type Paragraph struct {
	XMLName xml.Name `xml:"p"`
	Runs    []Run    `xml:"r"`
}

// Run represents a text run.
type Run struct {
	XMLName xml.Name `xml:"r"`
	Text    *Text    `xml:"t"`
	Tab     *Tab     `xml:"tab"`
	Break   *Break   `xml:"br"`
}

// Text represents actual text content.
type Text struct {
	XMLName xml.Name `xml:"t"`
	Text    string   `xml:",chardata"`
	Space   string   `xml:"space,attr,omitempty"`
}

// Tab represents a tab character.
type Tab struct {
	XMLName xml.Name `xml:"tab"`
}

// Break represents a line or page break.
type Break struct {
	XMLName xml.Name `xml:"br"`
	Type    string   `xml:"type,attr,omitempty"`
}
