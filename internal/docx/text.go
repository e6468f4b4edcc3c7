package docx

import "strings"

// CellText extracts the plain text of a table cell: paragraph texts joined
// by newlines, matching how the cell reads in the rendered document.
func CellText(cell *TableCell) string {
	if cell == nil {
		return ""
	}

	texts := make([]string, 0, len(cell.Paragraphs))
	for i := range cell.Paragraphs {
		texts = append(texts, ParagraphText(&cell.Paragraphs[i]))
	}
	return strings.Join(texts, "\n")
}

// ParagraphText extracts all text from a paragraph.
func ParagraphText(para *Paragraph) string {
	if para == nil {
		return ""
	}

	var b strings.Builder
	for i := range para.Runs {
		b.WriteString(runText(&para.Runs[i]))
	}
	return b.String()
}

// runText extracts text from a single run.
func runText(run *Run) string {
	if run == nil {
		return ""
	}

	if run.Text != nil {
		return run.Text.Text
	}
	if run.Tab != nil {
		return "\t"
	}
	if run.Break != nil {
		if run.Break.Type == "page" {
			return "\n\n"
		}
		return "\n"
	}

	// Drawings and other complex elements carry no measurable text.
	return ""
}
