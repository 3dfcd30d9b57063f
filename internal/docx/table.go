package docx

import (
	"fmt"
	"strings"
)

// Table is a bordered grid table with fixed column widths.
type Table struct {
	colWidths []int // twips
	rows      []*TableRow
}

// TableRow is a single table row.
type TableRow struct {
	table *Table
	cells []*TableCell
}

// TableCell holds one paragraph.
type TableCell struct {
	width     int
	paragraph *Paragraph
}

// AddRow appends a row with one cell per grid column.
func (t *Table) AddRow() *TableRow {
	row := &TableRow{table: t}
	for _, w := range t.colWidths {
		row.cells = append(row.cells, &TableCell{width: w, paragraph: &Paragraph{}})
	}
	t.rows = append(t.rows, row)
	return row
}

// Cell returns the cell at the given column index.
func (r *TableRow) Cell(i int) *TableCell {
	return r.cells[i]
}

// Paragraph returns the cell's paragraph for formatting.
func (c *TableCell) Paragraph() *Paragraph {
	return c.paragraph
}

// SetText replaces the cell content with a single plain run.
func (c *TableCell) SetText(text string) *Run {
	c.paragraph.runs = nil
	return c.paragraph.AddRun(text)
}

const tableBorders = `<w:tblBorders>` +
	`<w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`</w:tblBorders>`

func (t *Table) writeXML(sb *strings.Builder) {
	sb.WriteString(`<w:tbl>`)
	sb.WriteString(`<w:tblPr>`)
	sb.WriteString(`<w:tblW w:w="0" w:type="auto"/>`)
	sb.WriteString(tableBorders)
	sb.WriteString(`<w:tblLayout w:type="fixed"/>`)
	sb.WriteString(`</w:tblPr>`)
	sb.WriteString(`<w:tblGrid>`)
	for _, w := range t.colWidths {
		sb.WriteString(fmt.Sprintf(`<w:gridCol w:w="%d"/>`, w))
	}
	sb.WriteString(`</w:tblGrid>`)
	for _, row := range t.rows {
		sb.WriteString(`<w:tr>`)
		for _, cell := range row.cells {
			sb.WriteString(`<w:tc>`)
			sb.WriteString(fmt.Sprintf(`<w:tcPr><w:tcW w:w="%d" w:type="dxa"/></w:tcPr>`, cell.width))
			cell.paragraph.writeXML(sb)
			sb.WriteString(`</w:tc>`)
		}
		sb.WriteString(`</w:tr>`)
	}
	sb.WriteString(`</w:tbl>`)
}
