// Package docx builds OOXML word-processing documents directly as a
// ZIP archive of XML parts. It covers the structures the rendering
// engine needs: aligned paragraphs with styled runs, page breaks,
// bullet lists, bordered grid tables with fixed column widths, inline
// images and section margins.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Measurement units used by OOXML.
const (
	twipsPerInch = 1440
	emuPerInch   = 914400
)

// Twips converts inches to twentieths of a point.
func Twips(inches float64) int {
	return int(inches * twipsPerInch)
}

// EMU converts inches to English Metric Units.
func EMU(inches float64) int64 {
	return int64(inches * emuPerInch)
}

// Alignment is a paragraph justification value.
type Alignment string

const (
	AlignLeft    Alignment = ""
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "both"
)

// Document is an in-memory word-processing document.
type Document struct {
	blocks  []block
	images  []imagePart
	margins margins
}

type margins struct {
	top, bottom, left, right int
}

type block interface {
	writeXML(sb *strings.Builder)
}

// New returns an empty document with 1 inch margins.
func New() *Document {
	return &Document{
		margins: margins{
			top:    twipsPerInch,
			bottom: twipsPerInch,
			left:   twipsPerInch,
			right:  twipsPerInch,
		},
	}
}

// SetMargins sets all four page margins, in inches.
func (d *Document) SetMargins(inches float64) {
	t := Twips(inches)
	d.margins = margins{top: t, bottom: t, left: t, right: t}
}

// AddParagraph appends an empty paragraph.
func (d *Document) AddParagraph() *Paragraph {
	p := &Paragraph{}
	d.blocks = append(d.blocks, p)
	return p
}

// AddPageBreak appends a paragraph holding a single page break.
func (d *Document) AddPageBreak() {
	p := d.AddParagraph()
	p.runs = append(p.runs, &Run{pageBreak: true})
}

// AddTable appends a bordered table with fixed column widths given in
// inches.
func (d *Document) AddTable(colWidths ...float64) *Table {
	t := &Table{}
	for _, w := range colWidths {
		t.colWidths = append(t.colWidths, Twips(w))
	}
	d.blocks = append(d.blocks, t)
	return t
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// Write serialises the document as a DOCX archive.
func (d *Document) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", d.contentTypesXML()},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", d.documentRelsXML()},
		{"word/numbering.xml", numberingXML},
		{"word/document.xml", d.documentXML()},
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return fmt.Errorf("write %s: %w", part.name, err)
		}
	}

	for _, img := range d.images {
		f, err := zw.Create("word/media/" + img.fileName())
		if err != nil {
			return fmt.Errorf("create media %s: %w", img.fileName(), err)
		}
		if _, err := f.Write(img.data); err != nil {
			return fmt.Errorf("write media %s: %w", img.fileName(), err)
		}
	}

	return zw.Close()
}

// Bytes serialises the document into memory.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Document) contentTypesXML() string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	sb.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	sb.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	sb.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
	sb.WriteString(`<Default Extension="jpeg" ContentType="image/jpeg"/>`)
	sb.WriteString(`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>`)
	sb.WriteString(`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>`)
	sb.WriteString(`</Types>`)
	return sb.String()
}

const rootRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

func (d *Document) documentRelsXML() string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	sb.WriteString(`<Relationship Id="rIdNum1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>`)
	for _, img := range d.images {
		sb.WriteString(fmt.Sprintf(
			`<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/%s"/>`,
			img.relID(), img.fileName()))
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

// numberingXML defines one bullet list numbering (numId 1).
const numberingXML = xml.Header + `<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:abstractNum w:abstractNumId="0">` +
	`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="&#8226;"/><w:lvlJc w:val="left"/>` +
	`<w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl>` +
	`</w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`</w:numbering>`

func (d *Document) documentXML() string {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	sb.WriteString(`<w:document` +
		` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
		` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"` +
		` xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
		` xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">`)
	sb.WriteString(`<w:body>`)
	for _, b := range d.blocks {
		b.writeXML(&sb)
	}
	sb.WriteString(`<w:sectPr>`)
	sb.WriteString(`<w:pgSz w:w="11906" w:h="16838"/>`) // A4
	sb.WriteString(fmt.Sprintf(
		`<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/>`,
		d.margins.top, d.margins.right, d.margins.bottom, d.margins.left))
	sb.WriteString(`</w:sectPr>`)
	sb.WriteString(`</w:body>`)
	sb.WriteString(`</w:document>`)
	return sb.String()
}
