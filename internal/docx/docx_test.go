package docx

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readArchive(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		files[f.Name] = string(content)
	}
	return files
}

func smallPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.White)
		img.Set(x, 1, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDocumentContainerParts(t *testing.T) {
	d := New()
	d.AddParagraph().AddRun("hello")

	data, err := d.Bytes()
	require.NoError(t, err)

	files := readArchive(t, data)
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/document.xml",
		"word/numbering.xml",
	} {
		assert.Contains(t, files, name)
	}
	assert.Contains(t, files["word/document.xml"], "hello")
}

func TestRunFormattingAndEscaping(t *testing.T) {
	d := New()
	p := d.AddParagraph().SetAlignment(AlignCenter)
	p.AddRun("Terms & <Conditions>").Bold().Underline().Size(16)

	data, err := d.Bytes()
	require.NoError(t, err)

	doc := readArchive(t, data)["word/document.xml"]
	assert.Contains(t, doc, "Terms &amp; &lt;Conditions&gt;")
	assert.Contains(t, doc, `<w:jc w:val="center"/>`)
	assert.Contains(t, doc, "<w:b/>")
	assert.Contains(t, doc, `<w:u w:val="single"/>`)
	// Half-points.
	assert.Contains(t, doc, `<w:sz w:val="32"/>`)
}

func TestBulletParagraphUsesNumbering(t *testing.T) {
	d := New()
	d.AddParagraph().SetBullet().AddRun("first item")

	data, err := d.Bytes()
	require.NoError(t, err)

	doc := readArchive(t, data)["word/document.xml"]
	assert.Contains(t, doc, "<w:numPr>")
	assert.Contains(t, doc, `<w:numId w:val="1"/>`)
}

func TestTableGridWidths(t *testing.T) {
	d := New()
	tbl := d.AddTable(1.0, 3.5, 1.5)
	row := tbl.AddRow()
	row.Cell(0).SetText("1")
	row.Cell(1).SetText("Name")

	data, err := d.Bytes()
	require.NoError(t, err)

	doc := readArchive(t, data)["word/document.xml"]
	// Inches in twips.
	assert.Contains(t, doc, `<w:gridCol w:w="1440"/>`)
	assert.Contains(t, doc, `<w:gridCol w:w="5040"/>`)
	assert.Contains(t, doc, `<w:gridCol w:w="2160"/>`)
	assert.Contains(t, doc, `<w:tblLayout w:type="fixed"/>`)
}

func TestInlineImageEmbedding(t *testing.T) {
	d := New()
	p := d.AddParagraph().SetAlignment(AlignCenter)
	require.NoError(t, p.AddImageWidth(d, smallPNG(t), 6.5))

	data, err := d.Bytes()
	require.NoError(t, err)

	files := readArchive(t, data)
	assert.Contains(t, files, "word/media/image1.png")
	assert.Contains(t, files["word/document.xml"], "<wp:inline")
	assert.Contains(t, files["word/_rels/document.xml.rels"], "media/image1.png")
}

func TestImageRejectsGarbage(t *testing.T) {
	d := New()
	p := d.AddParagraph()
	assert.Error(t, p.AddImageWidth(d, []byte("not an image"), 6.5))
}

func TestPageBreak(t *testing.T) {
	d := New()
	d.AddParagraph().AddRun("page one")
	d.AddPageBreak()
	d.AddParagraph().AddRun("page two")

	data, err := d.Bytes()
	require.NoError(t, err)

	doc := readArchive(t, data)["word/document.xml"]
	assert.Contains(t, doc, `<w:br w:type="page"/>`)
}

func TestMarginsInSectionProperties(t *testing.T) {
	d := New()
	d.SetMargins(1.0)
	d.AddParagraph().AddRun("x")

	data, err := d.Bytes()
	require.NoError(t, err)

	doc := readArchive(t, data)["word/document.xml"]
	assert.Contains(t, doc, `w:top="1440"`)
	assert.Contains(t, doc, `w:left="1440"`)
}
