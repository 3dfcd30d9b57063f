package render

import (
	"fmt"
	"os"

	"github.com/bisagn/formalgen/internal/docx"
	"github.com/bisagn/formalgen/internal/domain/document"
	ierr "github.com/bisagn/formalgen/internal/errors"
)

const (
	attachmentImageWidthIn = 6.5
	logoHeightIn           = 0.9
)

// Fallback notice shown when attachment pages cannot be rasterized.
var rasterFallbackNotice = []string{
	"Note: Attached PDF pages could not be converted to images.",
	"This requires 'poppler' to be installed on your system.",
	"Please download the complete document as PDF to view all pages.",
}

// RenderDOCX builds the word-processor projection of a record. For
// Policy records with an attachment the attachment pages are embedded
// as images, degrading to a notice when the rasterizer is missing.
func (e *Engine) RenderDOCX(rec *document.Record) ([]byte, error) {
	d := docx.New()
	d.SetMargins(1.0)

	e.docxLogo(d)
	e.docxBody(d, rec)

	if rec.Attachment != nil {
		e.embedAttachmentPages(d, rec.Attachment.StoredPath)
	}

	out, err := d.Bytes()
	if err != nil {
		e.log.Errorf("docx render failed for %s: %v", rec.DocumentType, err)
		return nil, ierr.WithError(err).
			WithMessagef("docx output failed for %s", rec.DocumentType).
			WithHint("Document generation failed").
			Mark(ierr.ErrRender)
	}
	return out, nil
}

// docxLogo embeds the organisational logo centered, if present.
func (e *Engine) docxLogo(d *docx.Document) {
	raw, err := os.ReadFile(e.cfg.Assets.LogoPath)
	if err != nil {
		return
	}
	p := d.AddParagraph().SetAlignment(docx.AlignCenter)
	if err := p.AddImageHeight(d, raw, logoHeightIn); err != nil {
		e.log.Warnf("logo not embeddable in docx, skipping: %v", err)
		return
	}
	d.AddParagraph()
}

func (e *Engine) docxBody(d *docx.Document, rec *document.Record) {
	layout := LayoutFor(rec.DocumentType)
	lbl := labelsFor(rec.Language)

	// Header lines, centered bold 14pt.
	for _, line := range rec.Header.Lines() {
		p := d.AddParagraph().SetAlignment(docx.AlignCenter)
		p.AddRun(line).Bold().Size(14)
	}

	// Title, centered bold underlined 16pt.
	if title := e.title(rec); title != "" {
		p := d.AddParagraph().SetAlignment(docx.AlignCenter)
		p.AddRun(title).Bold().Underline().Size(16)
	}

	// Reference, bold 12pt.
	if layout.ShowReference {
		p := d.AddParagraph()
		p.AddRun(fmt.Sprintf("%s %s", lbl.Ref, rec.Reference)).Bold().Size(12)
	}

	// Date, right-aligned bold 12pt.
	p := d.AddParagraph().SetAlignment(docx.AlignRight)
	p.AddRun(fmt.Sprintf("%s %s", lbl.Date, rec.Date)).Bold().Size(12)

	// Subject, bold 12pt.
	if layout.ShowSubject {
		p := d.AddParagraph()
		p.AddRun(fmt.Sprintf("%s %s", lbl.Subject, rec.Subject)).Bold().Size(12)
	}

	// Body, justified 12pt.
	p = d.AddParagraph().SetAlignment(docx.AlignJustify)
	p.AddRun(rec.Body).Size(12)

	// Sender, right-aligned bold 12pt.
	p = d.AddParagraph().SetAlignment(docx.AlignRight)
	p.AddRun(rec.From).Bold().Size(12)
	d.AddParagraph()

	e.docxRecipients(d, rec, layout, lbl)

	if layout.ShowAttached {
		name := ""
		if rec.Attachment != nil {
			name = rec.Attachment.OriginalFilename
		}
		p = d.AddParagraph()
		p.AddRun(fmt.Sprintf("%s %s", lbl.Attached, name)).Size(12)
	}
}

func (e *Engine) docxRecipients(d *docx.Document, rec *document.Record, layout Layout, lbl labels) {
	switch layout.Recipients {
	case RecipientsSignatureTable:
		if len(rec.ToPeople) == 0 {
			return
		}
		t := d.AddTable(1.0, 3.5, 1.5)
		header := t.AddRow()
		for i, caption := range []string{lbl.SrNo, lbl.Name, lbl.Sign} {
			cell := header.Cell(i)
			cell.Paragraph().SetAlignment(docx.AlignCenter)
			cell.SetText(caption).Bold()
		}
		for i, person := range rec.ToPeople {
			row := t.AddRow()
			for c := 0; c < 3; c++ {
				row.Cell(c).Paragraph().SetAlignment(docx.AlignCenter)
			}
			row.Cell(0).SetText(fmt.Sprintf("%d", i+1))
			row.Cell(1).SetText(person.Name(rec.Language))
		}
	case RecipientsBullets:
		p := d.AddParagraph()
		p.AddRun(lbl.To).Bold().Size(12)
		for _, to := range rec.To {
			item := d.AddParagraph().SetBullet()
			item.AddRun(to).Size(11)
		}
	default:
		for _, to := range rec.To {
			p := d.AddParagraph()
			p.AddRun(to).Bold()
		}
	}
}

// embedAttachmentPages rasterizes each attachment page at 200 DPI and
// inserts it full width on its own page. A missing rasterizer degrades
// to the fallback notice; a single failing page is skipped so one bad
// page cannot abort the document.
func (e *Engine) embedAttachmentPages(d *docx.Document, storedPath string) {
	if _, err := os.Stat(storedPath); err != nil {
		e.log.Warnf("stored attachment %s missing, skipping embed: %v", storedPath, err)
		return
	}

	if !e.raster.Available() {
		e.log.Warnf("rasterizer %q unavailable, emitting fallback notice", e.cfg.Assets.RasterizerBinary)
		e.docxFallbackNotice(d)
		return
	}

	pages, err := PageCount(storedPath)
	if err != nil {
		e.log.Warnf("attachment %s page count failed, emitting fallback notice: %v", storedPath, err)
		e.docxFallbackNotice(d)
		return
	}

	d.AddPageBreak()
	embedded := 0
	for page := 1; page <= pages; page++ {
		if err := e.embedOnePage(d, storedPath, page, embedded > 0); err != nil {
			e.log.Warnf("attachment page %d of %s skipped: %v", page, storedPath, err)
			continue
		}
		embedded++
	}
	if embedded == 0 && pages > 0 {
		e.docxFallbackNotice(d)
	}
}

// embedOnePage writes one page image into the document. The temporary
// PNG lives exactly as long as the embed operation.
func (e *Engine) embedOnePage(d *docx.Document, storedPath string, page int, breakBefore bool) error {
	imgPath, err := e.raster.RenderPage(storedPath, page)
	if err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(imgPath); err != nil {
			e.log.Warnf("page image cleanup failed for %s: %v", imgPath, err)
		}
	}()

	raw, err := os.ReadFile(imgPath)
	if err != nil {
		return err
	}
	if breakBefore {
		d.AddPageBreak()
	}
	p := d.AddParagraph().SetAlignment(docx.AlignCenter)
	return p.AddImageWidth(d, raw, attachmentImageWidthIn)
}

func (e *Engine) docxFallbackNotice(d *docx.Document) {
	d.AddPageBreak()
	for i, line := range rasterFallbackNotice {
		p := d.AddParagraph().SetAlignment(docx.AlignCenter)
		run := p.AddRun(line).Italic()
		if i > 0 {
			run.Size(10)
		}
	}
}
