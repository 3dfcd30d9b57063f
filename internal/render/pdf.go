package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"

	"github.com/bisagn/formalgen/internal/domain/document"
	ierr "github.com/bisagn/formalgen/internal/errors"
	"github.com/bisagn/formalgen/internal/types"
	"github.com/jung-kurt/gofpdf"
)

// Page geometry contract: A4, 1 inch margins, fixed point scale.
const (
	pageMarginMM    = 25.4
	pageWidthMM     = 210.0
	logoHeightMM    = 22.9 // 0.9 in
	lineHeightMM    = 7.0
	logoJPEGQuality = 85
)

const devanagariFamily = "devanagari"

// RenderPDF produces the paginated PDF projection of a record. Any
// engine failure surfaces as a render error; partial output is never
// returned.
func (e *Engine) RenderPDF(rec *document.Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMarginMM, pageMarginMM, pageMarginMM)
	pdf.SetAutoPageBreak(true, pageMarginMM)

	family := e.registerFonts(pdf, rec.Language)
	pdf.AddPage()

	e.drawLogo(pdf)
	e.drawBody(pdf, rec, family)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		e.log.Errorf("pdf render failed for %s: %v", rec.DocumentType, err)
		return nil, ierr.WithError(err).
			WithMessagef("pdf output failed for %s", rec.DocumentType).
			WithHint("PDF generation failed").
			Mark(ierr.ErrRender)
	}
	return buf.Bytes(), nil
}

// registerFonts makes a Devanagari-capable family available for Hindi
// documents when the configured TTF exists, falling back to a core
// font otherwise.
func (e *Engine) registerFonts(pdf *gofpdf.Fpdf, lang types.Language) string {
	if lang != types.LanguageHindi {
		return "Times"
	}
	path := e.cfg.Assets.HindiFontPath
	if _, err := os.Stat(path); err != nil {
		e.log.Warnf("devanagari font %s unavailable, using core font: %v", path, err)
		return "Times"
	}
	for _, style := range []string{"", "B", "I", "BI"} {
		pdf.AddUTF8Font(devanagariFamily, style, path)
	}
	return devanagariFamily
}

// drawLogo embeds the organisational logo centered at the top when the
// configured file exists; absence is tolerated silently.
func (e *Engine) drawLogo(pdf *gofpdf.Fpdf) {
	path := e.cfg.Assets.LogoPath
	raw, err := os.ReadFile(path)
	if err != nil {
		return
	}
	compressed, err := recompressJPEG(raw, logoJPEGQuality)
	if err != nil {
		e.log.Warnf("logo %s not decodable, skipping: %v", path, err)
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	info := pdf.RegisterImageOptionsReader("org-logo", opts, bytes.NewReader(compressed))
	if info == nil || pdf.Err() {
		// A bad logo must not break document generation.
		pdf.ClearError()
		return
	}
	width := info.Width() * logoHeightMM / info.Height()
	x := (pageWidthMM - width) / 2
	pdf.ImageOptions("org-logo", x, pageMarginMM, 0, logoHeightMM, false, opts, 0, "")
	pdf.SetY(pageMarginMM + logoHeightMM + lineHeightMM/2)
}

// recompressJPEG re-encodes image bytes as lossy JPEG to bound the
// embedded size.
func recompressJPEG(raw []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (e *Engine) drawBody(pdf *gofpdf.Fpdf, rec *document.Record, family string) {
	layout := LayoutFor(rec.DocumentType)
	lbl := labelsFor(rec.Language)

	// Header lines, centered bold 14pt.
	pdf.SetFont(family, "B", 14)
	for _, line := range rec.Header.Lines() {
		pdf.CellFormat(0, lineHeightMM, line, "", 1, "C", false, 0, "")
	}

	// Title, centered bold underlined 16pt.
	if title := e.title(rec); title != "" {
		pdf.Ln(lineHeightMM / 2)
		pdf.SetFont(family, "BU", 16)
		pdf.CellFormat(0, lineHeightMM+1, title, "", 1, "C", false, 0, "")
	}
	pdf.Ln(lineHeightMM / 2)

	// Reference left and date right, bold 12pt.
	pdf.SetFont(family, "B", 12)
	if layout.ShowReference {
		pdf.CellFormat(95, lineHeightMM, fmt.Sprintf("%s %s", lbl.Ref, rec.Reference), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, lineHeightMM, fmt.Sprintf("%s %s", lbl.Date, rec.Date), "", 1, "R", false, 0, "")
	} else {
		pdf.CellFormat(0, lineHeightMM, fmt.Sprintf("%s %s", lbl.Date, rec.Date), "", 1, "R", false, 0, "")
	}

	// Subject, bold 12pt.
	if layout.ShowSubject {
		pdf.Ln(lineHeightMM / 2)
		pdf.SetFont(family, "B", 12)
		pdf.MultiCell(0, lineHeightMM, fmt.Sprintf("%s %s", lbl.Subject, rec.Subject), "", "L", false)
	}

	// Body, justified 12pt.
	pdf.Ln(lineHeightMM / 2)
	pdf.SetFont(family, "", 12)
	pdf.MultiCell(0, lineHeightMM, rec.Body, "", "J", false)

	// Sender, right-aligned bold 12pt.
	pdf.Ln(lineHeightMM)
	pdf.SetFont(family, "B", 12)
	pdf.CellFormat(0, lineHeightMM, rec.From, "", 1, "R", false, 0, "")

	e.drawRecipients(pdf, rec, layout, lbl, family)

	if layout.ShowAttached {
		pdf.Ln(lineHeightMM / 2)
		pdf.SetFont(family, "", 12)
		name := ""
		if rec.Attachment != nil {
			name = rec.Attachment.OriginalFilename
		}
		pdf.CellFormat(0, lineHeightMM, fmt.Sprintf("%s %s", lbl.Attached, name), "", 1, "L", false, 0, "")
	}
}

func (e *Engine) drawRecipients(pdf *gofpdf.Fpdf, rec *document.Record, layout Layout, lbl labels, family string) {
	pdf.Ln(lineHeightMM / 2)

	switch layout.Recipients {
	case RecipientsSignatureTable:
		if len(rec.ToPeople) == 0 {
			return
		}
		pdf.SetFont(family, "B", 12)
		pdf.CellFormat(0, lineHeightMM, lbl.To, "", 1, "L", false, 0, "")
		// Signature table, fixed widths 1.0 / 3.5 / 1.5 inches.
		const wSr, wName, wSign = 25.4, 88.9, 38.1
		pdf.CellFormat(wSr, lineHeightMM, lbl.SrNo, "1", 0, "C", false, 0, "")
		pdf.CellFormat(wName, lineHeightMM, lbl.Name, "1", 0, "C", false, 0, "")
		pdf.CellFormat(wSign, lineHeightMM, lbl.Sign, "1", 1, "C", false, 0, "")
		pdf.SetFont(family, "", 12)
		for i, person := range rec.ToPeople {
			pdf.CellFormat(wSr, lineHeightMM, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
			pdf.CellFormat(wName, lineHeightMM, person.Name(rec.Language), "1", 0, "C", false, 0, "")
			pdf.CellFormat(wSign, lineHeightMM, "", "1", 1, "C", false, 0, "")
		}
	case RecipientsBullets:
		if len(rec.To) == 0 {
			return
		}
		pdf.SetFont(family, "B", 12)
		pdf.CellFormat(0, lineHeightMM, lbl.To, "", 1, "L", false, 0, "")
		pdf.SetFont(family, "", 11)
		for _, to := range rec.To {
			pdf.CellFormat(0, lineHeightMM, "• "+to, "", 1, "L", false, 0, "")
		}
	default:
		if len(rec.To) == 0 {
			return
		}
		pdf.SetFont(family, "B", 12)
		pdf.CellFormat(0, lineHeightMM, lbl.To, "", 1, "L", false, 0, "")
		pdf.SetFont(family, "", 12)
		for _, to := range rec.To {
			pdf.CellFormat(0, lineHeightMM, to, "", 1, "L", false, 0, "")
		}
	}
}
