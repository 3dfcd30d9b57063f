package docx

import (
	"fmt"
	"strings"
)

// Paragraph is one block of runs with shared alignment and list
// formatting.
type Paragraph struct {
	alignment Alignment
	bullet    bool
	runs      []*Run
}

// Run is a span of identically formatted text (or a page break or an
// inline image).
type Run struct {
	text      string
	bold      bool
	italic    bool
	underline bool
	// sizeHalfPoints is the font size in half points; 0 keeps the
	// application default.
	sizeHalfPoints int
	pageBreak      bool
	image          *imageRef
}

// SetAlignment sets the paragraph justification.
func (p *Paragraph) SetAlignment(a Alignment) *Paragraph {
	p.alignment = a
	return p
}

// SetBullet renders the paragraph as a bullet list item.
func (p *Paragraph) SetBullet() *Paragraph {
	p.bullet = true
	return p
}

// AddRun appends a text run.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{text: text}
	p.runs = append(p.runs, r)
	return r
}

// Bold makes the run bold.
func (r *Run) Bold() *Run {
	r.bold = true
	return r
}

// Italic makes the run italic.
func (r *Run) Italic() *Run {
	r.italic = true
	return r
}

// Underline gives the run a single underline.
func (r *Run) Underline() *Run {
	r.underline = true
	return r
}

// Size sets the font size in points.
func (r *Run) Size(points float64) *Run {
	r.sizeHalfPoints = int(points * 2)
	return r
}

func (p *Paragraph) writeXML(sb *strings.Builder) {
	sb.WriteString(`<w:p>`)
	if p.alignment != AlignLeft || p.bullet {
		sb.WriteString(`<w:pPr>`)
		if p.bullet {
			sb.WriteString(`<w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr>`)
		}
		if p.alignment != AlignLeft {
			sb.WriteString(fmt.Sprintf(`<w:jc w:val="%s"/>`, p.alignment))
		}
		sb.WriteString(`</w:pPr>`)
	}
	for _, r := range p.runs {
		r.writeXML(sb)
	}
	sb.WriteString(`</w:p>`)
}

func (r *Run) writeXML(sb *strings.Builder) {
	sb.WriteString(`<w:r>`)
	if r.bold || r.italic || r.underline || r.sizeHalfPoints > 0 {
		sb.WriteString(`<w:rPr>`)
		if r.bold {
			sb.WriteString(`<w:b/>`)
		}
		if r.italic {
			sb.WriteString(`<w:i/>`)
		}
		if r.underline {
			sb.WriteString(`<w:u w:val="single"/>`)
		}
		if r.sizeHalfPoints > 0 {
			sb.WriteString(fmt.Sprintf(`<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, r.sizeHalfPoints, r.sizeHalfPoints))
		}
		sb.WriteString(`</w:rPr>`)
	}
	switch {
	case r.pageBreak:
		sb.WriteString(`<w:br w:type="page"/>`)
	case r.image != nil:
		r.image.writeXML(sb)
	default:
		// Preserve user line breaks inside a run.
		lines := strings.Split(r.text, "\n")
		for i, line := range lines {
			if i > 0 {
				sb.WriteString(`<w:br/>`)
			}
			sb.WriteString(fmt.Sprintf(`<w:t xml:space="preserve">%s</w:t>`, escape(line)))
		}
	}
	sb.WriteString(`</w:r>`)
}
