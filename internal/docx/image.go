package docx

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"
)

type imagePart struct {
	index int
	ext   string
	data  []byte
}

func (p imagePart) fileName() string {
	return fmt.Sprintf("image%d.%s", p.index, p.ext)
}

func (p imagePart) relID() string {
	return fmt.Sprintf("rIdImg%d", p.index)
}

type imageRef struct {
	part   imagePart
	cx, cy int64 // display extent in EMU
}

// AddImageWidth embeds an image scaled to the given width in inches,
// preserving its aspect ratio. The image data must be PNG or JPEG.
func (p *Paragraph) AddImageWidth(d *Document, data []byte, widthInches float64) error {
	w, h, err := dimensions(data)
	if err != nil {
		return err
	}
	cx := EMU(widthInches)
	cy := int64(float64(cx) * float64(h) / float64(w))
	return p.addImage(d, data, cx, cy)
}

// AddImageHeight embeds an image scaled to the given height in inches,
// preserving its aspect ratio.
func (p *Paragraph) AddImageHeight(d *Document, data []byte, heightInches float64) error {
	w, h, err := dimensions(data)
	if err != nil {
		return err
	}
	cy := EMU(heightInches)
	cx := int64(float64(cy) * float64(w) / float64(h))
	return p.addImage(d, data, cx, cy)
}

func dimensions(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("image has empty dimensions")
	}
	return cfg.Width, cfg.Height, nil
}

func (p *Paragraph) addImage(d *Document, data []byte, cx, cy int64) error {
	ext := "png"
	if bytes.HasPrefix(data, []byte{0xFF, 0xD8}) {
		ext = "jpeg"
	}
	part := imagePart{index: len(d.images) + 1, ext: ext, data: data}
	d.images = append(d.images, part)

	r := &Run{image: &imageRef{part: part, cx: cx, cy: cy}}
	p.runs = append(p.runs, r)
	return nil
}

func (ref *imageRef) writeXML(sb *strings.Builder) {
	id := ref.part.index
	name := fmt.Sprintf("Picture %d", id)
	sb.WriteString(`<w:drawing>`)
	sb.WriteString(`<wp:inline distT="0" distB="0" distL="0" distR="0">`)
	sb.WriteString(fmt.Sprintf(`<wp:extent cx="%d" cy="%d"/>`, ref.cx, ref.cy))
	sb.WriteString(fmt.Sprintf(`<wp:docPr id="%d" name="%s"/>`, id, name))
	sb.WriteString(`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">`)
	sb.WriteString(`<pic:pic>`)
	sb.WriteString(fmt.Sprintf(`<pic:nvPicPr><pic:cNvPr id="%d" name="%s"/><pic:cNvPicPr/></pic:nvPicPr>`, id, name))
	sb.WriteString(fmt.Sprintf(`<pic:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`, ref.part.relID()))
	sb.WriteString(`<pic:spPr><a:xfrm><a:off x="0" y="0"/>`)
	sb.WriteString(fmt.Sprintf(`<a:ext cx="%d" cy="%d"/>`, ref.cx, ref.cy))
	sb.WriteString(`</a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`)
	sb.WriteString(`</pic:pic>`)
	sb.WriteString(`</a:graphicData></a:graphic>`)
	sb.WriteString(`</wp:inline>`)
	sb.WriteString(`</w:drawing>`)
}
