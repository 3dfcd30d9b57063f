// Package render projects a document record into its three output
// encodings: HTML preview, paginated PDF and an editable
// word-processing document. Pagination rules, typography and the
// Policy attachment handling live here.
package render

import (
	"html/template"
	"path/filepath"
	"strings"

	"github.com/bisagn/formalgen/internal/config"
	"github.com/bisagn/formalgen/internal/docdata"
	"github.com/bisagn/formalgen/internal/domain/document"
	ierr "github.com/bisagn/formalgen/internal/errors"
	"github.com/bisagn/formalgen/internal/logger"
)

// Engine renders document records. Each projection is a pure function
// of (record, static assets); the only state is parsed templates and
// asset locations.
type Engine struct {
	cfg    *config.Configuration
	log    *logger.Logger
	data   *docdata.Loader
	tmpl   *template.Template
	merger *Merger
	raster *Rasterizer
}

// NewEngine parses the preview templates and wires the attachment
// merger and rasterizer.
func NewEngine(cfg *config.Configuration, data *docdata.Loader, log *logger.Logger) (*Engine, error) {
	tmpl, err := template.New("previews").
		Funcs(template.FuncMap{
			"add": func(a, b int) int { return a + b },
		}).
		ParseGlob(filepath.Join(cfg.Assets.TemplateDir, "*.html"))
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to parse preview templates").
			WithHint("Document generation failed").
			Mark(ierr.ErrSystem)
	}
	return &Engine{
		cfg:    cfg,
		log:    log,
		data:   data,
		tmpl:   tmpl,
		merger: NewMerger(log),
		raster: NewRasterizer(cfg.Assets.RasterizerBinary, log),
	}, nil
}

// viewContext is the exact field set a preview template receives.
type viewContext struct {
	Record *document.Record
	Title  string
	Labels labels
	Layout Layout
	// AttachmentName is the user-facing name of the uploaded PDF.
	AttachmentName string
	// AttachmentDataURI inlines the uploaded PDF for the preview only;
	// it is never cached or persisted.
	AttachmentDataURI template.URL
}

// HTMLOptions carries preview-only extras.
type HTMLOptions struct {
	AttachmentDataURI string
}

// RenderHTML executes the per-type preview template against the exact
// field set its skeleton requires.
func (e *Engine) RenderHTML(rec *document.Record, opts HTMLOptions) (string, error) {
	layout := LayoutFor(rec.DocumentType)

	ctx := viewContext{
		Record:            rec,
		Title:             e.title(rec),
		Labels:            labelsFor(rec.Language),
		Layout:            layout,
		AttachmentDataURI: template.URL(opts.AttachmentDataURI),
	}
	if rec.Attachment != nil {
		ctx.AttachmentName = rec.Attachment.OriginalFilename
	}

	var sb strings.Builder
	if err := e.tmpl.ExecuteTemplate(&sb, layout.TemplateName, ctx); err != nil {
		return "", ierr.WithError(err).
			WithMessagef("preview template %s failed", layout.TemplateName).
			WithHint("Document generation failed").
			Mark(ierr.ErrRender)
	}
	return sb.String(), nil
}

func (e *Engine) title(rec *document.Record) string {
	if rec.Title != "" {
		return rec.Title
	}
	return LayoutFor(rec.DocumentType).Title(e.data.Get(rec.DocumentType), rec.Language)
}

// Merger exposes the attachment merger for the service layer.
func (e *Engine) Merger() *Merger {
	return e.merger
}

// CanEmbedAttachments reports whether attachment pages can be
// rasterized into the word-processor output. When false, RenderDOCX
// emits the fallback notice instead.
func (e *Engine) CanEmbedAttachments() bool {
	return e.raster.Available()
}
