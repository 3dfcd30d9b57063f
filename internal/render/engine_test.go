package render

import (
	"bytes"
	"compress/zlib"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/bisagn/formalgen/internal/config"
	"github.com/bisagn/formalgen/internal/docdata"
	"github.com/bisagn/formalgen/internal/domain/document"
	"github.com/bisagn/formalgen/internal/logger"
	"github.com/bisagn/formalgen/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine builds an engine against scratch asset directories.
func newTestEngine(t *testing.T) (*Engine, *config.Configuration) {
	t.Helper()

	root := t.TempDir()
	cfg := config.GetDefaultConfig()

	tmplDir := filepath.Join(root, "templates")
	require.NoError(t, os.MkdirAll(tmplDir, 0o755))
	tmpl := `<html><body><h1>{{ .Title }}</h1><p>{{ .Labels.Date }} {{ .Record.Date }}</p><div>{{ .Record.Body }}</div>{{ if .AttachmentName }}<span>{{ .Labels.Attached }} {{ .AttachmentName }}</span>{{ end }}</body></html>`
	for _, name := range []string{"office_order.html", "circular.html", "policy.html"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmplDir, name), []byte(tmpl), 0o644))
	}

	cfg.Assets.TemplateDir = tmplDir
	cfg.Assets.DocumentDataDir = filepath.Join(root, "documents")
	cfg.Assets.RasterizerBinary = "formalgen-no-such-rasterizer"

	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)

	engine, err := NewEngine(cfg, docdata.NewLoader(cfg, log), log)
	require.NoError(t, err)
	return engine, cfg
}

func officeOrderRecord() *document.Record {
	return &document.Record{
		DocumentType: types.DocumentTypeOfficeOrder,
		Language:     types.LanguageEnglish,
		Header: document.Header{
			OrgName:    "BISAG-N",
			Ministry:   "MeitY",
			Government: "Government of India",
		},
		Title:     "Office Order",
		Reference: "BISAG-N/Office Order/2026/",
		Date:      "16-02-2026",
		Body:      "All officers are directed to attend.",
		From:      "Director General",
		To:        []string{"Senior Manager", "Project Manager"},
	}
}

func TestRenderHTML(t *testing.T) {
	engine, _ := newTestEngine(t)

	html, err := engine.RenderHTML(officeOrderRecord(), HTMLOptions{})
	require.NoError(t, err)

	assert.Contains(t, html, "Office Order")
	assert.Contains(t, html, "Date : 16-02-2026")
	assert.Contains(t, html, "All officers are directed to attend.")
}

func TestRenderHTMLHindiLabels(t *testing.T) {
	engine, _ := newTestEngine(t)

	rec := officeOrderRecord()
	rec.Language = types.LanguageHindi

	html, err := engine.RenderHTML(rec, HTMLOptions{})
	require.NoError(t, err)
	assert.Contains(t, html, "दिनांक :")
}

func TestRenderHTMLMissingTemplate(t *testing.T) {
	engine, _ := newTestEngine(t)

	rec := officeOrderRecord()
	rec.DocumentType = types.DocumentType("Memo")

	_, err := engine.RenderHTML(rec, HTMLOptions{})
	assert.Error(t, err)
}

func TestRenderPDF(t *testing.T) {
	engine, _ := newTestEngine(t)

	data, err := engine.RenderPDF(officeOrderRecord())
	require.NoError(t, err)

	require.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))

	pages, err := PageCountBytes(data)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

// decodePDFStreams inflates every compressed object stream so tests
// can inspect the page content operators.
func decodePDFStreams(t *testing.T, data []byte) string {
	t.Helper()
	var out strings.Builder
	rest := data
	for {
		idx := bytes.Index(rest, []byte("stream\n"))
		if idx < 0 {
			break
		}
		rest = rest[idx+len("stream\n"):]
		end := bytes.Index(rest, []byte("endstream"))
		if end < 0 {
			break
		}
		zr, err := zlib.NewReader(bytes.NewReader(rest[:end]))
		if err == nil {
			if decoded, err := io.ReadAll(zr); err == nil {
				out.Write(decoded)
			}
			zr.Close()
		}
		rest = rest[end:]
	}
	return out.String()
}

// fontSelectorBefore returns the last font selected in the content
// stream before the given text literal was drawn.
func fontSelectorBefore(t *testing.T, content, literal string) string {
	t.Helper()
	idx := strings.Index(content, "("+literal+")")
	require.GreaterOrEqual(t, idx, 0, "literal %q not found in content stream", literal)
	selectors := regexp.MustCompile(`/F[0-9a-f]+`).FindAllString(content[:idx], -1)
	require.NotEmpty(t, selectors)
	return selectors[len(selectors)-1]
}

func TestRenderPDFPlainRecipientsNotBold(t *testing.T) {
	engine, _ := newTestEngine(t)

	data, err := engine.RenderPDF(officeOrderRecord())
	require.NoError(t, err)

	content := decodePDFStreams(t, data)
	labelFont := fontSelectorBefore(t, content, "To :")
	recipientFont := fontSelectorBefore(t, content, "Senior Manager")
	bodyFont := fontSelectorBefore(t, content, "All officers are directed to attend.")

	assert.NotEqual(t, labelFont, recipientFont)
	assert.Equal(t, bodyFont, recipientFont)
}

func TestRenderPDFCircularSignatureTable(t *testing.T) {
	engine, _ := newTestEngine(t)

	rec := officeOrderRecord()
	rec.DocumentType = types.DocumentTypeCircular
	rec.Subject = "Holiday schedule"
	rec.To = nil
	rec.ToPeople = []document.Person{
		{ID: 1, NameEN: "Shri A. Patel"},
		{ID: 2, NameEN: "Smt. P. Joshi"},
	}

	data, err := engine.RenderPDF(rec)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderDOCX(t *testing.T) {
	engine, _ := newTestEngine(t)

	data, err := engine.RenderDOCX(officeOrderRecord())
	require.NoError(t, err)

	require.True(t, len(data) > 2)
	assert.Equal(t, "PK", string(data[:2]))
}
