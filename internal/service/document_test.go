package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bisagn/formalgen/internal/api/dto"
	"github.com/bisagn/formalgen/internal/designation"
	"github.com/bisagn/formalgen/internal/docdata"
	"github.com/bisagn/formalgen/internal/domain/document"
	ierr "github.com/bisagn/formalgen/internal/errors"
	"github.com/bisagn/formalgen/internal/render"
	"github.com/bisagn/formalgen/internal/testutil"
	"github.com/bisagn/formalgen/internal/types"
	"github.com/stretchr/testify/suite"
)

// stubDrafter returns a canned body or a forced upstream failure.
type stubDrafter struct {
	body string
	fail bool
}

func (d *stubDrafter) DraftBody(ctx context.Context, docType types.DocumentType, lang types.Language, topic string) (string, error) {
	if d.fail {
		return "", ierr.NewError("model unavailable").
			WithHint("AI generation failed. Please try again.").
			Mark(ierr.ErrUpstream)
	}
	return d.body, nil
}

func (d *stubDrafter) Close() error {
	return nil
}

type DocumentServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DocumentService
	draft   DraftService
	drafter *stubDrafter
	logRepo *testutil.InMemoryDocumentLogStore
}

func TestDocumentService(t *testing.T) {
	suite.Run(t, new(DocumentServiceSuite))
}

func (s *DocumentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupAssets()
	s.setupService()
}

// setupAssets writes minimal preview templates and data files into a
// scratch directory so the engine renders against real files.
func (s *DocumentServiceSuite) setupAssets() {
	root := s.T().TempDir()
	cfg := s.GetConfig()

	tmplDir := filepath.Join(root, "templates")
	s.Require().NoError(os.MkdirAll(tmplDir, 0o755))
	for _, name := range []string{"office_order.html", "circular.html", "policy.html"} {
		tmpl := `<html><body><h1>{{ .Title }}</h1><p>{{ .Record.Reference }}</p><div>{{ .Record.Body }}</div></body></html>`
		s.Require().NoError(os.WriteFile(filepath.Join(tmplDir, name), []byte(tmpl), 0o644))
	}

	dataDir := filepath.Join(root, "documents")
	s.Require().NoError(os.MkdirAll(dataDir, 0o755))
	officeOrder := `{
		"header": {"en": ["BISAG-N", "MeitY", "Government of India"], "hi": ["बायसेग-एन", "मंत्रालय", "भारत सरकार"]},
		"title_en": "Office Order",
		"title_hi": "कार्यालय आदेश"
	}`
	s.Require().NoError(os.WriteFile(filepath.Join(dataDir, "office_order.json"), []byte(officeOrder), 0o644))
	circular := `{
		"header": {"en": ["BISAG-N", "MeitY", "Government of India"]},
		"people": [
			{"id": 1, "name_en": "Shri A. Patel", "name_hi": "श्री ए. पटेल"},
			{"id": 2, "name_en": "Smt. P. Joshi", "name_hi": "श्रीमती पी. जोशी"}
		]
	}`
	s.Require().NoError(os.WriteFile(filepath.Join(dataDir, "circular.json"), []byte(circular), 0o644))

	cfg.Assets.TemplateDir = tmplDir
	cfg.Assets.DocumentDataDir = dataDir
	cfg.Assets.UploadDir = filepath.Join(root, "uploads")
	// Point at a binary that cannot exist so attachment embedding
	// always takes the fallback path in tests.
	cfg.Assets.RasterizerBinary = "formalgen-no-such-rasterizer"
}

func (s *DocumentServiceSuite) setupService() {
	cfg := s.GetConfig()
	log := s.GetLogger()

	data := docdata.NewLoader(cfg, log)
	engine, err := render.NewEngine(cfg, data, log)
	s.Require().NoError(err)

	s.logRepo = s.GetStores().DocumentLogRepo
	s.drafter = &stubDrafter{body: "Drafted body text."}

	params := ServiceParams{
		Logger:          log,
		Config:          cfg,
		Cache:           s.GetCache(),
		Data:            data,
		Designations:    designation.NewResolver(log),
		Engine:          engine,
		Drafter:         s.drafter,
		DocumentLogRepo: s.logRepo,
	}
	s.service = NewDocumentService(params)
	s.draft = NewDraftService(params)
}

func (s *DocumentServiceSuite) previewRequest() *dto.GeneratePreviewRequest {
	return &dto.GeneratePreviewRequest{
		Language: "en",
		Date:     "2026-02-16",
		Body:     "All officers are directed to attend.",
		From:     "Director General",
		To:       []string{"Senior Manager"},
	}
}

func (s *DocumentServiceSuite) TestGeneratePreviewOfficeOrder() {
	resp, err := s.service.GeneratePreview(s.GetContext(), types.DocumentTypeOfficeOrder, s.previewRequest(), nil)
	s.Require().NoError(err)

	s.Equal(types.DocumentTypeOfficeOrder, resp.DocumentType)
	s.Equal("16-02-2026", resp.Record.Date)
	s.Equal(fmt.Sprintf("BISAG-N/Office Order/%d/", time.Now().Year()), resp.Record.Reference)
	s.Equal("Director General", resp.Record.From)
	s.Equal([]string{"Senior Manager"}, resp.Record.To)
	s.Contains(resp.HTML, "All officers are directed to attend.")
	s.Contains(resp.HTML, "Office Order")

	entries := s.logRepo.Entries()
	s.Require().Len(entries, 1)
	s.Equal(resp.Record.Reference, entries[0].ReferenceID)
}

func (s *DocumentServiceSuite) TestGeneratePreviewHindiDefaults() {
	req := s.previewRequest()
	req.Language = "hi"
	req.Date = ""

	resp, err := s.service.GeneratePreview(s.GetContext(), types.DocumentTypeOfficeOrder, req, nil)
	s.Require().NoError(err)

	s.Equal(types.LanguageHindi, resp.Record.Language)
	s.Equal(types.Today(), resp.Record.Date)
	s.Contains(resp.Record.Reference, "कार्यालय आदेश")
	s.Equal("महानिदेशक", resp.Record.From)
}

func (s *DocumentServiceSuite) TestGeneratePreviewUnparseableDatePassesThrough() {
	req := s.previewRequest()
	req.Date = "sixteenth of February"

	resp, err := s.service.GeneratePreview(s.GetContext(), types.DocumentTypeOfficeOrder, req, nil)
	s.Require().NoError(err)
	s.Equal("sixteenth of February", resp.Record.Date)
}

func (s *DocumentServiceSuite) TestGeneratePreviewLogFailureIsSwallowed() {
	s.logRepo.FailAppend = true

	resp, err := s.service.GeneratePreview(s.GetContext(), types.DocumentTypeOfficeOrder, s.previewRequest(), nil)
	s.Require().NoError(err)
	s.NotNil(resp.Record)
	s.Empty(s.logRepo.Entries())
}

func (s *DocumentServiceSuite) TestCircularRecipientsSelectedByID() {
	req := s.previewRequest()
	req.Subject = "Holiday schedule"
	req.ToIDs = []int{2, 1, 99}

	resp, err := s.service.GeneratePreview(s.GetContext(), types.DocumentTypeCircular, req, nil)
	s.Require().NoError(err)

	s.Require().Len(resp.Record.ToPeople, 2)
	s.Equal("Smt. P. Joshi", resp.Record.ToPeople[0].NameEN)
	s.Equal("Shri A. Patel", resp.Record.ToPeople[1].NameEN)

	entries := s.logRepo.Entries()
	s.Require().Len(entries, 1)
	s.Equal("CIRCULAR-16-02-2026", entries[0].ReferenceID)
}

func (s *DocumentServiceSuite) TestDownloadWithoutPreviewIsNotFound() {
	_, err := s.service.DownloadPDF(s.GetContext(), types.DocumentTypeOfficeOrder)
	s.Require().Error(err)
	s.True(ierr.IsNotFound(err))

	_, err = s.service.DownloadDOCX(s.GetContext(), types.DocumentTypeCircular)
	s.Require().Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *DocumentServiceSuite) TestDownloadPDFAfterPreview() {
	_, err := s.service.GeneratePreview(s.GetContext(), types.DocumentTypeOfficeOrder, s.previewRequest(), nil)
	s.Require().NoError(err)

	dl, err := s.service.DownloadPDF(s.GetContext(), types.DocumentTypeOfficeOrder)
	s.Require().NoError(err)

	s.Equal("Office_Order.pdf", dl.Filename)
	s.Equal(types.ContentTypePDF, dl.ContentType)
	s.Require().True(len(dl.Data) > 4)
	s.Equal("%PDF", string(dl.Data[:4]))
}

func (s *DocumentServiceSuite) TestDownloadDOCXAfterPreview() {
	_, err := s.service.GeneratePreview(s.GetContext(), types.DocumentTypeOfficeOrder, s.previewRequest(), nil)
	s.Require().NoError(err)

	dl, err := s.service.DownloadDOCX(s.GetContext(), types.DocumentTypeOfficeOrder)
	s.Require().NoError(err)

	s.Equal("Office_Order.docx", dl.Filename)
	s.Equal(types.ContentTypeDocx, dl.ContentType)
	// OOXML containers are zip archives.
	s.Require().True(len(dl.Data) > 2)
	s.Equal("PK", string(dl.Data[:2]))
}

func (s *DocumentServiceSuite) TestDownloadsAreSessionScoped() {
	_, err := s.service.GeneratePreview(s.GetContext(), types.DocumentTypeOfficeOrder, s.previewRequest(), nil)
	s.Require().NoError(err)

	otherSession := context.WithValue(context.Background(), types.CtxSessionID, "other-session")
	_, err = s.service.DownloadPDF(otherSession, types.DocumentTypeOfficeOrder)
	s.Require().Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *DocumentServiceSuite) TestHomePayload() {
	resp, err := s.service.Home(s.GetContext())
	s.Require().NoError(err)

	s.Contains(resp.DocumentTypes, "Office Order")
	s.Contains(resp.Designations, "Director General")
	s.Len(resp.People, 2)
}

func (s *DocumentServiceSuite) TestListLogsFilters() {
	_, err := s.service.GeneratePreview(s.GetContext(), types.DocumentTypeOfficeOrder, s.previewRequest(), nil)
	s.Require().NoError(err)

	req := s.previewRequest()
	req.Subject = "Holiday schedule"
	_, err = s.service.GeneratePreview(s.GetContext(), types.DocumentTypeCircular, req, nil)
	s.Require().NoError(err)

	resp, err := s.service.ListLogs(s.GetContext(), document.LogFilter{DocumentType: types.DocumentTypeCircular})
	s.Require().NoError(err)
	s.Require().Len(resp.Items, 1)
	s.Equal(types.DocumentTypeCircular, resp.Items[0].DocumentType)
}

func (s *DocumentServiceSuite) TestDraftBody() {
	resp, err := s.draft.DraftBody(s.GetContext(), types.DocumentTypeOfficeOrder, &dto.DraftBodyRequest{
		Prompt:   "office timings",
		Language: "en",
	})
	s.Require().NoError(err)
	s.Equal("Drafted body text.", resp.Body)
}

func (s *DocumentServiceSuite) TestDraftBodyUpstreamFailure() {
	s.drafter.fail = true

	_, err := s.draft.DraftBody(s.GetContext(), types.DocumentTypeOfficeOrder, &dto.DraftBodyRequest{
		Prompt: "office timings",
	})
	s.Require().Error(err)
	s.True(ierr.IsUpstream(err))
}
