package service

import (
	"bytes"
	"os"

	ierr "github.com/bisagn/formalgen/internal/errors"
	"github.com/bisagn/formalgen/internal/render"
	"github.com/bisagn/formalgen/internal/types"
	"github.com/jung-kurt/gofpdf"
)

// smallPDF builds a one-page PDF for attachment tests.
func smallPDF(s *DocumentServiceSuite) []byte {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Times", "", 12)
	pdf.Cell(40, 10, "Annexure A")
	var buf bytes.Buffer
	s.Require().NoError(pdf.Output(&buf))
	return buf.Bytes()
}

func (s *DocumentServiceSuite) TestPolicyAttachmentRejectsNonPDF() {
	req := s.previewRequest()
	req.Subject = "Remote work policy"

	att := &AttachmentUpload{Filename: "notes.txt", Content: []byte("not a pdf")}
	_, err := s.service.GeneratePreview(s.GetContext(), types.DocumentTypePolicy, req, att)
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *DocumentServiceSuite) TestPolicyAttachmentStoredAndConsumed() {
	req := s.previewRequest()
	req.Subject = "Remote work policy"

	att := &AttachmentUpload{Filename: "annexure.pdf", Content: smallPDF(s)}
	resp, err := s.service.GeneratePreview(s.GetContext(), types.DocumentTypePolicy, req, att)
	s.Require().NoError(err)

	s.Require().NotNil(resp.Record.Attachment)
	s.Equal("annexure.pdf", resp.Record.Attachment.OriginalFilename)
	_, statErr := os.Stat(resp.Record.Attachment.StoredPath)
	s.Require().NoError(statErr)

	// The PDF download merges the attachment and consumes the stored
	// file; the record stays downloadable without it.
	dl, err := s.service.DownloadPDF(s.GetContext(), types.DocumentTypePolicy)
	s.Require().NoError(err)
	s.Equal("%PDF", string(dl.Data[:4]))

	_, statErr = os.Stat(resp.Record.Attachment.StoredPath)
	s.True(os.IsNotExist(statErr))

	dl, err = s.service.DownloadPDF(s.GetContext(), types.DocumentTypePolicy)
	s.Require().NoError(err)
	s.Equal("%PDF", string(dl.Data[:4]))
}

func (s *DocumentServiceSuite) TestPolicyAttachmentKeptOnDocxFallback() {
	req := s.previewRequest()
	req.Subject = "Remote work policy"

	att := &AttachmentUpload{Filename: "annexure.pdf", Content: smallPDF(s)}
	resp, err := s.service.GeneratePreview(s.GetContext(), types.DocumentTypePolicy, req, att)
	s.Require().NoError(err)
	s.Require().NotNil(resp.Record.Attachment)

	// The suite's rasterizer binary does not exist, so the DOCX falls
	// back to the notice and must leave the stored file alone.
	dl, err := s.service.DownloadDOCX(s.GetContext(), types.DocumentTypePolicy)
	s.Require().NoError(err)
	s.Equal("PK", string(dl.Data[:2]))

	_, statErr := os.Stat(resp.Record.Attachment.StoredPath)
	s.Require().NoError(statErr)

	// A later PDF download still merges the attachment pages.
	pdfDl, err := s.service.DownloadPDF(s.GetContext(), types.DocumentTypePolicy)
	s.Require().NoError(err)

	pages, err := render.PageCountBytes(pdfDl.Data)
	s.Require().NoError(err)
	s.Equal(2, pages)

	_, statErr = os.Stat(resp.Record.Attachment.StoredPath)
	s.True(os.IsNotExist(statErr))
}

func (s *DocumentServiceSuite) TestPolicyAttachmentIgnoredForOtherTypes() {
	att := &AttachmentUpload{Filename: "annexure.pdf", Content: smallPDF(s)}
	resp, err := s.service.GeneratePreview(s.GetContext(), types.DocumentTypeOfficeOrder, s.previewRequest(), att)
	s.Require().NoError(err)
	s.Nil(resp.Record.Attachment)
}

func (s *DocumentServiceSuite) TestPreviewRequiresBodyAndFrom() {
	req := s.previewRequest()
	req.Body = ""

	_, err := s.service.GeneratePreview(s.GetContext(), types.DocumentTypeOfficeOrder, req, nil)
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))
}
