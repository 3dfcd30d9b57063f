package service

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"

	"github.com/bisagn/formalgen/internal/api/dto"
	"github.com/bisagn/formalgen/internal/domain/document"
	ierr "github.com/bisagn/formalgen/internal/errors"
	"github.com/bisagn/formalgen/internal/types"
	"github.com/h2non/filetype"
	"github.com/samber/lo"
)

// AttachmentUpload is the uploaded Policy PDF as received by the
// handler. Content stays in memory only long enough to be persisted.
type AttachmentUpload struct {
	Filename string
	Content  []byte
}

// buildRecord assembles the canonical record for one submission. The
// returned data URI inlines the Policy attachment for the preview; it
// is never stored in the record itself.
func (s *documentService) buildRecord(
	ctx context.Context,
	docType types.DocumentType,
	req *dto.GeneratePreviewRequest,
	att *AttachmentUpload,
) (*document.Record, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", ierr.WithError(err).
			WithHint("Invalid document form").
			Mark(ierr.ErrValidation)
	}

	lang := types.NormalizeLanguage(req.Language)
	data := s.Data.Get(docType)

	date := req.Date
	if date == "" {
		date = types.Today()
	} else {
		date = types.FormatDate(date)
	}

	reference := req.Reference
	if reference == "" {
		reference = docType.DefaultReference(lang, date)
	}

	rec := &document.Record{
		DocumentType: docType,
		Language:     lang,
		Header:       data.HeaderFor(lang),
		Title:        data.Title(lang),
		Reference:    reference,
		Date:         date,
		Subject:      req.Subject,
		Body:         req.Body,
		From:         s.Designations.Resolve(req.From, lang),
	}

	if docType == types.DocumentTypeCircular {
		rec.ToPeople = s.selectPeople(data.People, req.ToIDs)
	} else {
		rec.To = lo.Map(req.To, func(key string, _ int) string {
			return s.Designations.Resolve(key, lang)
		})
	}

	dataURI := ""
	if docType == types.DocumentTypePolicy && att != nil && len(att.Content) > 0 {
		attachment, uri, err := s.storeAttachment(ctx, att)
		if err != nil {
			return nil, "", err
		}
		rec.Attachment = attachment
		dataURI = uri
	}

	return rec, dataURI, nil
}

// selectPeople picks circular recipients by id, preserving the request
// order. Unknown ids are dropped with a warning.
func (s *documentService) selectPeople(people []document.Person, ids []int) []document.Person {
	byID := lo.KeyBy(people, func(p document.Person) int { return p.ID })

	var selected []document.Person
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			s.Logger.Warnf("circular recipient id %d not in staff directory, skipping", id)
			continue
		}
		selected = append(selected, p)
	}
	return selected
}

// storeAttachment validates and persists an uploaded Policy PDF. Only
// genuine PDF content is accepted; the stored copy lives under the
// uploads directory until the download that consumes it.
func (s *documentService) storeAttachment(ctx context.Context, att *AttachmentUpload) (*document.Attachment, string, error) {
	if !filetype.Is(att.Content, "pdf") {
		return nil, "", ierr.NewError("attachment is not a PDF").
			WithHint("Only PDF attachments are supported").
			WithReportableDetails(map[string]interface{}{
				"filename": att.Filename,
			}).
			Mark(ierr.ErrValidation)
	}

	dir := s.Config.Assets.UploadDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", ierr.WithError(err).
			WithMessagef("create uploads dir %s", dir).
			WithHint("Document generation failed").
			Mark(ierr.ErrSystem)
	}

	name := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ATTACHMENT) + ".pdf"
	storedPath := filepath.Join(dir, name)
	if err := os.WriteFile(storedPath, att.Content, 0o644); err != nil {
		return nil, "", ierr.WithError(err).
			WithMessagef("persist attachment to %s", storedPath).
			WithHint("Document generation failed").
			Mark(ierr.ErrSystem)
	}

	s.Logger.Debugf("stored policy attachment %s (%d bytes)", storedPath, len(att.Content))

	uri := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(att.Content)
	return &document.Attachment{
		OriginalFilename: att.Filename,
		StoredPath:       storedPath,
	}, uri, nil
}
