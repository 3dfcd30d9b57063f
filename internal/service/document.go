package service

import (
	"context"
	"os"

	"github.com/bisagn/formalgen/internal/api/dto"
	"github.com/bisagn/formalgen/internal/cache"
	"github.com/bisagn/formalgen/internal/domain/document"
	ierr "github.com/bisagn/formalgen/internal/errors"
	"github.com/bisagn/formalgen/internal/render"
	"github.com/bisagn/formalgen/internal/types"
	"github.com/samber/lo"
)

// Download is a rendered document ready to be written to the response.
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

type DocumentService interface {
	// GeneratePreview builds a record from the submitted form, logs it,
	// caches it for the session and returns the rendered preview.
	GeneratePreview(ctx context.Context, docType types.DocumentType, req *dto.GeneratePreviewRequest, att *AttachmentUpload) (*dto.PreviewResponse, error)

	// DownloadPDF renders the session's cached record as PDF. Policy
	// attachments are merged after the generated pages.
	DownloadPDF(ctx context.Context, docType types.DocumentType) (*Download, error)

	// DownloadDOCX renders the session's cached record as an editable
	// document. Policy attachment pages are embedded as images.
	DownloadDOCX(ctx context.Context, docType types.DocumentType) (*Download, error)

	// Home returns the selectable values for the document form.
	Home(ctx context.Context) (*dto.HomeResponse, error)

	// ListLogs lists document log rows, newest first.
	ListLogs(ctx context.Context, filter document.LogFilter) (*dto.ListLogsResponse, error)
}

type documentService struct {
	ServiceParams
}

func NewDocumentService(params ServiceParams) DocumentService {
	return &documentService{ServiceParams: params}
}

func (s *documentService) GeneratePreview(ctx context.Context, docType types.DocumentType, req *dto.GeneratePreviewRequest, att *AttachmentUpload) (*dto.PreviewResponse, error) {
	if err := docType.Validate(); err != nil {
		return nil, err
	}

	rec, dataURI, err := s.buildRecord(ctx, docType, req, att)
	if err != nil {
		return nil, err
	}

	// The log is best-effort; a failed append never blocks the preview.
	if err := s.DocumentLogRepo.Append(ctx, document.NewLogEntry(rec)); err != nil {
		s.Logger.Warnf("document log append failed for %s: %v", docType, err)
	}

	s.Cache.Set(ctx, s.cacheKey(ctx, docType), rec, 0)

	html, err := s.Engine.RenderHTML(rec, render.HTMLOptions{AttachmentDataURI: dataURI})
	if err != nil {
		return nil, err
	}

	return &dto.PreviewResponse{
		DocumentType: docType,
		Record:       rec,
		HTML:         html,
	}, nil
}

func (s *documentService) DownloadPDF(ctx context.Context, docType types.DocumentType) (*Download, error) {
	rec, err := s.cachedRecord(ctx, docType)
	if err != nil {
		return nil, err
	}

	data, err := s.Engine.RenderPDF(rec)
	if err != nil {
		return nil, err
	}

	if rec.Attachment != nil {
		data = s.Engine.Merger().Merge(data, rec.Attachment.StoredPath)
		s.consumeAttachment(ctx, docType, rec)
	}

	return &Download{
		Filename:    rec.DocumentType.FileStem() + ".pdf",
		ContentType: types.ContentTypePDF,
		Data:        data,
	}, nil
}

func (s *documentService) DownloadDOCX(ctx context.Context, docType types.DocumentType) (*Download, error) {
	rec, err := s.cachedRecord(ctx, docType)
	if err != nil {
		return nil, err
	}

	data, err := s.Engine.RenderDOCX(rec)
	if err != nil {
		return nil, err
	}

	// The stored attachment survives a fallback-notice download so a
	// later PDF download can still merge it.
	if rec.Attachment != nil && s.Engine.CanEmbedAttachments() {
		s.consumeAttachment(ctx, docType, rec)
	}

	return &Download{
		Filename:    rec.DocumentType.FileStem() + ".docx",
		ContentType: types.ContentTypeDocx,
		Data:        data,
	}, nil
}

func (s *documentService) Home(ctx context.Context) (*dto.HomeResponse, error) {
	return &dto.HomeResponse{
		DocumentTypes: lo.Map(types.DocumentTypes, func(t types.DocumentType, _ int) string {
			return string(t)
		}),
		Designations: s.Designations.Keys(),
		People:       s.Data.Get(types.DocumentTypeCircular).People,
	}, nil
}

func (s *documentService) ListLogs(ctx context.Context, filter document.LogFilter) (*dto.ListLogsResponse, error) {
	entries, err := s.DocumentLogRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(entries, func(e *document.LogEntry, _ int) dto.DocumentLogResponse {
		return dto.NewDocumentLogResponse(e)
	})
	return &dto.ListLogsResponse{Items: items, Total: len(items)}, nil
}

// cachedRecord fetches the session's record for a type, or NotFound
// when no preview has been generated this session.
func (s *documentService) cachedRecord(ctx context.Context, docType types.DocumentType) (*document.Record, error) {
	if err := docType.Validate(); err != nil {
		return nil, err
	}

	val, found := s.Cache.Get(ctx, s.cacheKey(ctx, docType))
	if !found {
		return nil, ierr.NewError("no document generated this session").
			WithHintf("No %s generated", docType).
			Mark(ierr.ErrNotFound)
	}
	rec, ok := val.(*document.Record)
	if !ok {
		return nil, ierr.NewError("unexpected cache entry type").
			WithHintf("No %s generated", docType).
			Mark(ierr.ErrNotFound)
	}
	return rec, nil
}

// consumeAttachment removes the stored attachment file and recaches
// the record without it. Later downloads in the same session still
// work, minus the attachment pages.
func (s *documentService) consumeAttachment(ctx context.Context, docType types.DocumentType, rec *document.Record) {
	if err := os.Remove(rec.Attachment.StoredPath); err != nil {
		s.Logger.Warnf("attachment cleanup failed for %s: %v", rec.Attachment.StoredPath, err)
	}
	s.Cache.Set(ctx, s.cacheKey(ctx, docType), rec.WithoutAttachment(), 0)
}

func (s *documentService) cacheKey(ctx context.Context, docType types.DocumentType) string {
	return cache.GenerateKey(cache.PrefixDocument, types.GetSessionID(ctx), docType.Slug())
}
