package v1

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bisagn/formalgen/internal/api/dto"
	"github.com/bisagn/formalgen/internal/domain/document"
	ierr "github.com/bisagn/formalgen/internal/errors"
	"github.com/bisagn/formalgen/internal/logger"
	"github.com/bisagn/formalgen/internal/service"
	"github.com/bisagn/formalgen/internal/types"
	"github.com/gin-gonic/gin"
)

// attachmentFormField is the multipart field carrying the Policy PDF.
const attachmentFormField = "attachment"

type DocumentHandler struct {
	service service.DocumentService
	draft   service.DraftService
	log     *logger.Logger
}

func NewDocumentHandler(service service.DocumentService, draft service.DraftService, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{service: service, draft: draft, log: log}
}

func (h *DocumentHandler) docType(c *gin.Context) (types.DocumentType, error) {
	return types.ParseDocumentType(c.Param("type"))
}

func (h *DocumentHandler) DraftBody(c *gin.Context) {
	ctx := c.Request.Context()

	docType, err := h.docType(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.DraftBodyRequest
	if err := c.ShouldBind(&req); err != nil {
		h.log.Error("Failed to bind draft request", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.draft.DraftBody(ctx, docType, &req)
	if err != nil {
		h.log.Error("Failed to draft body", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) GeneratePreview(c *gin.Context) {
	ctx := c.Request.Context()

	docType, err := h.docType(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.GeneratePreviewRequest
	if err := c.ShouldBind(&req); err != nil {
		h.log.Error("Failed to bind preview form", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	att, err := h.readAttachment(c)
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GeneratePreview(ctx, docType, &req, att)
	if err != nil {
		h.log.Error("Failed to generate preview", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// readAttachment pulls the optional Policy PDF out of the multipart
// form. A preview without an attachment is valid.
func (h *DocumentHandler) readAttachment(c *gin.Context) (*service.AttachmentUpload, error) {
	fh, err := c.FormFile(attachmentFormField)
	if err != nil {
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Could not read the uploaded attachment").
			Mark(ierr.ErrValidation)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Could not read the uploaded attachment").
			Mark(ierr.ErrValidation)
	}

	return &service.AttachmentUpload{
		Filename: fh.Filename,
		Content:  content,
	}, nil
}

func (h *DocumentHandler) DownloadPDF(c *gin.Context) {
	h.download(c, h.service.DownloadPDF)
}

func (h *DocumentHandler) DownloadDOCX(c *gin.Context) {
	h.download(c, h.service.DownloadDOCX)
}

func (h *DocumentHandler) download(c *gin.Context, render func(ctx context.Context, docType types.DocumentType) (*service.Download, error)) {
	ctx := c.Request.Context()

	docType, err := h.docType(c)
	if err != nil {
		c.Error(err)
		return
	}

	dl, err := render(ctx, docType)
	if err != nil {
		h.log.Error("Failed to render download", "document_type", docType, "error", err)
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dl.Filename))
	c.Data(http.StatusOK, dl.ContentType, dl.Data)
}

func (h *DocumentHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	resp, err := h.service.Home(ctx)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DocumentHandler) ListLogs(c *gin.Context) {
	ctx := c.Request.Context()

	var filter document.LogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind log filter", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListLogs(ctx, filter)
	if err != nil {
		h.log.Error("Failed to list document logs", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
