package dto

import (
	"time"

	"github.com/bisagn/formalgen/internal/domain/document"
	"github.com/bisagn/formalgen/internal/types"
	"github.com/go-playground/validator/v10"
)

// DraftBodyRequest asks the drafting service for a generated body.
type DraftBodyRequest struct {
	Prompt   string `json:"prompt" form:"prompt" binding:"required" validate:"required"`
	Language string `json:"language" form:"language" binding:"omitempty" validate:"omitempty"`
}

func (r *DraftBodyRequest) Validate() error {
	return validator.New().Struct(r)
}

// DraftBodyResponse carries the drafted body text.
type DraftBodyResponse struct {
	Body string `json:"body"`
}

// GeneratePreviewRequest is the multipart form submitted by the
// document form. The Policy attachment file travels alongside it and
// is handled by the handler directly.
type GeneratePreviewRequest struct {
	Language  string `form:"language" validate:"omitempty"`
	Date      string `form:"date" validate:"omitempty"`
	Reference string `form:"reference" validate:"omitempty"`
	Subject   string `form:"subject" validate:"omitempty"`
	Body      string `form:"body" binding:"required" validate:"required"`
	// From is a designation key resolved against the directory.
	From string `form:"from" binding:"required" validate:"required"`
	// To holds designation keys (Office Order, Policy).
	To []string `form:"to" validate:"omitempty"`
	// ToIDs selects circular recipients from the static people list.
	ToIDs []int `form:"to_ids" validate:"omitempty"`
}

func (r *GeneratePreviewRequest) Validate() error {
	return validator.New().Struct(r)
}

// PreviewResponse returns the built record plus its rendered preview.
type PreviewResponse struct {
	DocumentType types.DocumentType `json:"document_type"`
	Record       *document.Record   `json:"record"`
	HTML         string             `json:"html"`
}

// HomeResponse feeds the document form with its selectable values.
type HomeResponse struct {
	DocumentTypes []string          `json:"document_types"`
	Designations  []string          `json:"designations"`
	People        []document.Person `json:"people"`
}

// DocumentLogResponse is one row of the log listing.
type DocumentLogResponse struct {
	ID           string             `json:"id"`
	DocumentType types.DocumentType `json:"document_type"`
	Language     types.Language     `json:"language"`
	ReferenceID  string             `json:"reference_id"`
	Content      string             `json:"content"`
	CreatedAt    time.Time          `json:"created_at"`
}

// ListLogsResponse wraps the log listing.
type ListLogsResponse struct {
	Items []DocumentLogResponse `json:"items"`
	Total int                   `json:"total"`
}

// NewDocumentLogResponse maps a domain log entry to its API shape.
func NewDocumentLogResponse(e *document.LogEntry) DocumentLogResponse {
	return DocumentLogResponse{
		ID:           e.ID,
		DocumentType: e.DocumentType,
		Language:     e.Language,
		ReferenceID:  e.ReferenceID,
		Content:      e.Content,
		CreatedAt:    e.CreatedAt,
	}
}
