package document

import (
	"context"

	"github.com/bisagn/formalgen/internal/types"
)

// LogFilter narrows a document log listing.
type LogFilter struct {
	DocumentType types.DocumentType `form:"document_type"`
	Language     types.Language     `form:"language"`
	Limit        int                `form:"limit"`
}

// LogRepository is the append-only record store for generated
// documents. Append failures are absorbed by the caller; the log is
// best-effort and must never block generation.
type LogRepository interface {
	Append(ctx context.Context, entry *LogEntry) error
	List(ctx context.Context, filter LogFilter) ([]*LogEntry, error)
}
