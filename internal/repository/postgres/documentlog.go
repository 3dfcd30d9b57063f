package postgres

import (
	"context"

	"github.com/bisagn/formalgen/internal/domain/document"
	ierr "github.com/bisagn/formalgen/internal/errors"
	"github.com/bisagn/formalgen/internal/logger"
	"github.com/bisagn/formalgen/internal/postgres"
)

const defaultLogLimit = 100

type documentLogRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewDocumentLogRepository(db *postgres.DB, logger *logger.Logger) document.LogRepository {
	return &documentLogRepository{db: db, logger: logger}
}

func (r *documentLogRepository) Append(ctx context.Context, entry *document.LogEntry) error {
	query := `
	INSERT INTO document_logs (
		id, document_type, language, reference_id, content, created_at
	) VALUES (
		:id, :document_type, :language, :reference_id, :content, :created_at
	)
	`

	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return ierr.WithError(err).
			WithMessage("insert document log").
			WithHint("Failed to record the generated document").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *documentLogRepository) List(ctx context.Context, filter document.LogFilter) ([]*document.LogEntry, error) {
	query := `
	SELECT id, document_type, language, reference_id, content, created_at
	FROM document_logs
	WHERE ($1 = '' OR document_type = $1)
	  AND ($2 = '' OR language = $2)
	ORDER BY created_at DESC
	LIMIT $3
	`

	limit := filter.Limit
	if limit <= 0 || limit > defaultLogLimit {
		limit = defaultLogLimit
	}

	var entries []*document.LogEntry
	q := r.db.GetQuerier(ctx)
	err := q.SelectContext(ctx, &entries, query,
		string(filter.DocumentType),
		string(filter.Language),
		limit,
	)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("list document logs").
			WithHint("Failed to read the document log").
			Mark(ierr.ErrDatabase)
	}

	return entries, nil
}
