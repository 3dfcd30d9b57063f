package repository

import (
	"github.com/bisagn/formalgen/internal/domain/document"
	"github.com/bisagn/formalgen/internal/logger"
	"github.com/bisagn/formalgen/internal/postgres"
	postgresRepo "github.com/bisagn/formalgen/internal/repository/postgres"
)

func NewDocumentLogRepository(db *postgres.DB, logger *logger.Logger) document.LogRepository {
	return postgresRepo.NewDocumentLogRepository(db, logger)
}
