package service

import (
	"github.com/bisagn/formalgen/internal/ai"
	"github.com/bisagn/formalgen/internal/cache"
	"github.com/bisagn/formalgen/internal/config"
	"github.com/bisagn/formalgen/internal/designation"
	"github.com/bisagn/formalgen/internal/docdata"
	"github.com/bisagn/formalgen/internal/domain/document"
	"github.com/bisagn/formalgen/internal/logger"
	"github.com/bisagn/formalgen/internal/render"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	Cache        cache.Cache
	Data         *docdata.Loader
	Designations *designation.Resolver
	Engine       *render.Engine
	Drafter      ai.Drafter

	// Repositories
	DocumentLogRepo document.LogRepository
}
