package main

import (
	"context"
	"time"

	"github.com/bisagn/formalgen/internal/ai"
	"github.com/bisagn/formalgen/internal/api"
	v1 "github.com/bisagn/formalgen/internal/api/v1"
	"github.com/bisagn/formalgen/internal/cache"
	"github.com/bisagn/formalgen/internal/config"
	"github.com/bisagn/formalgen/internal/designation"
	"github.com/bisagn/formalgen/internal/docdata"
	"github.com/bisagn/formalgen/internal/domain/document"
	"github.com/bisagn/formalgen/internal/logger"
	"github.com/bisagn/formalgen/internal/postgres"
	"github.com/bisagn/formalgen/internal/render"
	"github.com/bisagn/formalgen/internal/repository"
	"github.com/bisagn/formalgen/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.NewInMemoryCache,

			// Postgres
			postgres.NewDB,

			// Repositories
			repository.NewDocumentLogRepository,

			// Domain collaborators
			docdata.NewLoader,
			designation.NewResolver,
			render.NewEngine,
			provideDrafter,

			// Service layer
			provideServiceParams,
			service.NewDocumentService,
			service.NewDraftService,

			// API
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)
	app.Run()
}

func provideDrafter(cfg *config.Configuration, log *logger.Logger) ai.Drafter {
	return ai.NewClient(cfg, log)
}

func provideServiceParams(
	cfg *config.Configuration,
	log *logger.Logger,
	c cache.Cache,
	data *docdata.Loader,
	designations *designation.Resolver,
	engine *render.Engine,
	drafter ai.Drafter,
	logRepo document.LogRepository,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:          log,
		Config:          cfg,
		Cache:           c,
		Data:            data,
		Designations:    designations,
		Engine:          engine,
		Drafter:         drafter,
		DocumentLogRepo: logRepo,
	}
}

func provideHandlers(
	logger *logger.Logger,
	documentService service.DocumentService,
	draftService service.DraftService,
) api.Handlers {
	return api.Handlers{
		Health:   v1.NewHealthHandler(),
		Document: v1.NewDocumentHandler(documentService, draftService, logger),
	}
}

func provideRouter(handlers api.Handlers) *gin.Engine {
	return api.NewRouter(handlers)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db *postgres.DB,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			db.Close()
			return nil
		},
	})
}
