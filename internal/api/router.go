package api

import (
	v1 "github.com/bisagn/formalgen/internal/api/v1"
	"github.com/bisagn/formalgen/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Document *v1.DocumentHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.SessionMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	router.GET("/home", handlers.Document.Home)
	router.GET("/logs", handlers.Document.ListLogs)

	// Document routes
	documents := router.Group("/documents")
	{
		documents.POST("/:type/draft", handlers.Document.DraftBody)
		documents.POST("/:type/preview", handlers.Document.GeneratePreview)
		documents.GET("/:type/pdf", handlers.Document.DownloadPDF)
		documents.GET("/:type/docx", handlers.Document.DownloadDOCX)
	}
}
