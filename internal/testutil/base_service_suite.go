package testutil

import (
	"context"

	"github.com/bisagn/formalgen/internal/cache"
	"github.com/bisagn/formalgen/internal/config"
	"github.com/bisagn/formalgen/internal/logger"
	"github.com/bisagn/formalgen/internal/types"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	DocumentLogRepo *InMemoryDocumentLogStore
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	cache  cache.Cache
	logger *logger.Logger
	config *config.Configuration
}

// SetupTest initializes fresh dependencies before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.config = config.GetDefaultConfig()

	log, err := logger.NewLogger(s.config)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
	s.logger = log

	s.stores = Stores{
		DocumentLogRepo: NewInMemoryDocumentLogStore(),
	}
	s.cache = cache.NewInMemoryCache(s.config)

	ctx := context.WithValue(context.Background(), types.CtxRequestID, "test-request")
	ctx = context.WithValue(ctx, types.CtxSessionID, "test-session")
	s.ctx = ctx
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}
