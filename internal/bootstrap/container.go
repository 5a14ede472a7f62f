package bootstrap

import (
	"log"

	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/config"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/controller"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/pkg/logger"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/internal/service"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/embedding"
	"github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/llm/factory"
	pgstore "github.com/ITSYOURAHLAWAT/vibe-matcher-ai/pkg/vectorstore/pgvector"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	MatchController controller.IMatchController

	// Startup services (Exposed for main.go to run)
	IngestionService service.IIngestionService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Collaborator clients
	// Initialize Embedding Provider based on Config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "gemini" {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	} else {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbeddingModel)
	}
	// Identical queries recur; cache their vectors
	embeddingProvider = embedding.NewCachedProvider(embeddingProvider)

	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Vector store (creates extension + table on first run)
	store, err := pgstore.NewStore(db)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize vector store: %v", err)
	}

	// 3. Services
	ingestionService := service.NewIngestionService(embeddingProvider, store, sysLogger)
	matchService := service.NewMatchService(llmProvider, embeddingProvider, store, cfg.Ai.RetrievalTopN, sysLogger)

	// 4. Controllers
	matchController := controller.NewMatchController(matchService)

	return &Container{
		MatchController:  matchController,
		IngestionService: ingestionService,
		Logger:           sysLogger,
	}
}
