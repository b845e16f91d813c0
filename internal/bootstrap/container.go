package bootstrap

import (
	"context"
	"log"
	"time"

	"terra-assistant-be/internal/config"
	"terra-assistant-be/internal/controller"
	"terra-assistant-be/internal/pkg/logger"
	"terra-assistant-be/internal/repository/memory"
	"terra-assistant-be/internal/service"
	"terra-assistant-be/pkg/corpus"
	"terra-assistant-be/pkg/embedding"
	"terra-assistant-be/pkg/llm/factory"
	"terra-assistant-be/pkg/logsink"
	"terra-assistant-be/pkg/rag/intent"
	"terra-assistant-be/pkg/rag/response"
	"terra-assistant-be/pkg/rag/retriever"

	pkgNats "terra-assistant-be/pkg/nats"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	AdminController     controller.IAdminController

	// Exposed for graceful shutdown in main.go
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Providers
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbedModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)
	} else {
		embeddingProvider = embedding.NewOpenAIProvider(
			cfg.Ai.OpenAIBaseURL,
			cfg.Ai.OpenAIAPIKey,
			cfg.Ai.OpenAIEmbedModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.OpenAIEmbedModel)
	}

	llmProvider, err := factory.NewProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		providerBaseURL(cfg),
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 3. Corpus and index
	refCorpus := corpus.Default()

	buildCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	index, err := retriever.BuildIndex(buildCtx, embeddingProvider, refCorpus)
	if err != nil {
		log.Fatalf("[FATAL] Failed to build vector index: %v", err)
	}
	log.Printf("[INFO] Vector index built with %d documents (dimension %d)", index.Size(), index.Dimension())

	// 4. Pipeline components
	ret := retriever.New(embeddingProvider, index, refCorpus, sysLogger)
	classifier := intent.NewClassifier(llmProvider, sysLogger)
	generator := response.NewGenerator(llmProvider, sysLogger)
	sessionRepo := memory.NewSessionRepository()

	// 5. Log sink
	var sink logsink.Sink = logsink.Nop{}
	switch cfg.Log.Sink {
	case "csv":
		csvSink, err := logsink.NewCSVSink(cfg.Log.CSVPath)
		if err != nil {
			log.Printf("[WARN] Failed to initialize CSV log sink: %v", err)
		} else {
			sink = csvSink
		}
	case "nats":
		natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			sink = logsink.NewNATSSink(natsPub)
		}
	}

	assistantService := service.NewAssistantService(
		sessionRepo,
		ret,
		classifier,
		generator,
		sink,
		sysLogger,
		service.Options{
			SystemPrompt:  cfg.Ai.SystemPrompt,
			RetrievalTopK: cfg.Ai.RetrievalTopK,
			HistoryWindow: cfg.Ai.HistoryWindow,
			Temperature:   cfg.Ai.Temperature,
		},
	)

	// 6. Controllers
	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		AdminController:     controller.NewAdminController(cfg.Admin.ExportToken, cfg.Log.CSVPath),
		Logger:              sysLogger,
	}
}

func providerBaseURL(cfg *config.Config) string {
	if cfg.Ai.LLMProvider == "ollama" {
		return cfg.Ai.OllamaBaseURL
	}
	return cfg.Ai.OpenAIBaseURL
}
