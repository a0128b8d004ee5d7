package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"tenderdesk/internal/assess"
	"tenderdesk/internal/config"
	"tenderdesk/internal/extract"
	"tenderdesk/internal/http"
	"tenderdesk/internal/indexer"
	"tenderdesk/internal/llm"
	"tenderdesk/internal/rag"
	"tenderdesk/internal/service"
	"tenderdesk/internal/storage"
	"tenderdesk/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	tenderRepo := storage.NewTenderRepo(db)
	chunkRepo := storage.NewChunkRepo(db)

	// Initialize Qdrant vector store
	ctx := context.Background()
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}

	// Ensure collection exists with correct vector size
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)

	// Validate embedding client vector size (fail-fast)
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)
	testEmbeddings, err := embedder.EmbedTexts(ctx, []string{"test"})
	if err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	if len(testEmbeddings) == 0 || len(testEmbeddings[0]) != cfg.QdrantVectorSize {
		log.Fatalf("Embedding vector size mismatch: expected %d, got %d", cfg.QdrantVectorSize, len(testEmbeddings[0]))
	}
	slog.Info("Embedding client validated", "vector_size", cfg.QdrantVectorSize)

	// Create LLM client (external service layer)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName)

	// Create indexing pipeline and retrieval stack
	pipeline := indexer.NewPipeline(chunkRepo, embedder, vectorStore, cfg.QdrantCollection, cfg.OutputDir)
	retriever := rag.NewRetriever(embedder, vectorStore, chunkRepo, cfg.QdrantCollection)
	manager := rag.NewManager(retriever, llmClient)
	slog.Info("Retrieval stack initialized")

	// Create derivation steps and the tender service
	extractor := extract.NewExtractor(retriever, llmClient, cfg.OutputDir)
	assessor := assess.NewAssessor(retriever, llmClient, tenderRepo, cfg.OutputDir)
	tenderService := service.NewTenderService(tenderRepo, pipeline, extractor, assessor, manager)

	// Create router with dependencies
	deps := &http.Deps{
		TenderService:  tenderService,
		ChatManager:    manager,
		VectorStore:    vectorStore,
		CollectionName: cfg.QdrantCollection,
		UploadDir:      cfg.UploadDir,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
