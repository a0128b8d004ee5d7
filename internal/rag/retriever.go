package rag

import (
	"context"
	"fmt"
	"time"

	"tenderdesk/internal/contextutil"
	"tenderdesk/internal/storage"
	"tenderdesk/internal/vectorstore"
)

// readyPollInterval is how often WaitReady re-checks an index that is
// still being built by a concurrent ingestion step.
const readyPollInterval = 5 * time.Second

// Embedder turns a query string into an embedding vector.
type Embedder interface {
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
}

// Retriever performs nearest-neighbor passage retrieval over the indexed
// tender chunks. It implements PassageSource.
type Retriever struct {
	embedder    Embedder
	vectorStore vectorstore.VectorStore
	chunkRepo   storage.ChunkStore
	collection  string
}

// NewRetriever creates a new Retriever.
func NewRetriever(embedder Embedder, vectorStore vectorstore.VectorStore, chunkRepo storage.ChunkStore, collection string) *Retriever {
	return &Retriever{
		embedder:    embedder,
		vectorStore: vectorStore,
		chunkRepo:   chunkRepo,
		collection:  collection,
	}
}

// Search embeds the query and returns at most k passages, most similar
// first. Each passage carries its retrieval rank and its true source page.
// Returns ErrIndexUnavailable when the index holds no points yet.
func (r *Retriever) Search(ctx context.Context, query string, k int) ([]Passage, error) {
	logger := contextutil.LoggerFromContext(ctx)

	count, err := r.vectorStore.Count(ctx, r.collection)
	if err != nil {
		return nil, fmt.Errorf("failed to check index: %w", err)
	}
	if count == 0 {
		return nil, ErrIndexUnavailable
	}

	vector, err := r.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	results, err := r.vectorStore.Search(ctx, r.collection, vector, k, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}

	passages := make([]Passage, 0, len(results))
	for _, result := range results {
		chunk, err := r.chunkRepo.GetByID(ctx, result.PointID)
		if err != nil {
			logger.WarnContext(ctx, "failed to fetch chunk text", "chunk_id", result.PointID, "error", err)
			continue
		}
		passages = append(passages, Passage{
			Text:  chunk.Text,
			Page:  chunk.Page,
			Rank:  len(passages) + 1,
			Score: result.Score,
		})
	}

	logger.DebugContext(ctx, "retrieval completed", "query_length", len(query), "k", k, "passages", len(passages))
	return passages, nil
}

// WaitReady blocks until the index has at least one point, polling at a
// fixed interval. It tolerates an index that a concurrent build step is
// still writing; cancel the context to give up.
func (r *Retriever) WaitReady(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)

	for {
		count, err := r.vectorStore.Count(ctx, r.collection)
		if err == nil && count > 0 {
			return nil
		}
		if err != nil {
			logger.WarnContext(ctx, "index not available yet, waiting", "error", err)
		} else {
			logger.DebugContext(ctx, "index empty, waiting")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(readyPollInterval):
		}
	}
}
