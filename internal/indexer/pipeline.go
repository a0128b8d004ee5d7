package indexer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"tenderdesk/internal/contextutil"
	"tenderdesk/internal/pdfio"
	"tenderdesk/internal/preprocess"
	"tenderdesk/internal/storage"
	"tenderdesk/internal/vectorstore"
)

// Embedder generates embedding vectors for batches of texts.
// This interface is defined from the pipeline's perspective (consumer-first).
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// embedBatchSize bounds how many chunk texts go to the embedding provider
// in one request.
const embedBatchSize = 32

// Pipeline orchestrates indexing of a tender PDF into SQLite and Qdrant:
// extract pages, normalize, chunk, embed and persist with page provenance.
type Pipeline struct {
	chunkRepo   storage.ChunkStore
	embedder    Embedder
	vectorStore vectorstore.VectorStore
	collection  string
	splitter    *Splitter
	outputDir   string

	// extractPages is pdfio.ExtractPages, replaceable in tests.
	extractPages func(ctx context.Context, path string) ([]string, error)
}

// NewPipeline creates a new indexing pipeline.
func NewPipeline(
	chunkRepo storage.ChunkStore,
	embedder Embedder,
	vectorStore vectorstore.VectorStore,
	collection string,
	outputDir string,
) *Pipeline {
	return &Pipeline{
		chunkRepo:    chunkRepo,
		embedder:     embedder,
		vectorStore:  vectorStore,
		collection:   collection,
		splitter:     NewSplitter(),
		outputDir:    outputDir,
		extractPages: pdfio.ExtractPages,
	}
}

// IndexTender indexes the PDF at pdfPath under the given tender ID.
// Any prior index for the tender is overwritten wholesale. Returns the
// number of chunks indexed.
func (p *Pipeline) IndexTender(ctx context.Context, tenderID, pdfPath string) (int, error) {
	logger := contextutil.LoggerFromContext(ctx)

	rawPages, err := p.extractPages(ctx, pdfPath)
	if err != nil {
		return 0, fmt.Errorf("failed to extract pages: %w", err)
	}
	if len(rawPages) == 0 {
		return 0, fmt.Errorf("document has no pages: %s", pdfPath)
	}

	pages := make([]string, len(rawPages))
	for i, raw := range rawPages {
		pages[i] = preprocess.Normalize(raw)
	}

	if err := p.dumpPages(pages); err != nil {
		// The dump is a debugging aid, not part of the index.
		logger.WarnContext(ctx, "failed to write preprocessed pages dump", "error", err)
	}

	// Drop the prior index for this tender before rebuilding.
	if err := p.vectorStore.DeleteByTender(ctx, p.collection, tenderID); err != nil {
		return 0, fmt.Errorf("failed to clear prior vectors: %w", err)
	}
	if err := p.chunkRepo.DeleteByTender(ctx, tenderID); err != nil {
		return 0, fmt.Errorf("failed to clear prior chunks: %w", err)
	}

	// Split each page separately so every chunk keeps its true source page.
	var chunks []storage.Chunk
	for pageNum, page := range pages {
		for _, text := range p.splitter.Split(page) {
			chunks = append(chunks, storage.Chunk{
				ID:         uuid.NewString(),
				TenderID:   tenderID,
				Page:       pageNum + 1,
				ChunkIndex: len(chunks),
				Text:       text,
			})
		}
	}

	if len(chunks) == 0 {
		logger.WarnContext(ctx, "no chunks generated", "tender_id", tenderID, "path", pdfPath)
		return 0, nil
	}

	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, chunk := range batch {
			texts[i] = chunk.Text
		}

		vectors, err := p.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return 0, fmt.Errorf("failed to embed chunks: %w", err)
		}

		points := make([]vectorstore.Point, len(batch))
		for i, chunk := range batch {
			points[i] = vectorstore.Point{
				ID:  chunk.ID,
				Vec: vectors[i],
				Meta: map[string]any{
					"tender_id":   chunk.TenderID,
					"page":        chunk.Page,
					"chunk_index": chunk.ChunkIndex,
				},
			}
		}
		if err := p.vectorStore.Upsert(ctx, p.collection, points); err != nil {
			return 0, fmt.Errorf("failed to upsert vectors: %w", err)
		}

		for i := range batch {
			if err := p.chunkRepo.Insert(ctx, &batch[i]); err != nil {
				return 0, fmt.Errorf("failed to store chunk: %w", err)
			}
		}
	}

	logger.InfoContext(ctx, "tender indexed",
		"tender_id", tenderID,
		"pages", len(pages),
		"chunks", len(chunks),
	)
	return len(chunks), nil
}

// dumpPages writes the normalized page text to the output directory so the
// preprocessing result can be inspected.
func (p *Pipeline) dumpPages(pages []string) error {
	if p.outputDir == "" {
		return nil
	}

	var builder strings.Builder
	for i, page := range pages {
		fmt.Fprintf(&builder, "Page %d:\n%s\n\n%s\n\n", i+1, page, strings.Repeat("-", 50))
	}

	path := filepath.Join(p.outputDir, "pages_preprocessed.txt")
	return os.WriteFile(path, []byte(builder.String()), 0644)
}
