package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chunk_store.go -package=mocks tenderdesk/internal/storage ChunkStore

import (
	"context"
	"database/sql"
	"fmt"
)

// ChunkStore defines the interface for chunk storage operations.
type ChunkStore interface {
	// Insert inserts a single chunk into the database.
	// The chunk.ID must be set (UUID) before calling this method.
	Insert(ctx context.Context, chunk *Chunk) error
	// GetByID gets a chunk by its ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*Chunk, error)
	// DeleteByTender deletes all chunks for a given tender ID.
	DeleteByTender(ctx context.Context, tenderID string) error
	// CountByTender returns the number of chunks stored for a tender.
	CountByTender(ctx context.Context, tenderID string) (int, error)
}

// ChunkRepo provides methods for chunk operations.
// It implements the ChunkStore interface.
type ChunkRepo struct {
	db *sql.DB
}

// NewChunkRepo creates a new ChunkRepo.
func NewChunkRepo(db *sql.DB) *ChunkRepo {
	return &ChunkRepo{db: db}
}

// Insert inserts a single chunk into the database.
// The chunk.ID must be set (UUID) before calling this method.
func (r *ChunkRepo) Insert(ctx context.Context, chunk *Chunk) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO chunks (id, tender_id, page, chunk_index, text) VALUES (?, ?, ?, ?, ?)",
		chunk.ID, chunk.TenderID, chunk.Page, chunk.ChunkIndex, chunk.Text,
	)
	if err != nil {
		return fmt.Errorf("failed to insert chunk: %w", err)
	}
	return nil
}

// GetByID gets a chunk by its ID. Returns ErrNotFound if not found.
func (r *ChunkRepo) GetByID(ctx context.Context, id string) (*Chunk, error) {
	var chunk Chunk
	err := r.db.QueryRowContext(ctx,
		"SELECT id, tender_id, page, chunk_index, text FROM chunks WHERE id = ?",
		id,
	).Scan(&chunk.ID, &chunk.TenderID, &chunk.Page, &chunk.ChunkIndex, &chunk.Text)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query chunk: %w", err)
	}

	return &chunk, nil
}

// DeleteByTender deletes all chunks for a given tender ID.
// Used when re-indexing a tender to remove old chunks before inserting new ones.
func (r *ChunkRepo) DeleteByTender(ctx context.Context, tenderID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM chunks WHERE tender_id = ?", tenderID)
	if err != nil {
		return fmt.Errorf("failed to delete chunks by tender: %w", err)
	}
	return nil
}

// CountByTender returns the number of chunks stored for a tender.
func (r *ChunkRepo) CountByTender(ctx context.Context, tenderID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM chunks WHERE tender_id = ?",
		tenderID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count chunks: %w", err)
	}
	return count, nil
}
