package indexer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tenderdesk/internal/storage"
	storage_mocks "tenderdesk/internal/storage/mocks"
	"tenderdesk/internal/vectorstore"
	vectorstore_mocks "tenderdesk/internal/vectorstore/mocks"

	"go.uber.org/mock/gomock"
)

type stubEmbedder struct {
	size int
	err  error
}

func (s *stubEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	vecs := make([][]float32, len(texts))
	for i := range texts {
		vecs[i] = make([]float32, s.size)
	}
	return vecs, nil
}

func TestNewPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChunkRepo := storage_mocks.NewMockChunkStore(ctrl)
	mockVectorStore := vectorstore_mocks.NewMockVectorStore(ctrl)

	pipeline := NewPipeline(mockChunkRepo, &stubEmbedder{size: 3}, mockVectorStore, "test-collection", "")
	if pipeline == nil {
		t.Fatal("NewPipeline() returned nil")
	}
	if pipeline.splitter == nil {
		t.Error("NewPipeline() splitter should not be nil")
	}
	if pipeline.collection != "test-collection" {
		t.Errorf("NewPipeline() collection = %v, want test-collection", pipeline.collection)
	}
}

func TestPipeline_IndexTender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChunkRepo := storage_mocks.NewMockChunkStore(ctrl)
	mockVectorStore := vectorstore_mocks.NewMockVectorStore(ctrl)

	pipeline := NewPipeline(mockChunkRepo, &stubEmbedder{size: 3}, mockVectorStore, "test-collection", "")

	// Page 1 is long enough to split into two chunks, page 2 yields one,
	// so chunk indices and source pages diverge.
	pageOne := strings.Repeat("Alle Angebote sind bis zum Stichtag einzureichen. ", 30)
	pageTwo := "Der Zuschlag erfolgt im Dezember."
	pipeline.extractPages = func(_ context.Context, _ string) ([]string, error) {
		return []string{pageOne, pageTwo}, nil
	}

	var points []vectorstore.Point
	var inserted []storage.Chunk

	// A rebuild clears the tender's prior vectors and rows before any
	// new data is written.
	delVectors := mockVectorStore.EXPECT().
		DeleteByTender(gomock.Any(), "test-collection", "tender-1").
		Return(nil)
	delChunks := mockChunkRepo.EXPECT().
		DeleteByTender(gomock.Any(), "tender-1").
		Return(nil)
	upsert := mockVectorStore.EXPECT().
		Upsert(gomock.Any(), "test-collection", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, batch []vectorstore.Point) error {
			points = append(points, batch...)
			return nil
		})
	gomock.InOrder(delVectors, delChunks, upsert)
	mockChunkRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, chunk *storage.Chunk) error {
			inserted = append(inserted, *chunk)
			return nil
		}).
		Times(3).
		After(upsert)

	count, err := pipeline.IndexTender(context.Background(), "tender-1", "/uploads/doc.pdf")
	if err != nil {
		t.Fatalf("IndexTender() unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("IndexTender() count = %d, want 3", count)
	}

	wantPages := []int{1, 1, 2}
	if len(inserted) != len(wantPages) {
		t.Fatalf("inserted %d chunks, want %d", len(inserted), len(wantPages))
	}
	for i, chunk := range inserted {
		if chunk.TenderID != "tender-1" {
			t.Errorf("chunk %d TenderID = %q, want tender-1", i, chunk.TenderID)
		}
		if chunk.Page != wantPages[i] {
			t.Errorf("chunk %d Page = %d, want %d", i, chunk.Page, wantPages[i])
		}
		if chunk.ChunkIndex != i {
			t.Errorf("chunk %d ChunkIndex = %d, want %d", i, chunk.ChunkIndex, i)
		}
		if chunk.Text == "" {
			t.Errorf("chunk %d has empty text", i)
		}
		if len(chunk.Text) > DefaultChunkSize {
			t.Errorf("chunk %d text length = %d, exceeds %d", i, len(chunk.Text), DefaultChunkSize)
		}
	}

	if len(points) != len(inserted) {
		t.Fatalf("upserted %d points, want %d", len(points), len(inserted))
	}
	for i, point := range points {
		if point.ID != inserted[i].ID {
			t.Errorf("point %d ID = %q, want chunk ID %q", i, point.ID, inserted[i].ID)
		}
		if len(point.Vec) != 3 {
			t.Errorf("point %d vector length = %d, want 3", i, len(point.Vec))
		}
		if got := point.Meta["page"]; got != inserted[i].Page {
			t.Errorf("point %d page = %v, want %d", i, got, inserted[i].Page)
		}
		if got := point.Meta["chunk_index"]; got != i {
			t.Errorf("point %d chunk_index = %v, want %d", i, got, i)
		}
		if got := point.Meta["tender_id"]; got != "tender-1" {
			t.Errorf("point %d tender_id = %v, want tender-1", i, got)
		}
	}
}

func TestPipeline_IndexTender_EmbedFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChunkRepo := storage_mocks.NewMockChunkStore(ctrl)
	mockVectorStore := vectorstore_mocks.NewMockVectorStore(ctrl)

	embedErr := errors.New("provider unreachable")
	pipeline := NewPipeline(mockChunkRepo, &stubEmbedder{size: 3, err: embedErr}, mockVectorStore, "test-collection", "")
	pipeline.extractPages = func(_ context.Context, _ string) ([]string, error) {
		return []string{"Die Frist endet am 30. Juni."}, nil
	}

	// The prior index is cleared before embedding, but nothing is
	// written once the provider fails.
	mockVectorStore.EXPECT().DeleteByTender(gomock.Any(), "test-collection", "tender-1").Return(nil)
	mockChunkRepo.EXPECT().DeleteByTender(gomock.Any(), "tender-1").Return(nil)

	_, err := pipeline.IndexTender(context.Background(), "tender-1", "/uploads/doc.pdf")
	if err == nil {
		t.Fatal("IndexTender() expected error, got nil")
	}
	if !errors.Is(err, embedErr) {
		t.Errorf("IndexTender() error = %v, want wrapped %v", err, embedErr)
	}
	if !strings.Contains(err.Error(), "failed to embed chunks") {
		t.Errorf("IndexTender() error = %v, want embed context", err)
	}
}

func TestPipeline_IndexTender_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChunkRepo := storage_mocks.NewMockChunkStore(ctrl)
	mockVectorStore := vectorstore_mocks.NewMockVectorStore(ctrl)

	pipeline := NewPipeline(mockChunkRepo, &stubEmbedder{size: 3}, mockVectorStore, "test-collection", "")

	_, err := pipeline.IndexTender(context.Background(), "t1", "/nonexistent/file.pdf")
	if err == nil {
		t.Error("IndexTender() expected error for missing file, got nil")
	}
}
