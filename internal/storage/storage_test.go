package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() unexpected error: %v", err)
	}
	return db
}

func TestNew(t *testing.T) {
	db := testDB(t)
	if db.Stats().MaxOpenConnections != 25 {
		t.Errorf("New() MaxOpenConnections = %v, want 25", db.Stats().MaxOpenConnections)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := testDB(t)
	// Running migrations twice must not fail.
	if err := Migrate(db); err != nil {
		t.Errorf("Migrate() second run unexpected error: %v", err)
	}
}

func TestTenderRepo_InsertAndGet(t *testing.T) {
	db := testDB(t)
	repo := NewTenderRepo(db)
	ctx := context.Background()

	tender := &Tender{
		ID:         "tender-1",
		Name:       "CPQ Ausschreibung",
		RecordYAML: "Overview:\n  Tender Title: Example\n",
		ExtractOK:  true,
	}
	if err := repo.Insert(ctx, tender); err != nil {
		t.Fatalf("Insert() unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, "tender-1")
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if got.Name != "CPQ Ausschreibung" {
		t.Errorf("GetByID() Name = %q, want CPQ Ausschreibung", got.Name)
	}
	if !got.ExtractOK {
		t.Error("GetByID() ExtractOK = false, want true")
	}
	if got.CreatedAt.IsZero() {
		t.Error("GetByID() CreatedAt is zero, want server default")
	}
}

func TestTenderRepo_GetByID_NotFound(t *testing.T) {
	db := testDB(t)
	repo := NewTenderRepo(db)

	_, err := repo.GetByID(context.Background(), "missing")
	if err != ErrNotFound {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestTenderRepo_UpdateRecordAndAssessment(t *testing.T) {
	db := testDB(t)
	repo := NewTenderRepo(db)
	ctx := context.Background()

	if err := repo.Insert(ctx, &Tender{ID: "t1", Name: "Tender"}); err != nil {
		t.Fatalf("Insert() unexpected error: %v", err)
	}

	if err := repo.UpdateRecord(ctx, "t1", "Overview: {}\n", true); err != nil {
		t.Fatalf("UpdateRecord() unexpected error: %v", err)
	}
	if err := repo.UpdateAssessment(ctx, "t1", "Complexity:\n  Rating: High\n"); err != nil {
		t.Fatalf("UpdateAssessment() unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, "t1")
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if got.RecordYAML != "Overview: {}\n" {
		t.Errorf("RecordYAML = %q, want updated value", got.RecordYAML)
	}
	if got.AssessmentYAML != "Complexity:\n  Rating: High\n" {
		t.Errorf("AssessmentYAML = %q, want updated value", got.AssessmentYAML)
	}

	if err := repo.UpdateRecord(ctx, "missing", "x", false); err != ErrNotFound {
		t.Errorf("UpdateRecord() on missing tender error = %v, want ErrNotFound", err)
	}
	if err := repo.UpdateAssessment(ctx, "missing", "x"); err != ErrNotFound {
		t.Errorf("UpdateAssessment() on missing tender error = %v, want ErrNotFound", err)
	}
}

func TestTenderRepo_List(t *testing.T) {
	db := testDB(t)
	repo := NewTenderRepo(db)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Insert(ctx, &Tender{ID: id, Name: "tender " + id}); err != nil {
			t.Fatalf("Insert(%q) unexpected error: %v", id, err)
		}
	}

	tenders, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(tenders) != 3 {
		t.Errorf("List() returned %d tenders, want 3", len(tenders))
	}
}

func TestChunkRepo_RoundTrip(t *testing.T) {
	db := testDB(t)
	tenderRepo := NewTenderRepo(db)
	chunkRepo := NewChunkRepo(db)
	ctx := context.Background()

	if err := tenderRepo.Insert(ctx, &Tender{ID: "t1", Name: "Tender"}); err != nil {
		t.Fatalf("Insert() unexpected error: %v", err)
	}

	chunk := &Chunk{
		ID:         "c1",
		TenderID:   "t1",
		Page:       4,
		ChunkIndex: 0,
		Text:       "Die Frist endet am 31. Dezember.",
	}
	if err := chunkRepo.Insert(ctx, chunk); err != nil {
		t.Fatalf("Insert() unexpected error: %v", err)
	}

	got, err := chunkRepo.GetByID(ctx, "c1")
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if got.Page != 4 {
		t.Errorf("GetByID() Page = %d, want 4", got.Page)
	}
	if got.Text != chunk.Text {
		t.Errorf("GetByID() Text = %q, want %q", got.Text, chunk.Text)
	}

	count, err := chunkRepo.CountByTender(ctx, "t1")
	if err != nil {
		t.Fatalf("CountByTender() unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("CountByTender() = %d, want 1", count)
	}

	if err := chunkRepo.DeleteByTender(ctx, "t1"); err != nil {
		t.Fatalf("DeleteByTender() unexpected error: %v", err)
	}
	if _, err := chunkRepo.GetByID(ctx, "c1"); err != ErrNotFound {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
}
