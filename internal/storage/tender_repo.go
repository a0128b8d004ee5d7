package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_tender_store.go -package=mocks tenderdesk/internal/storage TenderStore

import (
	"context"
	"database/sql"
	"fmt"
)

// TenderStore defines the interface for tender persistence.
type TenderStore interface {
	// Insert inserts a new tender row. The tender.ID must be set (UUID).
	Insert(ctx context.Context, tender *Tender) error
	// GetByID gets a tender by its ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*Tender, error)
	// List returns all tenders, newest first.
	List(ctx context.Context) ([]Tender, error)
	// UpdateRecord stores the structured record YAML and the extraction flag.
	UpdateRecord(ctx context.Context, id string, recordYAML string, ok bool) error
	// UpdateAssessment stores the assessment YAML.
	UpdateAssessment(ctx context.Context, id string, assessmentYAML string) error
}

// TenderRepo provides methods for tender operations.
// It implements the TenderStore interface.
type TenderRepo struct {
	db *sql.DB
}

// NewTenderRepo creates a new TenderRepo.
func NewTenderRepo(db *sql.DB) *TenderRepo {
	return &TenderRepo{db: db}
}

// Insert inserts a new tender row. The tender.ID must be set (UUID).
func (r *TenderRepo) Insert(ctx context.Context, tender *Tender) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO tenders (id, name, record_yaml, assessment_yaml, extract_ok) VALUES (?, ?, ?, ?, ?)",
		tender.ID, tender.Name, tender.RecordYAML, tender.AssessmentYAML, tender.ExtractOK,
	)
	if err != nil {
		return fmt.Errorf("failed to insert tender: %w", err)
	}
	return nil
}

// GetByID gets a tender by its ID. Returns ErrNotFound if not found.
func (r *TenderRepo) GetByID(ctx context.Context, id string) (*Tender, error) {
	var tender Tender
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, record_yaml, assessment_yaml, extract_ok, created_at FROM tenders WHERE id = ?",
		id,
	).Scan(&tender.ID, &tender.Name, &tender.RecordYAML, &tender.AssessmentYAML, &tender.ExtractOK, &tender.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query tender: %w", err)
	}

	return &tender, nil
}

// List returns all tenders, newest first.
func (r *TenderRepo) List(ctx context.Context) ([]Tender, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, record_yaml, assessment_yaml, extract_ok, created_at FROM tenders ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenders: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tenders []Tender
	for rows.Next() {
		var tender Tender
		if err := rows.Scan(&tender.ID, &tender.Name, &tender.RecordYAML, &tender.AssessmentYAML, &tender.ExtractOK, &tender.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tender: %w", err)
		}
		tenders = append(tenders, tender)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return tenders, nil
}

// UpdateRecord stores the structured record YAML and the extraction flag.
func (r *TenderRepo) UpdateRecord(ctx context.Context, id string, recordYAML string, ok bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE tenders SET record_yaml = ?, extract_ok = ? WHERE id = ?",
		recordYAML, ok, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update tender record: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateAssessment stores the assessment YAML.
func (r *TenderRepo) UpdateAssessment(ctx context.Context, id string, assessmentYAML string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE tenders SET assessment_yaml = ? WHERE id = ?",
		assessmentYAML, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update tender assessment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
