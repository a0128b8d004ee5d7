package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Tender represents one uploaded tender document and its derived records.
type Tender struct {
	ID             string // UUID
	Name           string
	RecordYAML     string // Structured record as YAML, empty until extraction runs
	AssessmentYAML string // Five-factor assessment as YAML, empty until assessment runs
	ExtractOK      bool   // Whether structured extraction produced a parseable record
	CreatedAt      time.Time
}

// Chunk represents a bounded passage of normalized tender text, the unit of
// retrieval. Page is the true source page number the chunk originated from;
// it is stored at indexing time so provenance never has to be inferred from
// retrieval order.
type Chunk struct {
	ID         string // UUID (same as the vector store point ID)
	TenderID   string
	Page       int // 1-based source page number
	ChunkIndex int // Index within the tender (starts at 0)
	Text       string
}
