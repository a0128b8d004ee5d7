package rag

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_rag.go -package=mocks tenderdesk/internal/rag PassageSource,Generator

import (
	"context"
	"errors"

	"tenderdesk/internal/llm"
)

var (
	// ErrIndexUnavailable is returned when the vector index has not been
	// built or loaded yet.
	ErrIndexUnavailable = errors.New("index unavailable")
	// ErrNoSession is returned when an operation requires an active
	// conversation and none exists.
	ErrNoSession = errors.New("no active conversation")
)

// Passage is one retrieved chunk of tender text. It is produced per query
// and never persisted.
type Passage struct {
	// Text is the chunk content.
	Text string
	// Page is the true source page number, recorded at indexing time.
	Page int
	// Rank is the 1-based position among the results for one query.
	Rank int
	// Score is the similarity score reported by the vector store.
	Score float32
}

// Reference points a reader at the passage supporting an answer.
type Reference struct {
	// Label is the positional display label ("Page 1".."Page 5"), assigned
	// by retrieval rank, matching the bracketed citations in the answer.
	Label string `json:"label"`
	// Snippet is a bounded excerpt of the passage text.
	Snippet string `json:"snippet"`
	// SourcePage is the true page of the source document the passage came
	// from. It can differ from the positional label.
	SourcePage int `json:"source_page"`
}

// Reply is the result of one conversation turn.
type Reply struct {
	Answer     string      `json:"answer"`
	References []Reference `json:"references"`
}

// PassageSource retrieves the passages most similar to a query.
// This interface is defined from the conversation core's perspective
// (consumer-first).
type PassageSource interface {
	// Search returns at most k passages, most similar first. Ordering is
	// deterministic for an unchanged index.
	Search(ctx context.Context, query string, k int) ([]Passage, error)
}

// Generator produces model output for a fully assembled prompt.
type Generator interface {
	Complete(ctx context.Context, prompt string, params llm.ChatParams) (string, error)
}
