package indexer

import "strings"

const (
	// DefaultChunkSize is the target chunk size in bytes. The value is
	// empirical: large enough to keep a requirement or milestone in one
	// piece, small enough for the embedding model to represent it well.
	DefaultChunkSize = 1000
	// DefaultChunkOverlap is carried between adjacent chunks so context at
	// a chunk boundary is not lost.
	DefaultChunkOverlap = 10
)

// Splitter splits normalized page text into bounded, overlapping chunks.
// It prefers breaking at paragraph boundaries, then sentence boundaries,
// then word boundaries, and only hard-cuts when a single word exceeds the
// chunk size. Splitting is deterministic.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
	separators   []string
}

// NewSplitter creates a Splitter with the default size and overlap.
func NewSplitter() *Splitter {
	return NewSplitterWith(DefaultChunkSize, DefaultChunkOverlap)
}

// NewSplitterWith creates a Splitter with an explicit size and overlap.
func NewSplitterWith(chunkSize, chunkOverlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = DefaultChunkOverlap
	}
	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		separators:   []string{"\n\n", "\n", ". ", " "},
	}
}

// Split splits text into chunks of at most the configured size.
// Empty and whitespace-only pieces are dropped.
func (s *Splitter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return s.split(text, s.separators)
}

func (s *Splitter) split(text string, separators []string) []string {
	if len(text) <= s.chunkSize {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return []string{trimmed}
		}
		return nil
	}

	// Pick the first separator that actually occurs in the text.
	sep := ""
	var remaining []string
	for i, candidate := range separators {
		if strings.Contains(text, candidate) {
			sep = candidate
			remaining = separators[i+1:]
			break
		}
	}
	if sep == "" {
		return s.hardCut(text)
	}

	pieces := strings.Split(text, sep)

	var chunks []string
	var pending []string
	for _, piece := range pieces {
		if len(piece) < s.chunkSize {
			pending = append(pending, piece)
			continue
		}
		// Oversized piece: flush what we have, then recurse with the finer
		// separators.
		chunks = append(chunks, s.merge(pending, sep)...)
		pending = nil
		if len(remaining) == 0 {
			chunks = append(chunks, s.hardCut(piece)...)
		} else {
			chunks = append(chunks, s.split(piece, remaining)...)
		}
	}
	chunks = append(chunks, s.merge(pending, sep)...)
	return chunks
}

// merge greedily joins pieces into chunks of at most chunkSize, keeping
// trailing pieces within the overlap budget for the next chunk.
func (s *Splitter) merge(pieces []string, sep string) []string {
	var chunks []string
	var current []string
	total := 0

	appendChunk := func() {
		chunk := strings.TrimSpace(strings.Join(current, sep))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}

	sepLen := func(n int) int {
		if n > 0 {
			return len(sep)
		}
		return 0
	}

	for _, piece := range pieces {
		if total+len(piece)+sepLen(len(current)) > s.chunkSize && len(current) > 0 {
			appendChunk()
			// Carry trailing pieces whose combined length fits the overlap
			// budget and leaves room for the incoming piece.
			for len(current) > 0 &&
				(total > s.chunkOverlap || total+len(piece)+sepLen(len(current)) > s.chunkSize) {
				total -= len(current[0]) + sepLen(len(current)-1)
				current = current[1:]
			}
		}
		total += len(piece) + sepLen(len(current))
		current = append(current, piece)
	}
	if len(current) > 0 {
		appendChunk()
	}
	return chunks
}

// hardCut slices text into fixed windows when no separator is usable.
func (s *Splitter) hardCut(text string) []string {
	step := s.chunkSize - s.chunkOverlap
	var chunks []string
	for start := 0; start < len(text); start += step {
		end := start + s.chunkSize
		if end > len(text) {
			end = len(text)
		}
		chunk := strings.TrimSpace(text[start:end])
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(text) {
			break
		}
	}
	return chunks
}
