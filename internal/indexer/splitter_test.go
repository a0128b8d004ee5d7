package indexer

import (
	"strings"
	"testing"
)

func TestSplitter_ShortTextSingleChunk(t *testing.T) {
	splitter := NewSplitter()
	chunks := splitter.Split("A short tender paragraph.")
	if len(chunks) != 1 {
		t.Fatalf("Split() returned %d chunks, want 1", len(chunks))
	}
	if chunks[0] != "A short tender paragraph." {
		t.Errorf("Split() chunk = %q, want input unchanged", chunks[0])
	}
}

func TestSplitter_EmptyInput(t *testing.T) {
	splitter := NewSplitter()
	if chunks := splitter.Split(""); chunks != nil {
		t.Errorf("Split(\"\") = %v, want nil", chunks)
	}
	if chunks := splitter.Split("   \n\t  "); chunks != nil {
		t.Errorf("Split(whitespace) = %v, want nil", chunks)
	}
}

func TestSplitter_ChunkSizeBound(t *testing.T) {
	splitter := NewSplitter()

	// 40 sentences of ~100 bytes each.
	sentence := strings.Repeat("x", 97) + ". "
	text := strings.TrimSpace(strings.Repeat(sentence, 40))

	chunks := splitter.Split(text)
	if len(chunks) < 2 {
		t.Fatalf("Split() returned %d chunks, want several", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > DefaultChunkSize {
			t.Errorf("chunk %d length = %d, exceeds %d", i, len(chunk), DefaultChunkSize)
		}
	}
}

func TestSplitter_PrefersSentenceBoundaries(t *testing.T) {
	splitter := NewSplitterWith(60, 0)
	text := "First sentence here. Second sentence here. Third sentence here."

	chunks := splitter.Split(text)
	if len(chunks) < 2 {
		t.Fatalf("Split() returned %d chunks, want at least 2", len(chunks))
	}
	for i, chunk := range chunks {
		if strings.HasPrefix(chunk, " ") || strings.HasSuffix(chunk, " ") {
			t.Errorf("chunk %d %q is not trimmed", i, chunk)
		}
	}
	if !strings.HasPrefix(chunks[0], "First sentence here") {
		t.Errorf("first chunk = %q, want it to start with the first sentence", chunks[0])
	}
}

func TestSplitter_HardCutWithoutSeparators(t *testing.T) {
	splitter := NewSplitterWith(100, 10)
	text := strings.Repeat("a", 250)

	chunks := splitter.Split(text)
	if len(chunks) < 3 {
		t.Fatalf("Split() returned %d chunks, want at least 3", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 100 {
			t.Errorf("chunk %d length = %d, exceeds 100", i, len(chunk))
		}
	}
	// Adjacent hard-cut chunks share the overlap.
	if !strings.HasSuffix(chunks[0], "a") || chunks[1][:10] != strings.Repeat("a", 10) {
		t.Error("hard-cut chunks do not carry overlap")
	}
}

func TestSplitter_Deterministic(t *testing.T) {
	splitter := NewSplitter()
	text := strings.TrimSpace(strings.Repeat("Some tender clause text with details. ", 100))

	first := splitter.Split(text)
	second := splitter.Split(text)
	if len(first) != len(second) {
		t.Fatalf("Split() chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}
