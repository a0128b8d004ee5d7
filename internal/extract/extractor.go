package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tenderdesk/internal/contextutil"
	"tenderdesk/internal/llm"
	"tenderdesk/internal/rag"
)

const (
	// extractQuery is the broad retrieval query used to gather record
	// source material from the index.
	extractQuery = "What are important things in the tender?"

	// extractK is how many passages feed the extraction prompt.
	extractK = 5

	rawRecordFile       = "raw_record.yaml"
	malformedRecordFile = "malformed_record.yaml"
)

// Extractor turns an indexed tender into a structured Record by
// retrieving broad passages and asking the model to fill a fixed YAML
// schema. Raw model output is written to the output directory so a
// malformed response can be inspected after the fact.
type Extractor struct {
	retriever rag.PassageSource
	generator rag.Generator
	outputDir string
}

// NewExtractor creates a new Extractor writing debug artifacts under
// outputDir.
func NewExtractor(retriever rag.PassageSource, generator rag.Generator, outputDir string) *Extractor {
	return &Extractor{
		retriever: retriever,
		generator: generator,
		outputDir: outputDir,
	}
}

// Extract retrieves broad tender passages, prompts the model for the
// record schema and parses the result.
//
// Retrieval and model failures are returned as errors. A response that is
// not valid YAML is not an error: the raw text is preserved for
// inspection and a zero Record with ok=false is returned, so the caller
// can keep the tender usable without a structured record.
func (e *Extractor) Extract(ctx context.Context) (Record, string, bool, error) {
	logger := contextutil.LoggerFromContext(ctx)

	passages, err := e.retriever.Search(ctx, extractQuery, extractK)
	if err != nil {
		return Record{}, "", false, fmt.Errorf("failed to retrieve extraction passages: %w", err)
	}

	texts := make([]string, 0, len(passages))
	for _, passage := range passages {
		texts = append(texts, passage.Text)
	}

	raw, err := e.generator.Complete(ctx, buildExtractionPrompt(strings.Join(texts, "\n")), llm.ChatParams{
		MaxTokens:   1500,
		Temperature: 0.2,
		Stop:        []string{"}"},
	})
	if err != nil {
		return Record{}, "", false, fmt.Errorf("failed to generate record: %w", err)
	}
	raw = strings.TrimSpace(raw)

	e.dump(ctx, rawRecordFile, raw)

	record, err := ParseRecord(raw)
	if err != nil {
		logger.WarnContext(ctx, "model produced malformed record yaml", "error", err)
		e.dump(ctx, malformedRecordFile, raw)
		return Record{}, raw, false, nil
	}

	logger.InfoContext(ctx, "structured record extracted", "passages", len(passages))
	return record, raw, true, nil
}

// dump writes a debug artifact, logging instead of failing when the
// output directory is not writable.
func (e *Extractor) dump(ctx context.Context, name, content string) {
	path := filepath.Join(e.outputDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to write debug artifact", "path", path, "error", err)
	}
}

// buildExtractionPrompt embeds the retrieved text in the fixed schema
// prompt.
func buildExtractionPrompt(retrievedText string) string {
	var builder strings.Builder
	builder.WriteString(`Extract the following information from the tender document and structure it into the specified YAML format. If any field is not available, set its value to "Not Provided".

### Retrieved Text:
`)
	builder.WriteString(retrievedText)
	builder.WriteString(`

### YAML Structure:
Overview:
  Tender Title: "value"
  Issuing Company: "value"
  Deadline: "value"
  Reference Number: "value"
Cost Information:
  Budget Information: "value"
  Payment Terms: "value"
  Cost Breakdown: "value"
Key Objectives: "value"
General Requirements: "value"
Special Requirements: "value"
Phases and Milestones: "value"
Submission Guidelines: "value"
Technical Specifications: "value"
Legal and Compliance Requirements: "value"
Support and Maintenance: "value"
Project Team and Qualifications: "value"
Contact Information:
  Name: "value"
  Email: "value"
  Phone: "value"
  Address: "value"
`)
	return builder.String()
}
