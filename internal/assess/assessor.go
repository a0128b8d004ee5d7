package assess

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tenderdesk/internal/contextutil"
	"tenderdesk/internal/llm"
	"tenderdesk/internal/rag"
	"tenderdesk/internal/storage"
)

const (
	// assessQuery targets the tender's key points. The source documents
	// are German, so the query is too.
	assessQuery = "Was sind wichtige Punkte in der Ausschreibung?"

	// assessK is how many passages feed the assessment prompt.
	assessK = 5

	// summaryMaxChars bounds the retrieved text embedded in the prompt.
	summaryMaxChars = 1500

	assessmentFile = "assessment.yaml"
)

// Source retrieves passages and reports when the index is usable. The
// assessor typically runs concurrently with indexing, so it has to wait
// for the index rather than assume it.
type Source interface {
	Search(ctx context.Context, query string, k int) ([]rag.Passage, error)
	WaitReady(ctx context.Context) error
}

// Assessor produces the five-factor complexity assessment for an indexed
// tender and persists it to the tender row and the output directory.
type Assessor struct {
	source     Source
	generator  rag.Generator
	tenderRepo storage.TenderStore
	outputDir  string
}

// NewAssessor creates a new Assessor.
func NewAssessor(source Source, generator rag.Generator, tenderRepo storage.TenderStore, outputDir string) *Assessor {
	return &Assessor{
		source:     source,
		generator:  generator,
		tenderRepo: tenderRepo,
		outputDir:  outputDir,
	}
}

// Run waits for the index, retrieves key-point passages, asks the model
// to rate the five factors and persists the parsed assessment. Cancel the
// context to abandon the wait.
func (a *Assessor) Run(ctx context.Context, tenderID string) (Assessment, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := a.source.WaitReady(ctx); err != nil {
		return Assessment{}, fmt.Errorf("failed to wait for index: %w", err)
	}

	passages, err := a.source.Search(ctx, assessQuery, assessK)
	if err != nil {
		return Assessment{}, fmt.Errorf("failed to retrieve assessment passages: %w", err)
	}

	texts := make([]string, 0, len(passages))
	for _, passage := range passages {
		texts = append(texts, passage.Text)
	}
	summary := truncateChars(strings.Join(texts, "\n"), summaryMaxChars)

	output, err := a.generator.Complete(ctx, buildAssessmentPrompt(summary), llm.ChatParams{
		MaxTokens:   700,
		Temperature: 0.3,
	})
	if err != nil {
		return Assessment{}, fmt.Errorf("failed to generate assessment: %w", err)
	}

	assessment := ParseAssessment(strings.TrimSpace(output))

	rendered, err := MarshalAssessment(assessment)
	if err != nil {
		return Assessment{}, err
	}
	if err := a.tenderRepo.UpdateAssessment(ctx, tenderID, rendered); err != nil {
		return Assessment{}, fmt.Errorf("failed to persist assessment: %w", err)
	}

	path := filepath.Join(a.outputDir, assessmentFile)
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		logger.WarnContext(ctx, "failed to write assessment artifact", "path", path, "error", err)
	}

	logger.InfoContext(ctx, "complexity assessment completed", "tender_id", tenderID,
		"complexity", assessment.Complexity.Rating, "days_left", assessment.DaysLeft)
	return assessment, nil
}

// truncateChars bounds s to max characters without splitting a rune.
func truncateChars(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// buildAssessmentPrompt embeds the retrieved summary in the five-factor
// rating prompt.
func buildAssessmentPrompt(summary string) string {
	var builder strings.Builder
	builder.WriteString(`Using the following tender text, assess each factor below and provide:

- A rating (choose from the provided options).
- A verification sentence (max 20 words) explaining why you chose this rating.

Tender Text:
`)
	builder.WriteString(summary)
	builder.WriteString(`

Factors:

1. **Complexity**
   - **Ratings:** [Low], [Moderate], [High], [Not Available]
   - **Description:** Evaluate the overall complexity of the requested solution.

2. **Scalability**
   - **Ratings:** [Low], [Moderate], [High], [Not Available]
   - **Description:** Assess the ability of the solution to handle future growth.

3. **Integration Requirements**
   - **Ratings:** [Low], [Moderate], [High], [Not Available]
   - **Description:** Evaluate the complexity of integrating with existing systems.

4. **Time Feasibility**
   - **Ratings:** [Unfeasible], [Somehow Feasible], [Feasible], [Not Available]
   - **Description:** Consider the feasibility of the proposed timeline.

5. **Days Left to Submit the Proposal**
   - **Provide the number of days left or [Not Available] if not specified.

Provide your response in the following format:

Complexity:
Ratings: [Rating]
Verification Sentence: [Your verification sentence]

Scalability:
Ratings: [Rating]
Verification Sentence: [Your verification sentence]

Integration Requirements:
Ratings: [Rating]
Verification Sentence: [Your verification sentence]

Time Feasibility:
Ratings: [Rating]
Verification Sentence: [Your verification sentence]

Days Left to Submit the Proposal: [Number of days left] or [Not Available]
`)
	return builder.String()
}
