package rag

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"tenderdesk/internal/contextutil"
	"tenderdesk/internal/llm"
)

const (
	// historyCap bounds the rolling dialogue window. Eviction is FIFO and
	// the two seed entries are not exempt: a long conversation eventually
	// pushes them out, trading topic grounding for recency.
	historyCap = 20

	// retrieveK is how many passages support each turn.
	retrieveK = 5

	// apologyAnswer is returned verbatim whenever the model call fails.
	apologyAnswer = "I'm sorry, I couldn't process your request at the moment."

	// passageDelimiter separates retrieved passages inside the prompt.
	passageDelimiter = "\n---\n"
)

// State is the lifecycle state of a Conversation.
type State int

const (
	// StateIdle means Start has not been called yet.
	StateIdle State = iota
	// StateActive means the conversation accepts turns.
	StateActive
	// StateEnded is terminal; a new Conversation is required to restart.
	StateEnded
)

// Conversation holds the rolling dialogue history for one topic and
// answers user turns grounded in retrieved tender passages.
type Conversation struct {
	mu        sync.Mutex
	topic     string
	state     State
	history   []string
	retriever PassageSource
	generator Generator
}

// NewConversation creates an idle conversation backed by the given
// retriever and generator.
func NewConversation(retriever PassageSource, generator Generator) *Conversation {
	return &Conversation{
		retriever: retriever,
		generator: generator,
	}
}

// Start seeds the history and activates the conversation. Structured
// initial context must be flattened to a string by the caller; the
// record's Section type does this for tender topics.
func (c *Conversation) Start(topic, initialContext string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.topic = topic
	c.history = []string{
		fmt.Sprintf("Topic: %s", topic),
		fmt.Sprintf("Initial Context: %s", initialContext),
	}
	c.state = StateActive
}

// End moves the conversation to its terminal state.
func (c *Conversation) End() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateEnded
}

// State returns the current lifecycle state.
func (c *Conversation) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Context returns the full history joined by newlines, oldest first.
func (c *Conversation) Context() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateIdle {
		return "No active conversation."
	}
	return strings.Join(c.history, "\n")
}

// appendLocked appends an entry and enforces the history cap, dropping
// the oldest entries first. Callers must hold c.mu.
func (c *Conversation) appendLocked(entry string) {
	c.history = append(c.history, entry)
	if len(c.history) > historyCap {
		c.history = c.history[len(c.history)-historyCap:]
	}
}

// Send runs one conversation turn: retrieve passages for the query,
// assemble a grounded prompt, invoke the model and return the answer with
// its reference list.
//
// Provider failures are not surfaced as errors: the turn degrades to a
// fixed apology with no references, the user turn stays in history and no
// assistant turn is appended. The only error conditions are an inactive
// session and an unavailable index.
func (c *Conversation) Send(ctx context.Context, userQuery string) (Reply, error) {
	logger := contextutil.LoggerFromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive {
		return Reply{}, ErrNoSession
	}

	c.appendLocked(fmt.Sprintf("User: %s", userQuery))

	// Retrieval uses the latest query alone; history only shapes generation.
	passages, err := c.retriever.Search(ctx, userQuery, retrieveK)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to retrieve passages: %w", err)
	}

	references := buildReferences(passages)
	prompt := buildPrompt(passages, strings.Join(c.history, "\n"))

	output, err := c.generator.Complete(ctx, prompt, llm.ChatParams{
		MaxTokens:   500,
		Temperature: 0.3,
		Stop:        []string{"\nUser:", "\nAI:"},
	})
	if err != nil {
		logger.ErrorContext(ctx, "model call failed, degrading to apology", "topic", c.topic, "error", err)
		return Reply{Answer: apologyAnswer, References: []Reference{}}, nil
	}

	answer := strings.TrimSpace(output)
	c.appendLocked(fmt.Sprintf("AI: %s", answer))

	return Reply{Answer: answer, References: references}, nil
}

// buildReferences labels each passage by retrieval rank and pairs it with
// a bounded snippet. The true source page rides along for callers that
// want real provenance.
func buildReferences(passages []Passage) []Reference {
	references := make([]Reference, 0, len(passages))
	for _, passage := range passages {
		references = append(references, Reference{
			Label:      fmt.Sprintf("Page %d", passage.Rank),
			Snippet:    ExtractSnippet(passage.Text, snippetMaxLen),
			SourcePage: passage.Page,
		})
	}
	return references
}

// buildPrompt assembles the instruction block, the retrieved passages and
// the rolling conversation history into a single prompt.
func buildPrompt(passages []Passage, history string) string {
	texts := make([]string, 0, len(passages))
	for _, passage := range passages {
		texts = append(texts, passage.Text)
	}

	var builder strings.Builder
	builder.WriteString(`You are an AI assistant specialized in providing information based on the provided documents.

- **Stay on Topic**: Only provide information that is directly related to the selected topic.
- **Use Provided Information**: Base all your answers solely on the retrieved documents and the ongoing conversation context.
- **No Assumptions**: If the information is not available in the provided documents, respond with "Not Provided".
- **Conciseness**: Provide clear and concise answers without unnecessary elaboration.
- **Cite References**: At the end of your response, list the reference numbers that were used from the retrieved documents in the format [1], [2], etc.

### Retrieved Information:
`)
	builder.WriteString(strings.Join(texts, passageDelimiter))
	builder.WriteString("\n\n### Conversation Context:\n")
	builder.WriteString(history)
	builder.WriteString("\n\n### Response:\n")
	return builder.String()
}

// FormatReferences renders a reference list as the numbered display
// string used by the HTTP layer ("Page 1: snippet..." per line).
func FormatReferences(references []Reference) string {
	if len(references) == 0 {
		return "No references available."
	}
	lines := make([]string, 0, len(references))
	for _, ref := range references {
		lines = append(lines, fmt.Sprintf("%s: %s", ref.Label, ref.Snippet))
	}
	return strings.Join(lines, "\n")
}
