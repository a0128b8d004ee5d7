package rag

import (
	"context"
	"fmt"
	"sync"
)

const (
	generalTopic = "general"
	generalSeed  = "This is a general conversation."
)

// Topic is one conversational subject drawn from the structured tender
// record: a section key plus its flattened content, used to seed sessions.
type Topic struct {
	Key     string
	Context string
}

// Manager owns the registry of active conversations, one per topic key,
// plus a topic-less general session. A mutex guards the registry; the
// deployment is single-user, but concurrent requests on the same topic
// must not corrupt it.
type Manager struct {
	mu        sync.Mutex
	retriever PassageSource
	generator Generator
	topics    []Topic
	sessions  map[string]*Conversation
	general   *Conversation
}

// NewManager creates a Manager with no loaded record. The general session
// is active immediately; topic sessions become available once SetTopics
// is called with a loaded record.
func NewManager(retriever PassageSource, generator Generator) *Manager {
	m := &Manager{
		retriever: retriever,
		generator: generator,
		sessions:  make(map[string]*Conversation),
	}
	m.general = NewConversation(retriever, generator)
	m.general.Start(generalTopic, generalSeed)
	return m
}

// SetTopics replaces the loaded topic set, usually after a new tender has
// been extracted. Existing sessions keep running against their old seeds.
func (m *Manager) SetTopics(topics []Topic) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.topics = topics
}

// Topics returns the topic keys in the record's defined order.
func (m *Manager) Topics() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0, len(m.topics))
	for _, topic := range m.topics {
		keys = append(keys, topic.Key)
	}
	return keys
}

// findTopic returns the topic entry for key. Callers must hold m.mu.
func (m *Manager) findTopic(key string) (Topic, bool) {
	for _, topic := range m.topics {
		if topic.Key == key {
			return topic, true
		}
	}
	return Topic{}, false
}

// Start creates and registers a session for the topic, replacing any
// prior session and its history. The returned message describes the
// outcome; ok is false when the topic is not part of the loaded record,
// in which case nothing is registered.
func (m *Manager) Start(topicKey string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	topic, found := m.findTopic(topicKey)
	if !found {
		return fmt.Sprintf("The topic %q does not exist in the loaded tender record.", topicKey), false
	}

	conversation := NewConversation(m.retriever, m.generator)
	conversation.Start(topic.Key, topic.Context)
	m.sessions[topicKey] = conversation
	return fmt.Sprintf("Conversation started on topic: %s", topicKey), true
}

// Send delegates a user message to the topic's session.
// Returns ErrNoSession (wrapped with the topic) when no session is active.
func (m *Manager) Send(ctx context.Context, topicKey, message string) (Reply, error) {
	m.mu.Lock()
	conversation, ok := m.sessions[topicKey]
	m.mu.Unlock()

	if !ok {
		return Reply{}, fmt.Errorf("topic %q: %w", topicKey, ErrNoSession)
	}
	return conversation.Send(ctx, message)
}

// End removes the topic's session from the registry. The returned message
// describes the outcome; ending an unknown topic is a no-op.
func (m *Manager) End(topicKey string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	conversation, ok := m.sessions[topicKey]
	if !ok {
		return fmt.Sprintf("No active conversation for topic %q.", topicKey)
	}
	conversation.End()
	delete(m.sessions, topicKey)
	return fmt.Sprintf("Conversation on topic %q has been ended.", topicKey)
}

// Context returns the topic session's full history. ok is false when no
// session is active for the topic.
func (m *Manager) Context(topicKey string) (string, bool) {
	m.mu.Lock()
	conversation, active := m.sessions[topicKey]
	m.mu.Unlock()

	if !active {
		return "", false
	}
	return conversation.Context(), true
}

// GeneralSend delegates a message to the topic-less session.
func (m *Manager) GeneralSend(ctx context.Context, message string) (Reply, error) {
	m.mu.Lock()
	conversation := m.general
	m.mu.Unlock()
	return conversation.Send(ctx, message)
}

// GeneralEnd resets the topic-less session to a fresh seed state instead
// of terminating it.
func (m *Manager) GeneralEnd() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.general = NewConversation(m.retriever, m.generator)
	m.general.Start(generalTopic, generalSeed)
	return "Conversation on general topic has been ended."
}

// GeneralContext returns the topic-less session's full history.
func (m *Manager) GeneralContext() string {
	m.mu.Lock()
	conversation := m.general
	m.mu.Unlock()
	return conversation.Context()
}
