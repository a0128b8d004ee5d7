package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"tenderdesk/internal/contextutil"
	"tenderdesk/internal/rag"
	"tenderdesk/internal/service"
)

// ChatHandler handles conversation endpoints. An empty topic routes to
// the topic-less general session.
type ChatHandler struct {
	chat service.ChatManager
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chat service.ChatManager) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// ChatStartRequest starts a conversation on a record topic.
//
// swagger:model ChatStartRequest
type ChatStartRequest struct {
	Topic string `json:"topic"`
}

// ChatMessageRequest sends one user message to a conversation.
//
// swagger:model ChatMessageRequest
type ChatMessageRequest struct {
	Topic   string `json:"topic"`
	Message string `json:"message"`
}

// ChatStatusResponse carries a human-readable outcome message.
//
// swagger:model ChatStatusResponse
type ChatStatusResponse struct {
	Message string `json:"message"`
}

// ChatReplyResponse is one conversation turn's answer.
//
// swagger:model ChatReplyResponse
type ChatReplyResponse struct {
	Answer string `json:"answer"`
	// References labels each supporting passage by retrieval rank.
	References []rag.Reference `json:"references"`
	// ReferencesText is the rendered "Page 1: snippet" display form.
	ReferencesText string `json:"references_text"`
}

// Start begins a conversation on the requested topic, or reports why it
// cannot.
func (h *ChatHandler) Start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req ChatStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		writeJSON(w, http.StatusOK, ChatStatusResponse{Message: "Conversation started on general topic."})
		return
	}

	msg, ok := h.chat.Start(topic)
	if !ok {
		logger.WarnContext(ctx, "chat start rejected", "topic", topic)
		writeError(w, http.StatusNotFound, msg)
		return
	}
	writeJSON(w, http.StatusOK, ChatStatusResponse{Message: msg})
}

// Send runs one conversation turn.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req ChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	topic := strings.TrimSpace(req.Topic)

	var reply rag.Reply
	var err error
	if topic == "" {
		reply, err = h.chat.GeneralSend(ctx, req.Message)
	} else {
		reply, err = h.chat.Send(ctx, topic, req.Message)
	}
	if err != nil {
		switch {
		case errors.Is(err, rag.ErrNoSession):
			writeError(w, http.StatusConflict, "No active conversation for this topic. Please start a conversation first.")
		case errors.Is(err, rag.ErrIndexUnavailable):
			writeError(w, http.StatusServiceUnavailable, "Tender index is not available yet")
		default:
			logger.ErrorContext(ctx, "chat turn failed", "topic", topic, "error", err)
			writeError(w, http.StatusBadGateway, "Failed to process message")
		}
		return
	}

	references := reply.References
	if references == nil {
		references = []rag.Reference{}
	}
	writeJSON(w, http.StatusOK, ChatReplyResponse{
		Answer:         reply.Answer,
		References:     references,
		ReferencesText: rag.FormatReferences(references),
	})
}

// End terminates a conversation. The general session is re-seeded
// instead of terminated.
func (h *ChatHandler) End(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req ChatStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	topic := strings.TrimSpace(req.Topic)
	var msg string
	if topic == "" {
		msg = h.chat.GeneralEnd()
	} else {
		msg = h.chat.End(topic)
	}
	writeJSON(w, http.StatusOK, ChatStatusResponse{Message: msg})
}

// Topics lists the record's conversation topics in record order.
func (h *ChatHandler) Topics(w http.ResponseWriter, r *http.Request) {
	topics := h.chat.Topics()
	if topics == nil {
		topics = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"topics": topics})
}

// Context returns the full rolling history of a conversation.
func (h *ChatHandler) Context(w http.ResponseWriter, r *http.Request) {
	topic := strings.TrimSpace(r.URL.Query().Get("topic"))
	if topic == "" {
		writeJSON(w, http.StatusOK, map[string]string{"context": h.chat.GeneralContext()})
		return
	}

	history, active := h.chat.Context(topic)
	if !active {
		writeError(w, http.StatusNotFound, "No active conversation for this topic")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"context": history})
}
