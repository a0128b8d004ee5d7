package rag_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tenderdesk/internal/rag"
	"tenderdesk/internal/rag/mocks"

	"go.uber.org/mock/gomock"
)

func recordTopics() []rag.Topic {
	return []rag.Topic{
		{Key: "Overview", Context: "Tender Title: Road Works; Deadline: 2026-06-30"},
		{Key: "Cost Information", Context: "Budget Information: 2M EUR"},
		{Key: "Key Objectives", Context: "Resurface 40km of highway"},
	}
}

func TestManager_Topics(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := rag.NewManager(mocks.NewMockPassageSource(ctrl), mocks.NewMockGenerator(ctrl))

	if got := manager.Topics(); len(got) != 0 {
		t.Fatalf("Topics() before a record is loaded = %v, want empty", got)
	}

	manager.SetTopics(recordTopics())
	got := manager.Topics()
	want := []string{"Overview", "Cost Information", "Key Objectives"}
	if len(got) != len(want) {
		t.Fatalf("Topics() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Topics()[%d] = %q, want %q (record order must be preserved)", i, got[i], want[i])
		}
	}
}

func TestManager_StartUnknownTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := rag.NewManager(mocks.NewMockPassageSource(ctrl), mocks.NewMockGenerator(ctrl))
	manager.SetTopics(recordTopics())

	msg, ok := manager.Start("Nonexistent Section")
	if ok {
		t.Fatal("Start() on an unknown topic should fail")
	}
	if !strings.Contains(msg, "Nonexistent Section") {
		t.Errorf("failure message %q should name the topic", msg)
	}

	// Nothing was registered for the topic.
	if _, err := manager.Send(context.Background(), "Nonexistent Section", "hi"); !errors.Is(err, rag.ErrNoSession) {
		t.Fatalf("Send() after failed Start error = %v, want ErrNoSession", err)
	}
}

func TestManager_StartSendEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	retriever := mocks.NewMockPassageSource(ctrl)
	generator := mocks.NewMockGenerator(ctrl)

	retriever.EXPECT().
		Search(gomock.Any(), "what is the budget?", 5).
		Return(samplePassages(2), nil)
	generator.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("2M EUR [1]", nil)

	manager := rag.NewManager(retriever, generator)
	manager.SetTopics(recordTopics())

	msg, ok := manager.Start("Cost Information")
	if !ok {
		t.Fatalf("Start() failed: %s", msg)
	}

	reply, err := manager.Send(context.Background(), "Cost Information", "what is the budget?")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if reply.Answer != "2M EUR [1]" {
		t.Errorf("Answer = %q", reply.Answer)
	}

	history, active := manager.Context("Cost Information")
	if !active {
		t.Fatal("Context() reports no active session")
	}
	if !strings.Contains(history, "Initial Context: Budget Information: 2M EUR") {
		t.Errorf("history %q missing the topic seed", history)
	}

	manager.End("Cost Information")
	if _, err := manager.Send(context.Background(), "Cost Information", "again"); !errors.Is(err, rag.ErrNoSession) {
		t.Fatalf("Send() after End error = %v, want ErrNoSession", err)
	}
	if _, active := manager.Context("Cost Information"); active {
		t.Error("Context() should report no session after End")
	}
}

func TestManager_RestartReplacesHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	retriever := mocks.NewMockPassageSource(ctrl)
	generator := mocks.NewMockGenerator(ctrl)

	retriever.EXPECT().Search(gomock.Any(), gomock.Any(), 5).Return(samplePassages(1), nil)
	generator.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("answer", nil)

	manager := rag.NewManager(retriever, generator)
	manager.SetTopics(recordTopics())

	manager.Start("Overview")
	if _, err := manager.Send(context.Background(), "Overview", "first question"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	manager.Start("Overview")
	history, _ := manager.Context("Overview")
	if strings.Contains(history, "first question") {
		t.Error("restarting a topic must discard the prior history")
	}
}

func TestManager_EndUnknownTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := rag.NewManager(mocks.NewMockPassageSource(ctrl), mocks.NewMockGenerator(ctrl))

	msg := manager.End("Overview")
	if !strings.Contains(msg, "No active conversation") {
		t.Errorf("End() on an unknown topic = %q, want a no-op message", msg)
	}
}

func TestManager_GeneralSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	retriever := mocks.NewMockPassageSource(ctrl)
	generator := mocks.NewMockGenerator(ctrl)

	retriever.EXPECT().Search(gomock.Any(), gomock.Any(), 5).Return(samplePassages(1), nil)
	generator.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("general answer", nil)

	manager := rag.NewManager(retriever, generator)

	// Available without any loaded record.
	reply, err := manager.GeneralSend(context.Background(), "tell me about the tender")
	if err != nil {
		t.Fatalf("GeneralSend() error = %v", err)
	}
	if reply.Answer != "general answer" {
		t.Errorf("Answer = %q", reply.Answer)
	}

	// Ending re-seeds instead of terminating.
	manager.GeneralEnd()
	history := manager.GeneralContext()
	if strings.Contains(history, "tell me about the tender") {
		t.Error("GeneralEnd() must discard the prior history")
	}
	if !strings.Contains(history, "Topic: general") {
		t.Errorf("history %q missing the fresh seed", history)
	}
}
