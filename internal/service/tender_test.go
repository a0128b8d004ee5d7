package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"tenderdesk/internal/assess"
	"tenderdesk/internal/extract"
	"tenderdesk/internal/rag"
	"tenderdesk/internal/service"
	"tenderdesk/internal/storage"
	storagemocks "tenderdesk/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type stubIndexer struct {
	chunks int
	err    error
	gotID  string
	gotPDF string
}

func (s *stubIndexer) IndexTender(_ context.Context, tenderID, pdfPath string) (int, error) {
	s.gotID = tenderID
	s.gotPDF = pdfPath
	return s.chunks, s.err
}

type stubExtractor struct {
	record extract.Record
	raw    string
	ok     bool
	err    error
}

func (s *stubExtractor) Extract(_ context.Context) (extract.Record, string, bool, error) {
	return s.record, s.raw, s.ok, s.err
}

type stubAssessor struct {
	done chan string
	err  error
}

func (s *stubAssessor) Run(_ context.Context, tenderID string) (assess.Assessment, error) {
	if s.done != nil {
		s.done <- tenderID
	}
	return assess.Assessment{}, s.err
}

type stubTopics struct {
	set []rag.Topic
}

func (s *stubTopics) SetTopics(topics []rag.Topic) {
	s.set = topics
}

func waitForAssessment(t *testing.T, done <-chan string) string {
	t.Helper()
	select {
	case id := <-done:
		return id
	case <-time.After(2 * time.Second):
		t.Fatal("background assessment never ran")
		return ""
	}
}

func TestTenderService_ProcessUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenderRepo := storagemocks.NewMockTenderStore(ctrl)

	var record extract.Record
	record.Normalize()

	indexer := &stubIndexer{chunks: 12}
	extractor := &stubExtractor{record: record, raw: "raw text", ok: true}
	assessor := &stubAssessor{done: make(chan string, 1)}
	topics := &stubTopics{}

	var insertedID string
	tenderRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tender *storage.Tender) error {
			insertedID = tender.ID
			return nil
		})
	tenderRepo.EXPECT().
		UpdateRecord(gomock.Any(), gomock.Any(), gomock.Any(), true).
		DoAndReturn(func(_ context.Context, id, recordYAML string, _ bool) error {
			if id != insertedID {
				t.Errorf("UpdateRecord id = %q, want %q", id, insertedID)
			}
			if !strings.Contains(recordYAML, "Overview: Not Provided") {
				t.Errorf("record yaml = %q, want canonical form", recordYAML)
			}
			return nil
		})

	svc := service.NewTenderService(tenderRepo, indexer, extractor, assessor, topics)
	tender, err := svc.ProcessUpload(context.Background(), "CPQ Ausschreibung", "/tmp/upload.pdf")
	if err != nil {
		t.Fatalf("ProcessUpload() error = %v", err)
	}

	if tender.ID == "" || tender.Name != "CPQ Ausschreibung" {
		t.Errorf("tender = %+v", tender)
	}
	if !tender.ExtractOK {
		t.Error("ExtractOK should be set after successful extraction")
	}
	if indexer.gotID != tender.ID || indexer.gotPDF != "/tmp/upload.pdf" {
		t.Errorf("indexer called with id=%q pdf=%q", indexer.gotID, indexer.gotPDF)
	}
	if len(topics.set) != len(extract.SectionNames()) {
		t.Errorf("got %d topics, want %d", len(topics.set), len(extract.SectionNames()))
	}

	if id := waitForAssessment(t, assessor.done); id != tender.ID {
		t.Errorf("assessment ran for %q, want %q", id, tender.ID)
	}
}

func TestTenderService_ProcessUpload_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenderRepo := storagemocks.NewMockTenderStore(ctrl)

	svc := service.NewTenderService(tenderRepo, &stubIndexer{}, &stubExtractor{}, &stubAssessor{}, &stubTopics{})
	_, err := svc.ProcessUpload(context.Background(), "", "/tmp/upload.pdf")

	var validationErr *service.ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "name" {
		t.Fatalf("ProcessUpload() error = %v, want validation error on name", err)
	}
}

func TestTenderService_ProcessUpload_IndexFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenderRepo := storagemocks.NewMockTenderStore(ctrl)
	tenderRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	indexer := &stubIndexer{err: errors.New("qdrant unreachable")}
	svc := service.NewTenderService(tenderRepo, indexer, &stubExtractor{}, &stubAssessor{}, &stubTopics{})

	if _, err := svc.ProcessUpload(context.Background(), "tender", "/tmp/upload.pdf"); err == nil {
		t.Fatal("ProcessUpload() should fail when indexing fails")
	}
}

func TestTenderService_ProcessUpload_MalformedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenderRepo := storagemocks.NewMockTenderStore(ctrl)

	assessor := &stubAssessor{done: make(chan string, 1)}
	topics := &stubTopics{}
	extractor := &stubExtractor{raw: "Overview: [unclosed", ok: false}

	tenderRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	tenderRepo.EXPECT().
		UpdateRecord(gomock.Any(), gomock.Any(), "Overview: [unclosed", false).
		Return(nil)

	svc := service.NewTenderService(tenderRepo, &stubIndexer{chunks: 3}, extractor, assessor, topics)
	tender, err := svc.ProcessUpload(context.Background(), "tender", "/tmp/upload.pdf")
	if err != nil {
		t.Fatalf("ProcessUpload() error = %v, malformed record should not fail the upload", err)
	}
	if tender.ExtractOK {
		t.Error("ExtractOK should stay false for a malformed record")
	}
	if topics.set != nil {
		t.Error("topics must not be replaced by a malformed record")
	}

	waitForAssessment(t, assessor.done)
}

func TestTenderService_GetTender(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenderRepo := storagemocks.NewMockTenderStore(ctrl)
	tenderRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

	svc := service.NewTenderService(tenderRepo, &stubIndexer{}, &stubExtractor{}, &stubAssessor{}, &stubTopics{})
	if _, err := svc.GetTender(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetTender() error = %v, want wrapped ErrNotFound", err)
	}
}
