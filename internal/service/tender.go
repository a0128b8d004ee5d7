package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_tender_service.go -package=mocks -mock_names=TenderService=MockTenderService tenderdesk/internal/service TenderService
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_manager.go -package=mocks -mock_names=ChatManager=MockChatManager tenderdesk/internal/service ChatManager

import (
	"context"
	"time"

	"tenderdesk/internal/assess"
	"tenderdesk/internal/contextutil"
	"tenderdesk/internal/extract"
	"tenderdesk/internal/rag"
	"tenderdesk/internal/storage"

	"github.com/google/uuid"
)

// DocumentIndexer builds the vector index for one tender document.
// This interface is defined from the service layer's perspective (consumer-first).
type DocumentIndexer interface {
	// IndexTender extracts, normalizes, chunks and indexes a PDF.
	// Returns the number of chunks indexed.
	IndexTender(ctx context.Context, tenderID, pdfPath string) (int, error)
}

// RecordExtractor produces the structured record for the indexed tender.
type RecordExtractor interface {
	Extract(ctx context.Context) (extract.Record, string, bool, error)
}

// ComplexityAssessor produces the five-factor assessment for a tender.
type ComplexityAssessor interface {
	Run(ctx context.Context, tenderID string) (assess.Assessment, error)
}

// TopicRegistry receives the conversation topics derived from a record.
type TopicRegistry interface {
	SetTopics(topics []rag.Topic)
}

// ChatManager is the conversation surface the HTTP layer talks to.
// *rag.Manager implements it.
type ChatManager interface {
	Start(topicKey string) (string, bool)
	Send(ctx context.Context, topicKey, message string) (rag.Reply, error)
	End(topicKey string) string
	Topics() []string
	Context(topicKey string) (string, bool)
	GeneralSend(ctx context.Context, message string) (rag.Reply, error)
	GeneralEnd() string
	GeneralContext() string
}

// TenderService provides the tender upload pipeline and read access to
// persisted tenders.
type TenderService interface {
	// ProcessUpload indexes an uploaded PDF, extracts its structured
	// record and kicks off the complexity assessment in the background.
	ProcessUpload(ctx context.Context, name, pdfPath string) (*storage.Tender, error)
	// GetTender returns one tender with its persisted record and
	// assessment.
	GetTender(ctx context.Context, id string) (*storage.Tender, error)
	// ListTenders returns all tenders, newest first.
	ListTenders(ctx context.Context) ([]storage.Tender, error)
}

// tenderService implements TenderService.
type tenderService struct {
	tenderRepo storage.TenderStore
	indexer    DocumentIndexer
	extractor  RecordExtractor
	assessor   ComplexityAssessor
	topics     TopicRegistry
}

// NewTenderService creates a new TenderService.
func NewTenderService(
	tenderRepo storage.TenderStore,
	indexer DocumentIndexer,
	extractor RecordExtractor,
	assessor ComplexityAssessor,
	topics TopicRegistry,
) TenderService {
	return &tenderService{
		tenderRepo: tenderRepo,
		indexer:    indexer,
		extractor:  extractor,
		assessor:   assessor,
		topics:     topics,
	}
}

// ProcessUpload runs the ingestion pipeline for one uploaded PDF.
//
// Indexing failures abort the upload. Extraction failures do not: the
// tender stays queryable through the general chat even without a
// structured record, so extraction problems are recorded and swallowed.
// The assessment runs in the background because it waits for the index
// and calls the model twice over; the result lands on the tender row
// whenever it finishes.
func (s *tenderService) ProcessUpload(ctx context.Context, name, pdfPath string) (*storage.Tender, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if name == "" {
		logger.WarnContext(ctx, "upload with empty tender name")
		return nil, &ValidationError{Field: "name", Message: "cannot be empty"}
	}

	tender := &storage.Tender{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.tenderRepo.Insert(ctx, tender); err != nil {
		return nil, WrapError(err, "failed to create tender")
	}

	chunks, err := s.indexer.IndexTender(ctx, tender.ID, pdfPath)
	if err != nil {
		logger.ErrorContext(ctx, "failed to index tender", "tender_id", tender.ID, "error", err)
		return nil, WrapError(err, "failed to index tender")
	}
	logger.InfoContext(ctx, "tender indexed", "tender_id", tender.ID, "chunks", chunks)

	record, raw, ok, err := s.extractor.Extract(ctx)
	switch {
	case err != nil:
		logger.ErrorContext(ctx, "record extraction failed", "tender_id", tender.ID, "error", err)
	case ok:
		canonical, mErr := extract.MarshalRecord(record)
		if mErr != nil {
			logger.ErrorContext(ctx, "failed to render record", "tender_id", tender.ID, "error", mErr)
			break
		}
		if uErr := s.tenderRepo.UpdateRecord(ctx, tender.ID, canonical, true); uErr != nil {
			return nil, WrapError(uErr, "failed to persist record")
		}
		tender.RecordYAML = canonical
		tender.ExtractOK = true
		s.topics.SetTopics(record.Topics())
	default:
		// Preserve the malformed output on the row for inspection.
		if uErr := s.tenderRepo.UpdateRecord(ctx, tender.ID, raw, false); uErr != nil {
			return nil, WrapError(uErr, "failed to persist record")
		}
		tender.RecordYAML = raw
	}

	assessCtx := contextutil.WithLogger(context.WithoutCancel(ctx), logger)
	go func() {
		if _, err := s.assessor.Run(assessCtx, tender.ID); err != nil {
			logger.ErrorContext(assessCtx, "background assessment failed", "tender_id", tender.ID, "error", err)
		}
	}()

	return tender, nil
}

// GetTender returns one tender by ID.
func (s *tenderService) GetTender(ctx context.Context, id string) (*storage.Tender, error) {
	tender, err := s.tenderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, WrapError(err, "failed to get tender")
	}
	return tender, nil
}

// ListTenders returns all tenders, newest first.
func (s *tenderService) ListTenders(ctx context.Context) ([]storage.Tender, error) {
	tenders, err := s.tenderRepo.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list tenders")
	}
	return tenders, nil
}
