package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"tenderdesk/internal/assess"
	"tenderdesk/internal/contextutil"
	"tenderdesk/internal/service"
	"tenderdesk/internal/storage"
)

// maxUploadBytes bounds the multipart form held in memory.
const maxUploadBytes = 32 << 20

// TenderHandler handles tender upload and read endpoints.
type TenderHandler struct {
	tenderService service.TenderService
	uploadDir     string
}

// NewTenderHandler creates a new TenderHandler.
func NewTenderHandler(tenderService service.TenderService, uploadDir string) *TenderHandler {
	return &TenderHandler{
		tenderService: tenderService,
		uploadDir:     uploadDir,
	}
}

// TenderSummary is the list/upload response shape for one tender.
//
// swagger:model TenderSummary
type TenderSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ExtractOK bool   `json:"extract_ok"`
	CreatedAt string `json:"created_at"`
}

// TenderDetail is the single-tender response shape including the
// persisted record and assessment YAML.
//
// swagger:model TenderDetail
type TenderDetail struct {
	TenderSummary
	RecordYAML     string `json:"record_yaml,omitempty"`
	AssessmentYAML string `json:"assessment_yaml,omitempty"`
}

// ErrorResponse represents an error response.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

func summarize(tender *storage.Tender) TenderSummary {
	return TenderSummary{
		ID:        tender.ID,
		Name:      tender.Name,
		ExtractOK: tender.ExtractOK,
		CreatedAt: tender.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Upload handles multipart tender uploads: the PDF is saved to the
// upload directory and run through the ingestion pipeline.
//
// swagger:route POST /api/tenders uploadTender
func (h *TenderHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.WarnContext(ctx, "invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "Tender name is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.WarnContext(ctx, "missing upload file", "error", err)
		writeError(w, http.StatusBadRequest, "PDF file is required")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	filename := filepath.Base(header.Filename)
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		writeError(w, http.StatusBadRequest, "Only PDF files are accepted")
		return
	}

	// Prefix with a UUID so repeated uploads never clobber each other.
	savedPath := filepath.Join(h.uploadDir, fmt.Sprintf("%s_%s", uuid.NewString(), filename))
	if err := saveUpload(file, savedPath); err != nil {
		logger.ErrorContext(ctx, "failed to save upload", "path", savedPath, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save upload")
		return
	}

	tender, err := h.tenderService.ProcessUpload(ctx, name, savedPath)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			writeError(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		logger.ErrorContext(ctx, "failed to process upload", "error", err)
		writeError(w, http.StatusBadGateway, "Failed to process tender")
		return
	}

	writeJSON(w, http.StatusCreated, summarize(tender))
}

// List returns all tenders, newest first.
func (h *TenderHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	tenders, err := h.tenderService.ListTenders(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list tenders", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list tenders")
		return
	}

	summaries := make([]TenderSummary, 0, len(tenders))
	for i := range tenders {
		summaries = append(summaries, summarize(&tenders[i]))
	}
	writeJSON(w, http.StatusOK, summaries)
}

// Get returns one tender with its record and assessment.
func (h *TenderHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	tender, err := h.tenderService.GetTender(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Tender not found")
			return
		}
		logger.ErrorContext(ctx, "failed to get tender", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to get tender")
		return
	}

	writeJSON(w, http.StatusOK, TenderDetail{
		TenderSummary:  summarize(tender),
		RecordYAML:     tender.RecordYAML,
		AssessmentYAML: tender.AssessmentYAML,
	})
}

// AssessmentResponse is the parsed five-factor assessment.
//
// swagger:model AssessmentResponse
type AssessmentResponse struct {
	Complexity              FactorResponse `json:"complexity"`
	Scalability             FactorResponse `json:"scalability"`
	IntegrationRequirements FactorResponse `json:"integration_requirements"`
	TimeFeasibility         FactorResponse `json:"time_feasibility"`
	DaysLeft                string         `json:"days_left"`
}

// FactorResponse is one assessed factor.
//
// swagger:model FactorResponse
type FactorResponse struct {
	Rating               string `json:"rating"`
	VerificationSentence string `json:"verification_sentence"`
}

// Assessment returns the parsed five-factor assessment for a tender.
// The assessment runs in the background after upload, so it may not be
// available yet.
func (h *TenderHandler) Assessment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	tender, err := h.tenderService.GetTender(ctx, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Tender not found")
			return
		}
		logger.ErrorContext(ctx, "failed to get tender", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to get tender")
		return
	}

	if tender.AssessmentYAML == "" {
		writeError(w, http.StatusNotFound, "Assessment not available yet")
		return
	}

	var assessment assess.Assessment
	if err := yaml.Unmarshal([]byte(tender.AssessmentYAML), &assessment); err != nil {
		logger.ErrorContext(ctx, "failed to parse stored assessment", "tender_id", tender.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to parse assessment")
		return
	}

	writeJSON(w, http.StatusOK, AssessmentResponse{
		Complexity:              factorResponse(assessment.Complexity),
		Scalability:             factorResponse(assessment.Scalability),
		IntegrationRequirements: factorResponse(assessment.IntegrationRequirements),
		TimeFeasibility:         factorResponse(assessment.TimeFeasibility),
		DaysLeft:                assessment.DaysLeft,
	})
}

func factorResponse(factor assess.Factor) FactorResponse {
	return FactorResponse{
		Rating:               factor.Rating,
		VerificationSentence: factor.VerificationSentence,
	}
}

func saveUpload(src io.Reader, path string) error {
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create upload file: %w", err)
	}
	defer func() {
		_ = dst.Close()
	}()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write upload file: %w", err)
	}
	return nil
}

// writeJSON writes a JSON response body with the given status.
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}
