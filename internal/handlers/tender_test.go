package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"tenderdesk/internal/handlers"
	"tenderdesk/internal/service/mocks"
	"tenderdesk/internal/storage"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func multipartBody(t *testing.T, name, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if name != "" {
		if err := writer.WriteField("name", name); err != nil {
			t.Fatal(err)
		}
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, writer.FormDataContentType()
}

func TestTenderHandler_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenderService := mocks.NewMockTenderService(ctrl)
	handler := handlers.NewTenderHandler(tenderService, t.TempDir())

	created := &storage.Tender{
		ID:        "tender-1",
		Name:      "CPQ Ausschreibung",
		ExtractOK: true,
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	tenderService.EXPECT().
		ProcessUpload(gomock.Any(), "CPQ Ausschreibung", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, pdfPath string) (*storage.Tender, error) {
			if !strings.HasSuffix(pdfPath, "_doc.pdf") {
				t.Errorf("pdfPath = %q, want sanitized filename with unique prefix", pdfPath)
			}
			return created, nil
		})

	body, contentType := multipartBody(t, "CPQ Ausschreibung", "doc.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/tenders", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Upload(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var resp handlers.TenderSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp.ID != "tender-1" || !resp.ExtractOK {
		t.Errorf("response = %+v", resp)
	}
}

func TestTenderHandler_Upload_Validation(t *testing.T) {
	tests := []struct {
		name       string
		formName   string
		filename   string
		wantStatus int
	}{
		{name: "missing name", formName: "", filename: "doc.pdf", wantStatus: http.StatusBadRequest},
		{name: "missing file", formName: "tender", filename: "", wantStatus: http.StatusBadRequest},
		{name: "not a pdf", formName: "tender", filename: "doc.docx", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tenderService := mocks.NewMockTenderService(ctrl)
			handler := handlers.NewTenderHandler(tenderService, t.TempDir())

			body, contentType := multipartBody(t, tt.formName, tt.filename, []byte("content"))
			req := httptest.NewRequest(http.MethodPost, "/api/tenders", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()

			handler.Upload(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestTenderHandler_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenderService := mocks.NewMockTenderService(ctrl)
	handler := handlers.NewTenderHandler(tenderService, t.TempDir())

	tenderService.EXPECT().
		GetTender(gomock.Any(), "missing").
		Return(nil, storage.ErrNotFound)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/tenders/missing", nil), "id", "missing")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestTenderHandler_Assessment(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenderService := mocks.NewMockTenderService(ctrl)
	handler := handlers.NewTenderHandler(tenderService, t.TempDir())

	tenderService.EXPECT().
		GetTender(gomock.Any(), "tender-1").
		Return(&storage.Tender{
			ID:   "tender-1",
			Name: "tender",
			AssessmentYAML: "Complexity:\n    Rating: '[High]'\n    Verification Sentence: Spans several subsystems.\n" +
				"Days Left to Submit the Proposal: \"14\"\n",
		}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/tenders/tender-1/assessment", nil), "id", "tender-1")
	rec := httptest.NewRecorder()

	handler.Assessment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp handlers.AssessmentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if resp.Complexity.Rating != "[High]" {
		t.Errorf("complexity rating = %q", resp.Complexity.Rating)
	}
	if resp.DaysLeft != "14" {
		t.Errorf("days left = %q", resp.DaysLeft)
	}
}

func TestTenderHandler_Assessment_NotReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenderService := mocks.NewMockTenderService(ctrl)
	handler := handlers.NewTenderHandler(tenderService, t.TempDir())

	tenderService.EXPECT().
		GetTender(gomock.Any(), "tender-1").
		Return(&storage.Tender{ID: "tender-1", Name: "tender"}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/tenders/tender-1/assessment", nil), "id", "tender-1")
	rec := httptest.NewRecorder()

	handler.Assessment(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestTenderHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	tenderService := mocks.NewMockTenderService(ctrl)
	handler := handlers.NewTenderHandler(tenderService, t.TempDir())

	tenderService.EXPECT().
		ListTenders(gomock.Any()).
		Return([]storage.Tender{
			{ID: "b", Name: "newer"},
			{ID: "a", Name: "older"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tenders", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp []handlers.TenderSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(resp) != 2 || resp[0].ID != "b" {
		t.Errorf("response = %+v", resp)
	}
}
