package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"tenderdesk/internal/contextutil"
	"tenderdesk/internal/extract"
	"tenderdesk/internal/service"
	"tenderdesk/internal/storage"
)

// RecordViewHandler renders a tender's structured record as an HTML page.
type RecordViewHandler struct {
	tenderService service.TenderService
	markdown      goldmark.Markdown
	template      *template.Template
}

// recordPageData holds template data for rendered record pages.
type recordPageData struct {
	Title   string
	Content template.HTML
}

// NewRecordViewHandler creates a new handler for rendered record pages.
func NewRecordViewHandler(tenderService service.TenderService) *RecordViewHandler {
	tmpl := template.Must(template.New("record").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 900px;
      line-height: 1.7;
      background: #f8fafc;
      color: #0f172a;
    }
    h1 {
      border-bottom: 2px solid #cbd5e1;
      padding-bottom: 0.5rem;
    }
    h2 {
      color: #1d4ed8;
      margin-top: 1.5rem;
    }
    pre {
      background: #eef2ff;
      padding: 1rem;
      overflow-x: auto;
      border-radius: 8px;
    }
  </style>
</head>
<body>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &RecordViewHandler{
		tenderService: tenderService,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		template: tmpl,
	}
}

// ServeHTTP renders the tender's record sections as HTML.
func (h *RecordViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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
	if !tender.ExtractOK {
		writeError(w, http.StatusNotFound, "No structured record available for this tender")
		return
	}

	record, err := extract.ParseRecord(tender.RecordYAML)
	if err != nil {
		logger.ErrorContext(ctx, "failed to parse stored record", "tender_id", tender.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to parse record")
		return
	}

	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(recordMarkdown(tender.Name, &record)), &buf); err != nil {
		logger.ErrorContext(ctx, "failed to render record", "tender_id", tender.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render record")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, recordPageData{
		Title:   tender.Name,
		Content: template.HTML(buf.String()),
	}); err != nil {
		logger.ErrorContext(ctx, "failed to execute record template", "tender_id", tender.ID, "error", err)
	}
}

// recordMarkdown formats the record as a markdown document, one heading
// per section in schema order. Multi-line section content keeps its line
// structure via a fenced block.
func recordMarkdown(name string, record *extract.Record) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "# %s\n\n", name)

	for _, topic := range record.Topics() {
		fmt.Fprintf(&builder, "## %s\n\n", topic.Key)
		if strings.Contains(topic.Context, "\n") {
			fmt.Fprintf(&builder, "```\n%s\n```\n\n", topic.Context)
		} else {
			fmt.Fprintf(&builder, "%s\n\n", topic.Context)
		}
	}
	return builder.String()
}
