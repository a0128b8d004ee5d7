// Package pdfio extracts per-page plain text from PDF files.
package pdfio

import (
	"context"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"tenderdesk/internal/contextutil"
)

// ExtractPages reads the PDF at path and returns the plain text of each
// page, in document order. Pages whose text cannot be extracted are
// returned as empty strings so page numbering stays aligned with the
// source document.
func ExtractPages(ctx context.Context, path string) ([]string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat PDF: %w", err)
	}

	reader, err := pdf.NewReader(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}

	pageCount := reader.NumPage()
	pages := make([]string, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			logger.WarnContext(ctx, "failed to extract text from page", "page", i, "error", err)
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	logger.DebugContext(ctx, "extracted PDF pages", "path", path, "pages", pageCount)
	return pages, nil
}
