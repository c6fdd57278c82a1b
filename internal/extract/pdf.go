package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor reads the embedded text layer of a PDF. A page that fails to
// extract contributes empty text; only a document that cannot be opened at
// all is an error.
type PDFExtractor struct {
	log *slog.Logger
}

func NewPDFExtractor(log *slog.Logger) *PDFExtractor {
	if log == nil {
		log = slog.Default()
	}
	return &PDFExtractor{log: log}
}

func (e *PDFExtractor) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.log.Warn("close pdf", "path", path, "error", cerr)
		}
	}()

	var b strings.Builder
	var warnings []string
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return TextExtractionResult{}, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			warnings = append(warnings, fmt.Sprintf("page %d: missing", i))
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: %v", i, err))
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	res := TextExtractionResult{
		Text:     b.String(),
		Pages:    pages,
		Method:   "pdf-text",
		Duration: time.Since(start),
		Warnings: warnings,
	}
	if len(warnings) > 0 {
		e.log.Warn("pdf extraction incomplete", "path", path, "pages", pages, "skipped", len(warnings))
	}
	return res, nil
}
