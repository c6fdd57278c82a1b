package extract

import (
	"context"
	"time"
)

// TextExtractor turns a document file into raw text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Pages    int
	Method   string // "pdf-text" | "plaintext"
	Duration time.Duration
	Warnings []string
}
