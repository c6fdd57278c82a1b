package extract

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"
)

// PlaintextExtractor passes pre-rendered text documents through unchanged.
type PlaintextExtractor struct{}

func NewPlaintextExtractor() *PlaintextExtractor {
	return &PlaintextExtractor{}
}

func (e *PlaintextExtractor) Extract(_ context.Context, path string) (TextExtractionResult, error) {
	start := time.Now()

	raw, err := os.ReadFile(path)
	if err != nil {
		return TextExtractionResult{}, fmt.Errorf("read document: %w", err)
	}
	if !utf8.Valid(raw) {
		return TextExtractionResult{}, fmt.Errorf("not valid UTF-8 text: %s", path)
	}

	return TextExtractionResult{
		Text:     strings.TrimSpace(string(raw)),
		Pages:    1,
		Method:   "plaintext",
		Duration: time.Since(start),
	}, nil
}
