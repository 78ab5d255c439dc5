package extract

import (
	"context"
	"log/slog"

	"github.com/haulboard/haulboard/internal/ocr"
)

// PathResolver maps a stored relative document path to an absolute one.
// Satisfied by *storage.Store.
type PathResolver interface {
	Abs(rel string) string
}

type OCRAdapter struct {
	e     *ocr.Extractor
	paths PathResolver
}

func NewOCRAdapter(e *ocr.Extractor, paths PathResolver, _ *slog.Logger) *OCRAdapter {
	return &OCRAdapter{e: e, paths: paths}
}

func (a *OCRAdapter) Extract(ctx context.Context, path, mimeType string) (TextExtractionResult, error) {
	if a.paths != nil {
		path = a.paths.Abs(path)
	}
	r, err := a.e.Extract(ctx, path, mimeType)
	return TextExtractionResult{
		Text:       r.Text,
		Pages:      r.Pages,
		SourceType: r.SourceType,
		Method:     r.Method,
		Language:   r.Language,
		Duration:   r.Duration,
		Warnings:   r.Warnings,
		Confidence: r.Confidence,
	}, err
}
