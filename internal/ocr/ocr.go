// Package ocr acquires plain text from uploaded freight documents. PDFs are
// tried cheapest-first: the pdftotext text layer, then an in-process text-layer
// read, then rasterization plus tesseract for scans. Images go straight to
// tesseract.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/haulboard/haulboard/constants"
)

// minTextChars is the plausibility floor for a PDF text layer. Scanned PDFs
// typically yield a few stray characters of text layer; below this we fall
// through to OCR.
const minTextChars = 100

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 200
	MaxPages      int    // 0 = no limit

	TessdataDir         string
	EnableTSVConfidence bool

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default
}

type ExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.IMAGE
	Method     string // "pdf-text" | "pdf-embedded" | "pdf-ocr" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 200
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy from the declared MIME type and the file extension.
// The declared type wins for PDFs since carriers often upload rate cons with a
// generic octet-stream extension.
func (e *Extractor) Extract(ctx context.Context, path, mimeType string) (ExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting text acquisition", "path", path, "mime_type", mimeType, "ext", ext)

	if constants.LooksPDF(mimeType, path) {
		res, err := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	}
	if constants.MapExtToFormat(ext) == constants.IMAGE {
		res, err := e.extractImage(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	}
	e.logger.Error("unsupported document type", "extension", ext, "mime_type", mimeType)
	return ExtractionResult{}, fmt.Errorf("unsupported document type: ext=%q mime=%q", ext, mimeType)
}
