// runextract runs the extraction pipeline against a single file and prints
// the parsed fields as JSON. Useful for tuning the parsers against a new
// broker's paperwork without a database or server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/haulboard/haulboard/constants"
	"github.com/haulboard/haulboard/internal/common"
	"github.com/haulboard/haulboard/internal/extract"
	"github.com/haulboard/haulboard/internal/ocr"
	"github.com/haulboard/haulboard/internal/pipeline/docextract"
)

func main() {
	docType := flag.String("type", "rate", "document type: rate | bol | pod | other")
	userName := flag.String("user", "", "name shown in the suggested label")
	withText := flag.Bool("text", false, "include the acquired text in the output")
	timeout := flag.Duration("timeout", 2*time.Minute, "per-file processing timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		logger.Error("usage: runextract [flags] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg := common.LoadConfig()
	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:   cfg.OCR.Pdftotext,
		Pdftoppm:    cfg.OCR.Pdftoppm,
		Tesseract:   cfg.OCR.Tesseract,
		TessdataDir: cfg.OCR.TessdataDir,
		DPI:         cfg.OCR.DPI,
		MaxPages:    cfg.OCR.MaxPages,
	}, logger)
	pipe := docextract.New(extract.NewOCRAdapter(extractor, nil, logger), logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := pipe.Run(ctx, docextract.Request{
		Path:     path,
		MimeType: mime.TypeByExtension(filepath.Ext(path)),
		DocType:  constants.ParseDocumentType(*docType),
		UserName: *userName,
	})
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err)
		os.Exit(1)
	}

	out := map[string]any{
		"fields":          res.Fields,
		"field_spans":     res.Spans,
		"suggested_label": res.SuggestedLabel,
		"method":          res.Method,
		"pages":           res.Pages,
		"confidence":      res.Confidence,
		"warnings":        res.Warnings,
	}
	if *withText {
		out["text"] = res.Text
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
}
