package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/haulboard/haulboard/constants"
	"github.com/ledongthuc/pdf"
)

// extractPDF tries the cheap text layer first and escalates to rasterized OCR
// only when the layer is missing or implausibly short.
func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	res := ExtractionResult{SourceType: constants.PDF, Language: e.cfg.TesseractLang}

	text, pages, warns, err := e.pdfToText(ctx, path)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		e.logger.Warn("pdftotext failed, trying embedded text layer", "path", path, "error", err)
		text, pages, err = pdfEmbeddedText(path)
		if err != nil {
			res.Warnings = append(res.Warnings, err.Error())
			text = ""
		} else if plausibleText(text) {
			res.Text = Normalize(text)
			res.Pages = pages
			res.Method = "pdf-embedded"
			res.Confidence = heuristicConfidence(res.Text)
			return res, nil
		}
	} else if plausibleText(text) {
		res.Text = Normalize(text)
		res.Pages = pages
		res.Method = "pdf-text"
		res.Confidence = heuristicConfidence(res.Text)
		return res, nil
	}

	if len(strings.TrimSpace(text)) > 0 {
		e.logger.Info("pdf text layer too short, falling back to ocr",
			"path", path, "chars", len(strings.TrimSpace(text)))
	}

	text, pages, warns, err = e.pdfToOCR(ctx, path)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		return res, &AcquisitionError{Tool: e.cfg.Pdftoppm, Err: err}
	}
	res.Text = Normalize(text)
	res.Pages = pages
	res.Method = "pdf-ocr"
	res.Confidence = heuristicConfidence(res.Text)
	return res, nil
}

// plausibleText reports whether a text layer is worth keeping. Scanner
// software sometimes embeds a handful of stray characters.
func plausibleText(text string) bool {
	return len(strings.TrimSpace(text)) >= minTextChars
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}
	text = string(out)
	// A form-feed \f is used as page separator by default
	pages = 1 + strings.Count(text, "\f")
	return text, pages, nil, nil
}

// pdfEmbeddedText reads the text layer in-process, for hosts without poppler
// installed or when pdftotext chokes on a particular file.
func pdfEmbeddedText(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		txt, err := page.GetPlainText(nil)
		if err != nil || txt == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(txt)
	}
	return b.String(), total, nil
}

func (e *Extractor) pdfToOCR(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	tmpDir, err := os.MkdirTemp("", "hb-pp-*")
	if err != nil {
		return "", 0, nil, err
	}
	defer func(path string) {
		if err := os.RemoveAll(path); err != nil {
			e.logger.Warn("failed to remove temp dir", "path", path, "error", err)
		}
	}(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 200 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}

	// Per-page fault tolerance: one bad page costs a warning, not the document.
	var b strings.Builder
	var warns []string
	for _, img := range matches {
		txt, w, err := e.tesseractOCR(ctx, img)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(txt)
		warns = append(warns, w...)
	}
	pages = len(matches)
	return b.String(), pages, warns, nil
}
