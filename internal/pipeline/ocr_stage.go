package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/haulboard/haulboard/constants"
	"github.com/haulboard/haulboard/internal/extract"
	"github.com/haulboard/haulboard/internal/ocr"
	"github.com/haulboard/haulboard/internal/repository"
)

type OCRStage struct {
	DocsRepo      repository.DocumentRepository
	JobsRepo      repository.ExtractJobRepository
	TextExtractor extract.TextExtractor
	Logger        *slog.Logger
}

func NewOCRStage(docs repository.DocumentRepository, jobs repository.ExtractJobRepository, tx extract.TextExtractor, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{DocsRepo: docs, JobsRepo: jobs, TextExtractor: tx, Logger: logger}
}

// Run starts an extract_job for the document, acquires text, and persists it.
// Field parsing is NOT called here. Returns the job ID and the acquisition
// summary.
func (p *OCRStage) Run(ctx context.Context, documentID uuid.UUID) (uuid.UUID, extract.TextExtractionResult, error) {
	doc, err := p.DocsRepo.GetByID(ctx, documentID)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("get document: %w", err)
	}

	format := constants.MapExtToFormat(doc.FileExt)
	if format == "" {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("unsupported format: %s", doc.FileExt)
	}

	job, err := p.JobsRepo.Start(ctx, doc.ID, doc.DriverID, format, string(constants.JobStatusRunning))
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, err
	}

	mimeType := ""
	if doc.MimeType != nil {
		mimeType = *doc.MimeType
	}
	res, err := p.TextExtractor.Extract(ctx, doc.SourcePath, mimeType)
	if err != nil {
		_ = p.JobsRepo.FinishOCR(ctx, job.ID, repository.OCROutcome{
			ErrorMessage: err.Error(),
		})
		return job.ID, res, err
	}

	// Flag low-confidence photo OCR for review before anyone trusts the
	// parsed numbers.
	needsReview := false
	if format == constants.IMAGE && res.Confidence > 0 && res.Confidence < ocr.ImageConfidenceThreshold {
		p.Logger.Warn("image ocr confidence low; needs review",
			"document_id", documentID, "job_id", job.ID, "conf", res.Confidence)
		needsReview = true
	}

	out := repository.OCROutcome{
		OCRText:     res.Text,
		Method:      res.Method,
		Pages:       res.Pages,
		Confidence:  res.Confidence,
		NeedsReview: needsReview,
	}
	if err := p.JobsRepo.FinishOCR(ctx, job.ID, out); err != nil {
		return job.ID, res, err
	}

	return job.ID, res, nil
}
