package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/haulboard/haulboard/constants"
	"github.com/haulboard/haulboard/internal/parse"
	"github.com/haulboard/haulboard/internal/repository"
)

type ParseStage struct {
	Logger      *slog.Logger
	JobsRepo    repository.ExtractJobRepository
	DriversRepo repository.DriverRepository
	LoadsRepo   repository.LoadRepository
	DocsRepo    repository.DocumentRepository
}

func NewParseStage(
	logger *slog.Logger,
	jobs repository.ExtractJobRepository,
	drivers repository.DriverRepository,
	loads repository.LoadRepository,
	docs repository.DocumentRepository,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseStage{
		Logger:      logger,
		JobsRepo:    jobs,
		DriversRepo: drivers,
		LoadsRepo:   loads,
		DocsRepo:    docs,
	}
}

// Run executes the field parse stage for an existing OCR job.
// Preconditions: job is OCR_OK with non-empty ocr_text and a valid document
// link. Effects: writes extracted_json, field_spans and suggested_label on
// the job, upserts the load row, and links document and job to it.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, doc, err := p.JobsRepo.GetWithDocument(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status == nil || *job.Status != string(constants.JobStatusOCROK) || job.OcrText == nil {
		return job.ID, fmt.Errorf("job not ready for parse: status=%v", job.Status)
	}

	driver, err := p.DriversRepo.GetByID(ctx, doc.DriverID)
	if err != nil {
		return job.ID, fmt.Errorf("load driver: %w", err)
	}

	docType := constants.ParseDocumentType(doc.DocType)
	var fields parse.Fields
	var spans parse.Spans
	if docType == constants.DocTypeRate {
		fields, spans = parse.ParseRate(*job.OcrText)
	} else {
		fields, spans = parse.ParseBOL(*job.OcrText)
	}

	if err := parse.Validate(fields); err != nil {
		_ = p.JobsRepo.FinishParseFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("validate fields: %w", err)
	}

	// BOL scans often carry only a ship date; borrow it for the label.
	labelF := fields
	if docType != constants.DocTypeRate && labelF.DeliveryDate == nil && labelF.PickupDate != nil {
		labelF.DeliveryDate = labelF.PickupDate
	}
	label := parse.BuildSuggestedLabel(labelF, driver.Name)

	// A parse with no located fields is still a success, but a human should
	// look before the load row is trusted.
	needsReview := job.NeedsReview || len(spans) == 0

	load, merged, err := p.LoadsRepo.UpsertFromFields(ctx, &repository.UpsertLoadRequest{
		DriverID: doc.DriverID,
		Label:    label,
		Fields:   fields,
	})
	if err != nil {
		_ = p.JobsRepo.FinishParseFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("upsert load: %w", err)
	}
	if err := p.DocsRepo.SetLoadID(ctx, doc.ID, load.ID); err != nil {
		_ = p.JobsRepo.FinishParseFailure(ctx, job.ID, fmt.Sprintf("link document->load: %v", err))
		return job.ID, err
	}
	if err := p.JobsRepo.SetLoadID(ctx, job.ID, load.ID); err != nil {
		_ = p.JobsRepo.FinishParseFailure(ctx, job.ID, fmt.Sprintf("link job->load: %v", err))
		return job.ID, err
	}

	extractedJSON, err := json.Marshal(fields)
	if err != nil {
		return job.ID, fmt.Errorf("marshal fields: %w", err)
	}
	spansJSON, err := json.Marshal(spans)
	if err != nil {
		return job.ID, fmt.Errorf("marshal spans: %w", err)
	}
	if err := p.JobsRepo.FinishParseSuccess(ctx, job.ID, repository.ParseOutcome{
		ExtractedJSON:  extractedJSON,
		FieldSpans:     spansJSON,
		SuggestedLabel: label,
		NeedsReview:    needsReview,
	}); err != nil {
		return job.ID, err
	}

	p.Logger.Info("parsed fields successfully",
		"job_id", job.ID, "load_id", load.ID, "merged", merged,
		"doc_type", string(docType), "label", label,
		"matched_fields", len(spans), "needs_review", needsReview,
	)
	return job.ID, nil
}
