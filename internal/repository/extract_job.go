package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/haulboard/haulboard/constants"
	"github.com/haulboard/haulboard/gen/ent"
)

// OCROutcome carries the stage-1 result persisted on the job row.
type OCROutcome struct {
	OCRText      string
	Method       string
	Pages        int
	Confidence   float32
	NeedsReview  bool
	ErrorMessage string
}

// ParseOutcome carries the stage-2 result persisted on the job row.
type ParseOutcome struct {
	ExtractedJSON  json.RawMessage
	FieldSpans     json.RawMessage
	SuggestedLabel string
	NeedsReview    bool
}

type ExtractJobRepository interface {
	GetWithDocument(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.Document, error)
	Start(ctx context.Context, documentID, driverID uuid.UUID, format, status string) (*ent.ExtractJob, error)
	FinishOCR(ctx context.Context, jobID uuid.UUID, out OCROutcome) error
	FinishParseSuccess(ctx context.Context, jobID uuid.UUID, out ParseOutcome) error
	FinishParseFailure(ctx context.Context, jobID uuid.UUID, message string) error
	SetLoadID(ctx context.Context, jobID, loadID uuid.UUID) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) GetWithDocument(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.Document, error) {
	job, err := r.ent.ExtractJob.Get(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	doc, err := r.ent.Document.Get(ctx, job.DocumentID)
	if err != nil {
		return nil, nil, err
	}
	return job, doc, nil
}

func (r *extractJobRepo) Start(ctx context.Context, documentID, driverID uuid.UUID, format, status string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetDocumentID(documentID).
		SetDriverID(driverID).
		SetFormat(format).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "document_id", documentID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "document_id", documentID, "format", format)
	return job, nil
}

func (r *extractJobRepo) FinishOCR(ctx context.Context, jobID uuid.UUID, out OCROutcome) error {
	if out.ErrorMessage != "" {
		return r.FinishParseFailure(ctx, jobID, out.ErrorMessage)
	}
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetOcrText(out.OCRText).
		SetOcrMethod(out.Method).
		SetPages(out.Pages).
		SetExtractionConfidence(out.Confidence).
		SetNeedsReview(out.NeedsReview).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished stage 1", "job_id", jobID, "method", out.Method, "pages", out.Pages)
	return nil
}

func (r *extractJobRepo) FinishParseSuccess(ctx context.Context, jobID uuid.UUID, out ParseOutcome) error {
	upd := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetExtractedJSON(out.ExtractedJSON).
		SetSuggestedLabel(out.SuggestedLabel).
		SetNeedsReview(out.NeedsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParsed))
	if out.FieldSpans != nil {
		upd = upd.SetFieldSpans(out.FieldSpans)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("extract_job finish(PARSE_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished stage 2", "job_id", jobID, "label", out.SuggestedLabel)
	return nil
}

func (r *extractJobRepo) FinishParseFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *extractJobRepo) SetLoadID(ctx context.Context, jobID, loadID uuid.UUID) error {
	return r.ent.ExtractJob.UpdateOneID(jobID).SetLoadID(loadID).Exec(ctx)
}
