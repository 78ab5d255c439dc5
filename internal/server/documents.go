package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/haulboard/haulboard/constants"
	"github.com/haulboard/haulboard/gen/ent"
	haulboardpb "github.com/haulboard/haulboard/gen/proto/haulboard/v1"
	"github.com/haulboard/haulboard/internal/async"
	"github.com/haulboard/haulboard/internal/parse"
	processor "github.com/haulboard/haulboard/internal/pipeline"
	"github.com/haulboard/haulboard/internal/report"
	"github.com/haulboard/haulboard/internal/repository"
	"github.com/haulboard/haulboard/internal/storage"
	"github.com/haulboard/haulboard/internal/utils"
)

// maxUploadBytes bounds inline document uploads.
const maxUploadBytes = 25 << 20

type DocumentService struct {
	haulboardpb.UnimplementedDocumentsServiceServer
	docRepo     repository.DocumentRepository
	jobRepo     repository.ExtractJobRepository
	loadRepo    repository.LoadRepository
	expenseRepo repository.ExpenseRepository
	store       *storage.Store
	proc        *processor.Processor
	queue       *async.ProcessorQueue
	logger      *slog.Logger
}

func NewDocumentService(
	docRepo repository.DocumentRepository,
	jobRepo repository.ExtractJobRepository,
	loadRepo repository.LoadRepository,
	expenseRepo repository.ExpenseRepository,
	store *storage.Store,
	proc *processor.Processor,
	queue *async.ProcessorQueue,
	logger *slog.Logger,
) *DocumentService {
	return &DocumentService{
		docRepo:     docRepo,
		jobRepo:     jobRepo,
		loadRepo:    loadRepo,
		expenseRepo: expenseRepo,
		store:       store,
		proc:        proc,
		queue:       queue,
		logger:      logger,
	}
}

func (s *DocumentService) UploadDocument(ctx context.Context, req *haulboardpb.UploadDocumentRequest) (*haulboardpb.UploadDocumentResponse, error) {
	driverID, err := parseUUID(req.GetDriverId(), "driver_id")
	if err != nil {
		return nil, err
	}
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	content := req.GetContent()
	if len(content) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}
	if len(content) > maxUploadBytes {
		return nil, status.Errorf(codes.InvalidArgument, "content exceeds %d bytes", maxUploadBytes)
	}

	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unsupported file extension %q", ext)
	}
	docType := string(constants.ParseDocumentType(req.GetDocType()))

	// Hash first so a re-upload of the same bytes never writes a second copy.
	hash := storage.HashBytes(content)
	if existing, err := s.docRepo.GetByDriverAndHash(ctx, driverID, hash); err == nil {
		s.logger.Info("duplicate upload deduplicated", "document_id", existing.ID, "driver_id", driverID)
		return &haulboardpb.UploadDocumentResponse{Document: utils.ToPBDocument(existing), Deduplicated: true}, nil
	} else if !ent.IsNotFound(err) {
		return nil, status.Errorf(codes.Internal, "lookup document: %v", err)
	}

	rel, err := s.store.Save(driverID, filename, content)
	if err != nil {
		s.logger.Error("failed to store upload", "driver_id", driverID, "filename", filename, "error", err)
		return nil, status.Errorf(codes.Internal, "store upload: %v", err)
	}

	var mimeType *string
	if mt := strings.TrimSpace(req.GetMimeType()); mt != "" {
		mimeType = &mt
	}
	doc, dedup, err := s.docRepo.UpsertByHash(ctx, &repository.CreateDocumentRequest{
		DriverID:    driverID,
		DocType:     docType,
		SourcePath:  rel,
		ContentHash: hash,
		Filename:    filename,
		FileExt:     ext,
		MimeType:    mimeType,
		FileSize:    len(content),
		UploadedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "register document: %v", err)
	}
	s.logger.Info("document uploaded",
		"document_id", doc.ID, "driver_id", driverID, "doc_type", docType, "bytes", len(content))
	return &haulboardpb.UploadDocumentResponse{Document: utils.ToPBDocument(doc), Deduplicated: dedup}, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, req *haulboardpb.ListDocumentsRequest) (*haulboardpb.ListDocumentsResponse, error) {
	driverID, err := parseUUID(req.GetDriverId(), "driver_id")
	if err != nil {
		return nil, err
	}
	rows, err := s.docRepo.ListByDriver(ctx, driverID)
	if err != nil {
		s.logger.Error("failed to list documents", "driver_id", driverID, "error", err)
		return nil, status.Errorf(codes.Internal, "list documents: %v", err)
	}
	out := make([]*haulboardpb.Document, 0, len(rows))
	for _, d := range rows {
		out = append(out, utils.ToPBDocument(d))
	}
	return &haulboardpb.ListDocumentsResponse{Documents: out}, nil
}

func (s *DocumentService) ExtractDocument(ctx context.Context, req *haulboardpb.ExtractDocumentRequest) (*haulboardpb.ExtractDocumentResponse, error) {
	documentID, err := parseUUID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.docRepo.GetByID(ctx, documentID); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "document not found")
		}
		return nil, status.Errorf(codes.Internal, "get document: %v", err)
	}

	if req.GetAsync() {
		if err := s.queue.Enqueue(ctx, async.Job{DocumentID: documentID, SubmittedAt: time.Now()}); err != nil {
			return nil, status.Errorf(codes.Internal, "enqueue: %v", err)
		}
		return &haulboardpb.ExtractDocumentResponse{DocumentId: documentID.String(), Queued: true}, nil
	}

	jobID, procErr := s.proc.ProcessDocument(ctx, documentID)
	if jobID == uuid.Nil {
		return nil, status.Errorf(codes.Internal, "extraction failed: %v", procErr)
	}
	// Failures past job creation land on the job row; return it either way.
	job, _, err := s.jobRepo.GetWithDocument(ctx, jobID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "load job: %v", err)
	}
	if procErr != nil {
		s.logger.Warn("synchronous extraction failed", "document_id", documentID, "job_id", jobID, "error", procErr)
	}
	return &haulboardpb.ExtractDocumentResponse{
		DocumentId: documentID.String(),
		Job:        utils.ToPBExtractJob(job),
	}, nil
}

func (s *DocumentService) GetExtraction(ctx context.Context, req *haulboardpb.GetExtractionRequest) (*haulboardpb.GetExtractionResponse, error) {
	jobID, err := parseUUID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	job, _, err := s.jobRepo.GetWithDocument(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "extraction job not found")
		}
		return nil, status.Errorf(codes.Internal, "load job: %v", err)
	}
	return &haulboardpb.GetExtractionResponse{Job: utils.ToPBExtractJob(job)}, nil
}

// ApplyToLoad re-applies a finished extraction to the loads table, with the
// caller's corrections layered over the extracted fields.
func (s *DocumentService) ApplyToLoad(ctx context.Context, req *haulboardpb.ApplyToLoadRequest) (*haulboardpb.ApplyToLoadResponse, error) {
	jobID, err := parseUUID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	job, doc, err := s.jobRepo.GetWithDocument(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "extraction job not found")
		}
		return nil, status.Errorf(codes.Internal, "load job: %v", err)
	}
	if job.Status == nil || *job.Status != string(constants.JobStatusParsed) {
		return nil, status.Errorf(codes.FailedPrecondition, "job is not PARSE_OK (status=%v)", strOr(job.Status, "unset"))
	}

	var fields parse.Fields
	if len(job.ExtractedJSON) > 0 {
		if err := json.Unmarshal(job.ExtractedJSON, &fields); err != nil {
			return nil, status.Errorf(codes.Internal, "decode extracted fields: %v", err)
		}
	}

	label := ""
	if job.SuggestedLabel != nil {
		label = *job.SuggestedLabel
	}
	if ov := req.GetOverrides(); ov != nil {
		if label, err = applyOverrides(&fields, ov, label); err != nil {
			return nil, err
		}
	}
	if err := parse.Validate(fields); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "fields invalid after overrides: %v", err)
	}

	load, merged, err := s.loadRepo.UpsertFromFields(ctx, &repository.UpsertLoadRequest{
		DriverID: doc.DriverID,
		Label:    label,
		Fields:   fields,
	})
	if err != nil {
		s.logger.Error("failed to apply extraction to load", "job_id", jobID, "error", err)
		return nil, status.Errorf(codes.Internal, "upsert load: %v", err)
	}
	if err := s.docRepo.SetLoadID(ctx, doc.ID, load.ID); err != nil {
		return nil, status.Errorf(codes.Internal, "link document: %v", err)
	}
	if err := s.jobRepo.SetLoadID(ctx, jobID, load.ID); err != nil {
		return nil, status.Errorf(codes.Internal, "link job: %v", err)
	}
	s.logger.Info("extraction applied to load", "job_id", jobID, "load_id", load.ID, "merged", merged)

	expenses, err := s.expenseRepo.ListByLoad(ctx, load.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list expenses: %v", err)
	}
	var costs float64
	for _, e := range expenses {
		costs += e.Amount
	}
	return &haulboardpb.ApplyToLoadResponse{
		Load:   utils.ToPBLoad(load, report.NetProfit(load.GrossPay, costs)),
		Merged: merged,
	}, nil
}

func (s *DocumentService) AttachDocument(ctx context.Context, req *haulboardpb.AttachDocumentRequest) (*haulboardpb.AttachDocumentResponse, error) {
	documentID, err := parseUUID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	loadID, err := parseUUID(req.GetLoadId(), "load_id")
	if err != nil {
		return nil, err
	}
	if _, err := s.loadRepo.GetByID(ctx, loadID); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "load not found")
		}
		return nil, status.Errorf(codes.Internal, "get load: %v", err)
	}
	if err := s.docRepo.SetLoadID(ctx, documentID, loadID); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "document not found")
		}
		s.logger.Error("failed to attach document", "document_id", documentID, "load_id", loadID, "error", err)
		return nil, status.Errorf(codes.Internal, "attach document: %v", err)
	}
	if label := strings.TrimSpace(req.GetLabel()); label != "" {
		if err := s.docRepo.SetLabel(ctx, documentID, label); err != nil {
			return nil, status.Errorf(codes.Internal, "set label: %v", err)
		}
	}
	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get document: %v", err)
	}
	s.logger.Info("document attached to load", "document_id", documentID, "load_id", loadID)
	return &haulboardpb.AttachDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

// applyOverrides layers non-empty override fields over the extracted record
// and returns the effective label.
func applyOverrides(f *parse.Fields, ov *haulboardpb.LoadFieldOverrides, label string) (string, error) {
	if v := strings.TrimSpace(ov.GetGrossPay()); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil || amount <= 0 {
			return "", status.Errorf(codes.InvalidArgument, "gross_pay must be a positive decimal, got %q", v)
		}
		f.GrossPay = &amount
	}
	if v := strings.TrimSpace(ov.GetMiles()); v != "" {
		miles, err := strconv.Atoi(v)
		if err != nil || miles <= 0 {
			return "", status.Errorf(codes.InvalidArgument, "miles must be a positive integer, got %q", v)
		}
		f.Miles = &miles
	}
	if v, err := overrideDate(ov.GetPickupDate(), "pickup_date"); err != nil {
		return "", err
	} else if v != nil {
		f.PickupDate = v
	}
	if v, err := overrideDate(ov.GetDeliveryDate(), "delivery_date"); err != nil {
		return "", err
	} else if v != nil {
		f.DeliveryDate = v
	}
	if v := strings.TrimSpace(ov.GetOrigin()); v != "" {
		f.Origin = &v
	}
	if v := strings.TrimSpace(ov.GetDestination()); v != "" {
		f.Destination = &v
	}
	if v, err := overrideState(ov.GetPickupState(), "pickup_state"); err != nil {
		return "", err
	} else if v != nil {
		f.PickupState = v
	}
	if v, err := overrideState(ov.GetDropState(), "drop_state"); err != nil {
		return "", err
	} else if v != nil {
		f.DropState = v
	}
	if v := strings.TrimSpace(ov.GetStatus()); v != "" {
		if !constants.ValidLoadStatus(v) {
			return "", status.Errorf(codes.InvalidArgument, "unknown status %q", v)
		}
		f.Status = v
	}
	if v := strings.TrimSpace(ov.GetLabel()); v != "" {
		label = v
	}
	return label, nil
}

func overrideDate(raw, field string) (*string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if _, err := utils.ParseYMD(raw); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s invalid (YYYY-MM-DD): %v", field, err)
	}
	return &raw, nil
}

func overrideState(raw, field string) (*string, error) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return nil, nil
	}
	if !parse.ValidState(raw) {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be a two-letter state code, got %q", field, raw)
	}
	return &raw, nil
}

func strOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
