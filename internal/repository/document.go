package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/haulboard/haulboard/gen/ent"
	entdoc "github.com/haulboard/haulboard/gen/ent/document"
)

// CreateDocumentRequest wraps parameters for registering a stored upload.
type CreateDocumentRequest struct {
	DriverID    uuid.UUID
	DocType     string
	SourcePath  string
	ContentHash []byte
	Filename    string
	FileExt     string
	MimeType    *string
	FileSize    int
	UploadedAt  time.Time
}

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	GetByDriverAndHash(ctx context.Context, driverID uuid.UUID, hash []byte) (*ent.Document, error)
	Create(ctx context.Context, req *CreateDocumentRequest) (*ent.Document, error)
	UpsertByHash(ctx context.Context, req *CreateDocumentRequest) (*ent.Document, bool, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*ent.Document, error)
	SetLoadID(ctx context.Context, id, loadID uuid.UUID) error
	SetLabel(ctx context.Context, id uuid.UUID, label string) error
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	return r.ent.Document.Get(ctx, id)
}

func (r *documentRepo) GetByDriverAndHash(ctx context.Context, driverID uuid.UUID, hash []byte) (*ent.Document, error) {
	return r.ent.Document.Query().
		Where(
			entdoc.DriverID(driverID),
			entdoc.ContentHash(hash),
		).Only(ctx)
}

func (r *documentRepo) Create(ctx context.Context, req *CreateDocumentRequest) (*ent.Document, error) {
	row, err := r.ent.Document.Create().
		SetDriverID(req.DriverID).
		SetDocType(req.DocType).
		SetSourcePath(req.SourcePath).
		SetContentHash(req.ContentHash).
		SetFilename(req.Filename).
		SetFileExt(req.FileExt).
		SetNillableMimeType(req.MimeType).
		SetFileSize(req.FileSize).
		SetUploadedAt(req.UploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "driver_id", req.DriverID, "filename", req.Filename, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash returns the existing row when the same bytes were already
// uploaded by this driver. The bool reports whether it was a duplicate.
func (r *documentRepo) UpsertByHash(ctx context.Context, req *CreateDocumentRequest) (*ent.Document, bool, error) {
	if existing, err := r.GetByDriverAndHash(ctx, req.DriverID, req.ContentHash); err == nil {
		return existing, true, nil
	} else if !ent.IsNotFound(err) {
		return nil, false, err
	}
	row, err := r.Create(ctx, req)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}

func (r *documentRepo) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*ent.Document, error) {
	return r.ent.Document.Query().
		Where(entdoc.DriverID(driverID)).
		Order(entdoc.ByUploadedAt()).
		All(ctx)
}

func (r *documentRepo) SetLoadID(ctx context.Context, id, loadID uuid.UUID) error {
	return r.ent.Document.UpdateOneID(id).SetLoadID(loadID).Exec(ctx)
}

func (r *documentRepo) SetLabel(ctx context.Context, id uuid.UUID, label string) error {
	return r.ent.Document.UpdateOneID(id).SetLabel(label).Exec(ctx)
}
