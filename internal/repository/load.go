package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/haulboard/haulboard/gen/ent"
	entload "github.com/haulboard/haulboard/gen/ent/load"
	"github.com/haulboard/haulboard/internal/parse"
)

// UpsertLoadRequest wraps parameters for seeding or refreshing a load from
// extracted fields.
type UpsertLoadRequest struct {
	DriverID uuid.UUID
	Label    string
	Fields   parse.Fields
}

// ListLoadsFilter narrows ListLoads. Nil members are ignored.
type ListLoadsFilter struct {
	Status   *string
	FromDate *time.Time
	ToDate   *time.Time
}

type LoadRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Load, error)
	ListLoads(ctx context.Context, driverID uuid.UUID, filter ListLoadsFilter) ([]*ent.Load, error)
	UpsertFromFields(ctx context.Context, req *UpsertLoadRequest) (*ent.Load, bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*ent.Load, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type loadRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewLoadRepository(entc *ent.Client, logger *slog.Logger) LoadRepository {
	return &loadRepo{ent: entc, logger: logger}
}

func (r *loadRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Load, error) {
	return r.ent.Load.Get(ctx, id)
}

func (r *loadRepo) ListLoads(ctx context.Context, driverID uuid.UUID, filter ListLoadsFilter) ([]*ent.Load, error) {
	q := r.ent.Load.Query().Where(entload.DriverID(driverID))
	if filter.Status != nil {
		q = q.Where(entload.Status(*filter.Status))
	}
	if filter.FromDate != nil {
		q = q.Where(entload.PickupDateGTE(*filter.FromDate))
	}
	if filter.ToDate != nil {
		q = q.Where(entload.PickupDateLTE(*filter.ToDate))
	}
	rows, err := q.Order(entload.ByPickupDate(), entload.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list loads", "driver_id", driverID, "error", err)
		return nil, err
	}
	return rows, nil
}

// UpsertFromFields finds an existing load by its natural signature (driver,
// pickup date, origin, destination) and merges new values into it, creating
// the row when no match exists. On merge, an incoming non-nil value wins and
// existing values survive where the extraction came up empty. Returns the row
// and whether an existing load was merged.
func (r *loadRepo) UpsertFromFields(ctx context.Context, req *UpsertLoadRequest) (*ent.Load, bool, error) {
	f := req.Fields
	pickup := isoDate(f.PickupDate)
	delivery := isoDate(f.DeliveryDate)

	existing, err := r.findBySignature(ctx, req.DriverID, pickup, f.Origin, f.Destination)
	if err != nil && !ent.IsNotFound(err) {
		return nil, false, err
	}

	if existing != nil {
		upd := r.ent.Load.UpdateOneID(existing.ID).
			SetNillableGrossPay(f.GrossPay).
			SetNillableMiles(f.Miles).
			SetNillableDeliveryDate(delivery).
			SetNillablePickupState(f.PickupState).
			SetNillableDropState(f.DropState).
			SetNillableBolNumber(f.BOLNumber)
		if f.Status != "" {
			upd = upd.SetStatus(f.Status)
		}
		if req.Label != "" && existing.Label == "" {
			upd = upd.SetLabel(req.Label)
		}
		row, err := upd.Save(ctx)
		if err != nil {
			r.logger.Error("failed to merge load", "load_id", existing.ID, "error", err)
			return nil, false, err
		}
		r.logger.Info("merged extracted fields into load", "load_id", row.ID, "driver_id", req.DriverID)
		return row, true, nil
	}

	create := r.ent.Load.Create().
		SetDriverID(req.DriverID).
		SetLabel(req.Label).
		SetNillableGrossPay(f.GrossPay).
		SetNillableMiles(f.Miles).
		SetNillablePickupDate(pickup).
		SetNillableDeliveryDate(delivery).
		SetNillableOrigin(f.Origin).
		SetNillableDestination(f.Destination).
		SetNillablePickupState(f.PickupState).
		SetNillableDropState(f.DropState).
		SetNillableBolNumber(f.BOLNumber)
	if f.Status != "" {
		create = create.SetStatus(f.Status)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create load", "driver_id", req.DriverID, "error", err)
		return nil, false, err
	}
	r.logger.Info("created load from extracted fields", "load_id", row.ID, "driver_id", req.DriverID)
	return row, false, nil
}

func (r *loadRepo) findBySignature(ctx context.Context, driverID uuid.UUID, pickup *time.Time, origin, destination *string) (*ent.Load, error) {
	q := r.ent.Load.Query().Where(entload.DriverID(driverID))
	if pickup != nil {
		q = q.Where(entload.PickupDate(*pickup))
	} else {
		q = q.Where(entload.PickupDateIsNil())
	}
	if origin != nil {
		q = q.Where(entload.Origin(*origin))
	} else {
		q = q.Where(entload.OriginIsNil())
	}
	if destination != nil {
		q = q.Where(entload.Destination(*destination))
	} else {
		q = q.Where(entload.DestinationIsNil())
	}
	return q.Only(ctx)
}

func (r *loadRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*ent.Load, error) {
	row, err := r.ent.Load.UpdateOneID(id).SetStatus(status).Save(ctx)
	if err != nil {
		r.logger.Error("failed to update load status", "load_id", id, "status", status, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *loadRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.ent.Load.DeleteOneID(id).Exec(ctx)
}

// isoDate converts a "YYYY-MM-DD" field into a time, or nil when absent. The
// parsers only produce calendar-valid ISO strings.
func isoDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
