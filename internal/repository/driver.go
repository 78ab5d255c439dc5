package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/haulboard/haulboard/gen/ent"
	entdriver "github.com/haulboard/haulboard/gen/ent/driver"
)

type DriverRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Driver, error)
	GetByName(ctx context.Context, name string) (*ent.Driver, error)
	Create(ctx context.Context, name string) (*ent.Driver, error)
	List(ctx context.Context) ([]*ent.Driver, error)
}

type driverRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDriverRepository(entc *ent.Client, logger *slog.Logger) DriverRepository {
	return &driverRepo{ent: entc, logger: logger}
}

func (r *driverRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Driver, error) {
	return r.ent.Driver.Get(ctx, id)
}

func (r *driverRepo) GetByName(ctx context.Context, name string) (*ent.Driver, error) {
	return r.ent.Driver.Query().Where(entdriver.Name(name)).Only(ctx)
}

func (r *driverRepo) Create(ctx context.Context, name string) (*ent.Driver, error) {
	row, err := r.ent.Driver.Create().SetName(name).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create driver", "name", name, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *driverRepo) List(ctx context.Context) ([]*ent.Driver, error) {
	return r.ent.Driver.Query().Order(entdriver.ByName()).All(ctx)
}
