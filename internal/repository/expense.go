package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/haulboard/haulboard/gen/ent"
	entexpense "github.com/haulboard/haulboard/gen/ent/expense"
)

// CreateExpenseRequest wraps parameters for recording an expense.
type CreateExpenseRequest struct {
	DriverID   uuid.UUID
	LoadID     *uuid.UUID
	Category   string
	Amount     float64
	IncurredAt time.Time
	Note       *string
}

type ExpenseRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Expense, error)
	Create(ctx context.Context, req *CreateExpenseRequest) (*ent.Expense, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID, fromDate, toDate *time.Time) ([]*ent.Expense, error)
	ListByLoad(ctx context.Context, loadID uuid.UUID) ([]*ent.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type expenseRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewExpenseRepository(entc *ent.Client, logger *slog.Logger) ExpenseRepository {
	return &expenseRepo{ent: entc, logger: logger}
}

func (r *expenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Expense, error) {
	return r.ent.Expense.Get(ctx, id)
}

func (r *expenseRepo) Create(ctx context.Context, req *CreateExpenseRequest) (*ent.Expense, error) {
	row, err := r.ent.Expense.Create().
		SetDriverID(req.DriverID).
		SetNillableLoadID(req.LoadID).
		SetCategory(req.Category).
		SetAmount(req.Amount).
		SetIncurredAt(req.IncurredAt).
		SetNillableNote(req.Note).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create expense", "driver_id", req.DriverID, "category", req.Category, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *expenseRepo) ListByDriver(ctx context.Context, driverID uuid.UUID, fromDate, toDate *time.Time) ([]*ent.Expense, error) {
	q := r.ent.Expense.Query().Where(entexpense.DriverID(driverID))
	if fromDate != nil {
		q = q.Where(entexpense.IncurredAtGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(entexpense.IncurredAtLTE(*toDate))
	}
	rows, err := q.Order(entexpense.ByIncurredAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list expenses", "driver_id", driverID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *expenseRepo) ListByLoad(ctx context.Context, loadID uuid.UUID) ([]*ent.Expense, error) {
	return r.ent.Expense.Query().
		Where(entexpense.LoadID(loadID)).
		Order(entexpense.ByIncurredAt()).
		All(ctx)
}

func (r *expenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.ent.Expense.DeleteOneID(id).Exec(ctx)
}
