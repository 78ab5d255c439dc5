package server

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/haulboard/haulboard/gen/ent"
	haulboardpb "github.com/haulboard/haulboard/gen/proto/haulboard/v1"
	"github.com/haulboard/haulboard/internal/repository"
	"github.com/haulboard/haulboard/internal/utils"
)

type ExpenseService struct {
	haulboardpb.UnimplementedExpensesServiceServer
	expenseRepo repository.ExpenseRepository
	logger      *slog.Logger
}

func NewExpenseService(expenseRepo repository.ExpenseRepository, logger *slog.Logger) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (s *ExpenseService) AddExpense(ctx context.Context, req *haulboardpb.AddExpenseRequest) (*haulboardpb.AddExpenseResponse, error) {
	driverID, err := parseUUID(req.GetDriverId(), "driver_id")
	if err != nil {
		return nil, err
	}
	category := strings.TrimSpace(req.GetCategory())
	if category == "" {
		return nil, status.Error(codes.InvalidArgument, "category is required")
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(req.GetAmount()), 64)
	if err != nil || amount <= 0 {
		return nil, status.Errorf(codes.InvalidArgument, "amount must be a positive decimal, got %q", req.GetAmount())
	}
	incurredAt, err := utils.ParseYMD(strings.TrimSpace(req.GetIncurredAt()))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "incurred_at invalid (YYYY-MM-DD): %v", err)
	}

	var loadID *uuid.UUID
	if raw := strings.TrimSpace(req.GetLoadId()); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "load_id must be a UUID")
		}
		loadID = &id
	}
	var note *string
	if n := strings.TrimSpace(req.GetNote()); n != "" {
		note = &n
	}

	row, err := s.expenseRepo.Create(ctx, &repository.CreateExpenseRequest{
		DriverID:   driverID,
		LoadID:     loadID,
		Category:   category,
		Amount:     amount,
		IncurredAt: incurredAt,
		Note:       note,
	})
	if err != nil {
		s.logger.Error("failed to add expense", "driver_id", driverID, "category", category, "error", err)
		return nil, status.Errorf(codes.Internal, "add expense: %v", err)
	}
	s.logger.Info("expense added", "expense_id", row.ID, "driver_id", driverID, "amount", amount)
	return &haulboardpb.AddExpenseResponse{Expense: utils.ToPBExpense(row)}, nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context, req *haulboardpb.ListExpensesRequest) (*haulboardpb.ListExpensesResponse, error) {
	driverID, err := parseUUID(req.GetDriverId(), "driver_id")
	if err != nil {
		return nil, err
	}
	fromDate, err := optionalDate(req.GetFromDate(), "from_date")
	if err != nil {
		return nil, err
	}
	toDate, err := optionalDate(req.GetToDate(), "to_date")
	if err != nil {
		return nil, err
	}

	rows, err := s.expenseRepo.ListByDriver(ctx, driverID, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list expenses", "driver_id", driverID, "error", err)
		return nil, status.Errorf(codes.Internal, "list expenses: %v", err)
	}
	out := make([]*haulboardpb.Expense, 0, len(rows))
	for _, e := range rows {
		out = append(out, utils.ToPBExpense(e))
	}
	return &haulboardpb.ListExpensesResponse{Expenses: out}, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, req *haulboardpb.DeleteExpenseRequest) (*haulboardpb.DeleteExpenseResponse, error) {
	expenseID, err := parseUUID(req.GetExpenseId(), "expense_id")
	if err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Delete(ctx, expenseID); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "expense not found")
		}
		s.logger.Error("failed to delete expense", "expense_id", expenseID, "error", err)
		return nil, status.Errorf(codes.Internal, "delete expense: %v", err)
	}
	return &haulboardpb.DeleteExpenseResponse{}, nil
}
