package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/haulboard/haulboard/constants"
	"github.com/haulboard/haulboard/gen/ent"
	haulboardpb "github.com/haulboard/haulboard/gen/proto/haulboard/v1"
	"github.com/haulboard/haulboard/internal/entity"
	"github.com/haulboard/haulboard/internal/report"
	"github.com/haulboard/haulboard/internal/repository"
	"github.com/haulboard/haulboard/internal/utils"
)

type LoadService struct {
	haulboardpb.UnimplementedLoadsServiceServer
	loadRepo    repository.LoadRepository
	expenseRepo repository.ExpenseRepository
	logger      *slog.Logger
}

func NewLoadService(loadRepo repository.LoadRepository, expenseRepo repository.ExpenseRepository, logger *slog.Logger) *LoadService {
	return &LoadService{
		loadRepo:    loadRepo,
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (s *LoadService) GetLoad(ctx context.Context, req *haulboardpb.GetLoadRequest) (*haulboardpb.GetLoadResponse, error) {
	loadID, err := parseUUID(req.GetLoadId(), "load_id")
	if err != nil {
		return nil, err
	}
	row, err := s.loadRepo.GetByID(ctx, loadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "load not found")
		}
		s.logger.Error("failed to get load", "load_id", loadID, "error", err)
		return nil, status.Errorf(codes.Internal, "get load: %v", err)
	}

	expenses, err := s.expenseRepo.ListByLoad(ctx, loadID)
	if err != nil {
		s.logger.Error("failed to list load expenses", "load_id", loadID, "error", err)
		return nil, status.Errorf(codes.Internal, "list expenses: %v", err)
	}
	var costs float64
	for _, e := range expenses {
		costs += e.Amount
	}
	return &haulboardpb.GetLoadResponse{Load: utils.ToPBLoad(row, report.NetProfit(row.GrossPay, costs))}, nil
}

func (s *LoadService) ListLoads(ctx context.Context, req *haulboardpb.ListLoadsRequest) (*haulboardpb.ListLoadsResponse, error) {
	driverID, err := parseUUID(req.GetDriverId(), "driver_id")
	if err != nil {
		return nil, err
	}

	var filter repository.ListLoadsFilter
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		if !constants.ValidLoadStatus(st) {
			return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", st)
		}
		filter.Status = &st
	}
	if filter.FromDate, err = optionalDate(req.GetFromDate(), "from_date"); err != nil {
		return nil, err
	}
	if filter.ToDate, err = optionalDate(req.GetToDate(), "to_date"); err != nil {
		return nil, err
	}

	rows, err := s.loadRepo.ListLoads(ctx, driverID, filter)
	if err != nil {
		s.logger.Error("failed to list loads", "driver_id", driverID, "error", err)
		return nil, status.Errorf(codes.Internal, "list loads: %v", err)
	}

	// One expense scan covers net profit for every row.
	expenseRows, err := s.expenseRepo.ListByDriver(ctx, driverID, nil, nil)
	if err != nil {
		s.logger.Error("failed to list expenses", "driver_id", driverID, "error", err)
		return nil, status.Errorf(codes.Internal, "list expenses: %v", err)
	}
	expenses := make([]*entity.Expense, len(expenseRows))
	for i, e := range expenseRows {
		expenses[i] = utils.ToExpense(e)
	}

	out := make([]*haulboardpb.Load, 0, len(rows))
	for _, l := range rows {
		out = append(out, utils.ToPBLoad(l, report.LoadNet(utils.ToLoad(l), expenses)))
	}
	return &haulboardpb.ListLoadsResponse{Loads: out}, nil
}

func (s *LoadService) UpdateLoadStatus(ctx context.Context, req *haulboardpb.UpdateLoadStatusRequest) (*haulboardpb.UpdateLoadStatusResponse, error) {
	loadID, err := parseUUID(req.GetLoadId(), "load_id")
	if err != nil {
		return nil, err
	}
	st := strings.TrimSpace(req.GetStatus())
	if !constants.ValidLoadStatus(st) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", st)
	}

	row, err := s.loadRepo.UpdateStatus(ctx, loadID, st)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "load not found")
		}
		return nil, status.Errorf(codes.Internal, "update status: %v", err)
	}
	s.logger.Info("load status updated", "load_id", loadID, "status", st)

	expenses, err := s.expenseRepo.ListByLoad(ctx, loadID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list expenses: %v", err)
	}
	var costs float64
	for _, e := range expenses {
		costs += e.Amount
	}
	return &haulboardpb.UpdateLoadStatusResponse{Load: utils.ToPBLoad(row, report.NetProfit(row.GrossPay, costs))}, nil
}

func (s *LoadService) DeleteLoad(ctx context.Context, req *haulboardpb.DeleteLoadRequest) (*haulboardpb.DeleteLoadResponse, error) {
	loadID, err := parseUUID(req.GetLoadId(), "load_id")
	if err != nil {
		return nil, err
	}
	if err := s.loadRepo.Delete(ctx, loadID); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "load not found")
		}
		s.logger.Error("failed to delete load", "load_id", loadID, "error", err)
		return nil, status.Errorf(codes.Internal, "delete load: %v", err)
	}
	s.logger.Info("load deleted", "load_id", loadID)
	return &haulboardpb.DeleteLoadResponse{}, nil
}

// parseUUID validates a required UUID request field.
func parseUUID(s, field string) (uuid.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

// optionalDate parses an optional YYYY-MM-DD request field.
func optionalDate(s, field string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := utils.ParseYMD(s)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s invalid (YYYY-MM-DD): %v", field, err)
	}
	return &t, nil
}
