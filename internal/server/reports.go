package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	haulboardpb "github.com/haulboard/haulboard/gen/proto/haulboard/v1"
	"github.com/haulboard/haulboard/internal/entity"
	"github.com/haulboard/haulboard/internal/export"
	"github.com/haulboard/haulboard/internal/report"
	"github.com/haulboard/haulboard/internal/repository"
	"github.com/haulboard/haulboard/internal/utils"
)

type ReportService struct {
	haulboardpb.UnimplementedReportsServiceServer
	loadRepo    repository.LoadRepository
	expenseRepo repository.ExpenseRepository
	exporter    *export.Service
	logger      *slog.Logger
}

func NewReportService(loadRepo repository.LoadRepository, expenseRepo repository.ExpenseRepository, exporter *export.Service, logger *slog.Logger) *ReportService {
	return &ReportService{
		loadRepo:    loadRepo,
		expenseRepo: expenseRepo,
		exporter:    exporter,
		logger:      logger,
	}
}

func (s *ReportService) WeeklyReport(ctx context.Context, req *haulboardpb.WeeklyReportRequest) (*haulboardpb.WeeklyReportResponse, error) {
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

	loadRows, err := s.loadRepo.ListLoads(ctx, driverID, repository.ListLoadsFilter{FromDate: fromDate, ToDate: toDate})
	if err != nil {
		s.logger.Error("failed to list loads for report", "driver_id", driverID, "error", err)
		return nil, status.Errorf(codes.Internal, "list loads: %v", err)
	}
	expenseRows, err := s.expenseRepo.ListByDriver(ctx, driverID, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list expenses for report", "driver_id", driverID, "error", err)
		return nil, status.Errorf(codes.Internal, "list expenses: %v", err)
	}

	loads := make([]*entity.Load, len(loadRows))
	for i, l := range loadRows {
		loads[i] = utils.ToLoad(l)
	}
	expenses := make([]*entity.Expense, len(expenseRows))
	for i, e := range expenseRows {
		expenses[i] = utils.ToExpense(e)
	}

	weeks := report.WeeklySummary(loads, expenses)
	out := make([]*haulboardpb.WeekSummary, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, &haulboardpb.WeekSummary{
			Week:      w.Week,
			Loads:     int32(w.Loads),
			Gross:     utils.Money(w.Gross),
			Miles:     int32(w.Miles),
			Expenses:  utils.Money(w.Expenses),
			Net:       utils.Money(w.Net),
			PerMile:   utils.Money(w.PerMile),
			Completed: int32(w.Completed),
		})
	}
	return &haulboardpb.WeeklyReportResponse{
		Weeks:    out,
		TotalNet: utils.Money(report.TotalNet(loads, expenses)),
	}, nil
}

func (s *ReportService) ExportLoads(ctx context.Context, req *haulboardpb.ExportLoadsRequest) (*haulboardpb.ExportLoadsResponse, error) {
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

	xlsx, err := s.exporter.ExportLoadsXLSX(ctx, driverID, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to export loads", "driver_id", driverID, "error", err)
		return nil, status.Errorf(codes.Internal, "export loads: %v", err)
	}
	return &haulboardpb.ExportLoadsResponse{
		Xlsx:     xlsx,
		Filename: fmt.Sprintf("loads-%s.xlsx", time.Now().UTC().Format("20060102")),
	}, nil
}
