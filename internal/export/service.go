package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/haulboard/haulboard/internal/entity"
	"github.com/haulboard/haulboard/internal/report"
	"github.com/haulboard/haulboard/internal/repository"
	"github.com/haulboard/haulboard/internal/utils"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// load exports.
type Service struct {
	loadsRepo    repository.LoadRepository
	expensesRepo repository.ExpenseRepository
	logger       *slog.Logger
}

func NewService(loads repository.LoadRepository, expenses repository.ExpenseRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{loadsRepo: loads, expensesRepo: expenses, logger: logger}
}

// ExportLoadsXLSX returns an XLSX workbook for the given driver and pickup
// date window. If only from is provided the window runs from..today.
func (s *Service) ExportLoadsXLSX(ctx context.Context, driverID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	fromDate, toDate := normalizeWindow(from, to)
	rows, err := s.loadsRepo.ListLoads(ctx, driverID, repository.ListLoadsFilter{
		FromDate: fromDate,
		ToDate:   toDate,
	})
	if err != nil {
		return nil, fmt.Errorf("query loads: %w", err)
	}
	expenseRows, err := s.expensesRepo.ListByDriver(ctx, driverID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}

	loads := make([]*entity.Load, len(rows))
	for i, l := range rows {
		loads[i] = utils.ToLoad(l)
	}
	expenses := make([]*entity.Expense, len(expenseRows))
	for i, e := range expenseRows {
		expenses[i] = utils.ToExpense(e)
	}

	out, err := BuildLoadsWorkbook(loads, expenses)
	if err != nil {
		return nil, err
	}

	s.logger.Info("exported loads workbook",
		"driver_id", driverID, "loads", len(loads), "duration_ms", time.Since(start).Milliseconds())
	return out, nil
}

// BuildLoadsWorkbook renders one row per load with its net profit.
func BuildLoadsWorkbook(loads []*entity.Load, expenses []*entity.Expense) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Loads"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Label",
		"Status",
		"Pickup Date",
		"Delivery Date",
		"Origin",
		"Destination",
		"Miles",
		"Gross Pay",
		"Expenses",
		"Net Profit",
		"BOL #",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, l := range loads {
		var costs float64
		for _, e := range expenses {
			if e.LoadID != nil && *e.LoadID == l.ID {
				costs += e.Amount
			}
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, l.Label)
		write(2, l.Status)
		write(3, ymd(l.PickupDate))
		write(4, ymd(l.DeliveryDate))
		write(5, deref(l.Origin))
		write(6, deref(l.Destination))
		if l.Miles != nil {
			write(7, *l.Miles)
		}
		if l.GrossPay != nil {
			write(8, *l.GrossPay)
		}
		write(9, report.Round2(costs))
		write(10, report.LoadNet(l, expenses))
		write(11, deref(l.BOLNumber))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 28) // label
	_ = f.SetColWidth(sheet, "C", "D", 14) // dates
	_ = f.SetColWidth(sheet, "E", "F", 24) // lane

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func normalizeWindow(from, to *time.Time) (*time.Time, *time.Time) {
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	return fromDate, toDate
}

func ymd(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.Format("2006-01-02")
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
