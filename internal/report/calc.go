// Package report computes the money views shown on the dashboard: per-load
// net profit and weekly rollups of loads and expenses.
package report

import (
	"fmt"
	"math"
	"time"

	"github.com/haulboard/haulboard/internal/entity"
)

// Round2 rounds to cents, half away from zero.
func Round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0 // avoid -0 leaking into JSON
	}
	return r
}

// NetProfit is gross pay minus total costs, in cents precision. A load with
// no known gross yields the negated costs, so unpaid expenses still show.
func NetProfit(gross *float64, costs float64) float64 {
	g := 0.0
	if gross != nil {
		g = *gross
	}
	return Round2(g - costs)
}

// LoadNet sums the expenses attached to a load and subtracts them from its
// gross pay.
func LoadNet(load *entity.Load, expenses []*entity.Expense) float64 {
	var costs float64
	for _, e := range expenses {
		if e.LoadID != nil && *e.LoadID == load.ID {
			costs += e.Amount
		}
	}
	return NetProfit(load.GrossPay, costs)
}

// WeekKey buckets a date by ISO week, e.g. "2025-W38".
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
