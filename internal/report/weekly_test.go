package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulboard/haulboard/internal/entity"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestWeeklySummaryBuckets(t *testing.T) {
	loads := []*entity.Load{
		{ID: uuid.New(), GrossPay: f64(1200), Miles: intp(341), DeliveryDate: day(2025, 9, 15), Status: "completed"},
		{ID: uuid.New(), GrossPay: f64(900), DeliveryDate: day(2025, 9, 17), Status: "planned"},
		// no delivery date: pickup decides the week
		{ID: uuid.New(), GrossPay: f64(700), PickupDate: day(2025, 9, 22), Status: "planned"},
		// no dates at all
		{ID: uuid.New(), Status: "planned"},
	}
	expenses := []*entity.Expense{
		{ID: uuid.New(), Amount: 180.50, IncurredAt: *day(2025, 9, 16)},
		{ID: uuid.New(), Amount: 60, IncurredAt: *day(2025, 9, 23)},
	}

	weeks := WeeklySummary(loads, expenses)
	require.Len(t, weeks, 3)

	// sorted: 2025-W38, 2025-W39, undated
	w38 := weeks[0]
	assert.Equal(t, "2025-W38", w38.Week)
	assert.Equal(t, 2, w38.Loads)
	assert.Equal(t, 2100.0, w38.Gross)
	assert.Equal(t, 341, w38.Miles)
	assert.Equal(t, 180.50, w38.Expenses)
	assert.Equal(t, 1919.50, w38.Net)
	assert.Equal(t, 1, w38.Completed)

	w39 := weeks[1]
	assert.Equal(t, "2025-W39", w39.Week)
	assert.Equal(t, 640.0, w39.Net)

	assert.Equal(t, "undated", weeks[2].Week)
	assert.Equal(t, 1, weeks[2].Loads)
}

func TestWeeklySummaryPerMile(t *testing.T) {
	loads := []*entity.Load{
		{ID: uuid.New(), GrossPay: f64(1000), Miles: intp(500), DeliveryDate: day(2025, 9, 15)},
	}
	weeks := WeeklySummary(loads, nil)
	require.Len(t, weeks, 1)
	assert.Equal(t, 2.0, weeks[0].PerMile)

	// miles unknown: per-mile stays zero instead of dividing by zero
	loads[0].Miles = nil
	weeks = WeeklySummary(loads, nil)
	assert.Equal(t, 0.0, weeks[0].PerMile)
}

func TestTotalNet(t *testing.T) {
	loads := []*entity.Load{
		{ID: uuid.New(), GrossPay: f64(1200)},
		{ID: uuid.New()}, // gross unknown
	}
	expenses := []*entity.Expense{{ID: uuid.New(), Amount: 300.25}}
	assert.Equal(t, 899.75, TotalNet(loads, expenses))
}

func TestWeeklySummaryEmpty(t *testing.T) {
	assert.Empty(t, WeeklySummary(nil, nil))
}

func intp(v int) *int { return &v }
