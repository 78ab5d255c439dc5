package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/haulboard/haulboard/internal/entity"
)

func f64(v float64) *float64 { return &v }

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 10.56, Round2(10.556))
	assert.Equal(t, -10.56, Round2(-10.556))
	assert.Equal(t, 0.0, Round2(-0.001))
	assert.Equal(t, 1200.0, Round2(1200))
}

func TestNetProfit(t *testing.T) {
	assert.Equal(t, 950.25, NetProfit(f64(1200.25), 250))
	assert.Equal(t, -250.0, NetProfit(nil, 250), "unknown gross still shows costs")
	assert.Equal(t, 0.0, NetProfit(f64(250), 250), "break-even is plain zero, not -0")
}

func TestLoadNetSumsOnlyItsExpenses(t *testing.T) {
	loadID := uuid.New()
	otherID := uuid.New()
	load := &entity.Load{ID: loadID, GrossPay: f64(1200)}
	expenses := []*entity.Expense{
		{ID: uuid.New(), LoadID: &loadID, Amount: 180.50},
		{ID: uuid.New(), LoadID: &otherID, Amount: 999},
		{ID: uuid.New(), Amount: 50}, // unattached
	}
	assert.Equal(t, 1019.50, LoadNet(load, expenses))
}

func TestWeekKey(t *testing.T) {
	// 2025-09-15 is a Monday in ISO week 38.
	assert.Equal(t, "2025-W38", WeekKey(time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)))
	// Jan 1 2027 falls in the last ISO week of 2026.
	assert.Equal(t, "2026-W53", WeekKey(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
}
