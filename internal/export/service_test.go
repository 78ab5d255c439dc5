package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/haulboard/haulboard/internal/entity"
)

func strp(s string) *string { return &s }
func fp(f float64) *float64 { return &f }
func ip(i int) *int { return &i }
func dp(s string) *time.Time { t, _ := time.Parse("2006-01-02", s); return &t }

func cell(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	v, err := f.GetCellValue("Loads", ref)
	require.NoError(t, err)
	return v
}

func TestBuildLoadsWorkbook(t *testing.T) {
	loadID := uuid.New()
	otherID := uuid.New()
	loads := []*entity.Load{
		{
			ID:         loadID,
			Label:      "mike UT ID 2025-09-15",
			Status:     "completed",
			GrossPay:   fp(1200),
			Miles:      ip(540),
			PickupDate: dp("2025-09-14"),
			Origin:     strp("Salt Lake City, UT"),
			BOLNumber:  strp("BL-4821997"),
		},
		{
			ID:     otherID,
			Label:  "unpriced",
			Status: "planned",
		},
	}
	expenses := []*entity.Expense{
		{ID: uuid.New(), LoadID: &loadID, Amount: 150.25},
		{ID: uuid.New(), LoadID: &loadID, Amount: 49.75},
		{ID: uuid.New(), Amount: 500}, // unattached, must not count
	}

	out, err := BuildLoadsWorkbook(loads, expenses)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, "Label", cell(t, f, "A1"))
	assert.Equal(t, "Net Profit", cell(t, f, "J1"))

	assert.Equal(t, "mike UT ID 2025-09-15", cell(t, f, "A2"))
	assert.Equal(t, "2025-09-14", cell(t, f, "C2"))
	assert.Equal(t, "200", cell(t, f, "I2"))
	assert.Equal(t, "1000", cell(t, f, "J2"))
	assert.Equal(t, "BL-4821997", cell(t, f, "K2"))

	// No gross and no expenses nets to zero; miles column stays empty.
	assert.Equal(t, "unpriced", cell(t, f, "A3"))
	assert.Equal(t, "", cell(t, f, "G3"))
	assert.Equal(t, "0", cell(t, f, "J3"))
}
