package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDateCanonicalForms(t *testing.T) {
	// The same calendar date in every source format normalizes identically.
	for _, in := range []string{"9/23/25", "09-23-2025", "2025-09-23", "9.23.25"} {
		got, ok := NormalizeDate(in)
		require.True(t, ok, "input %q", in)
		assert.Equal(t, "2025-09-23", got, "input %q", in)
	}
}

func TestNormalizeDateTwoDigitYearPivot(t *testing.T) {
	got, ok := NormalizeDate("1/2/71")
	require.True(t, ok)
	assert.Equal(t, "1971-01-02", got)

	got, ok = NormalizeDate("1/2/25")
	require.True(t, ok)
	assert.Equal(t, "2025-01-02", got)

	got, ok = NormalizeDate("1/2/70")
	require.True(t, ok)
	assert.Equal(t, "1970-01-02", got)

	got, ok = NormalizeDate("1/2/69")
	require.True(t, ok)
	assert.Equal(t, "2069-01-02", got)
}

func TestNormalizeDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "no date here", "13/45/25", "2/30/2025", "99-99-9999"} {
		_, ok := NormalizeDate(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestDateAfterLabel(t *testing.T) {
	text := "header\nAppointment Date & Time: 2025-09-14 08:00-12:00\nfooter"
	d, sp, ok := dateAfterLabel(text, "Appointment Date & Time")
	require.True(t, ok)
	assert.Equal(t, "2025-09-14", d)
	assert.Equal(t, "2025-09-14", text[sp.Start:sp.End])

	_, _, ok = dateAfterLabel("nothing labeled", "Appointment Date & Time")
	assert.False(t, ok)
}

func TestAllDatesSortedDistinct(t *testing.T) {
	text := "printed 09/12/2025 shipped 09/10/2025 again 09/10/2025 and 2025-09-11"
	assert.Equal(t, []string{"2025-09-10", "2025-09-11", "2025-09-12"}, allDates(text))
}

func TestAnyDateSkipsInvalidTokens(t *testing.T) {
	d, _, ok := anyDate("ref 99/99/99 then real 9/15/25")
	require.True(t, ok)
	assert.Equal(t, "2025-09-15", d)
}
