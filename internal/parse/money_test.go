package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchGrossPayLabeledLine(t *testing.T) {
	pay, sp, ok := matchGrossPay("Total Rate: $1,200.00\nsome other line")
	require.True(t, ok)
	assert.Equal(t, 1200.0, pay)
	assert.Contains(t, "Total Rate: $1,200.00\nsome other line"[sp.Start:sp.End], "1,200.00")
}

func TestMatchGrossPayValueOnNextLine(t *testing.T) {
	// OCR often pushes the amount onto the line after the label.
	pay, _, ok := matchGrossPay("Totals\n$2,450.00\n")
	require.True(t, ok)
	assert.Equal(t, 2450.0, pay)
}

func TestMatchGrossPayTakesMaximumAcrossLabels(t *testing.T) {
	text := "LineHaul $1,800.00\nFuel Surcharge\nTotal Rate $2,100.00\n"
	pay, _, ok := matchGrossPay(text)
	require.True(t, ok)
	assert.Equal(t, 2100.0, pay)
}

func TestMatchGrossPayPlausibilityFilter(t *testing.T) {
	// Below 100 and above 100000 are rejected even as the only labeled candidates.
	_, _, ok := matchGrossPay("Total Rate: $12.00")
	assert.False(t, ok)

	_, _, ok = matchGrossPay("Total Rate: $1,200,000.00")
	assert.False(t, ok)
}

func TestMatchGrossPayGlobalFallback(t *testing.T) {
	// No labeled line at all: largest dollar-prefixed amount wins.
	pay, _, ok := matchGrossPay("pay advance $500.00 somewhere\nfinal $1,900.00 elsewhere")
	require.True(t, ok)
	assert.Equal(t, 1900.0, pay)
}

func TestMatchGrossPayNoMoney(t *testing.T) {
	_, _, ok := matchGrossPay("no recognizable money pattern at all")
	assert.False(t, ok)
}

func TestMatchMiles(t *testing.T) {
	mi, _, ok := matchMiles("Miles: 1,412 loaded")
	require.True(t, ok)
	assert.Equal(t, 1412, mi)

	mi, _, ok = matchMiles("Mi 482")
	require.True(t, ok)
	assert.Equal(t, 482, mi)

	_, _, ok = matchMiles("no distance stated")
	assert.False(t, ok)
}
