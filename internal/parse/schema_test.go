package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsParserOutput(t *testing.T) {
	for _, text := range []string{sampleRateText, ""} {
		f, _ := ParseRate(text)
		assert.NoError(t, Validate(f))
	}
	f, _ := ParseBOL(sampleBOLText)
	assert.NoError(t, Validate(f))
}

func TestValidateRejectsBadOverrides(t *testing.T) {
	base := Fields{Status: "planned"}

	f := base
	f.GrossPay = floatPtr(50)
	require.Error(t, Validate(f), "gross pay below plausible range")

	f = base
	f.PickupDate = strPtr("09/14/2025")
	require.Error(t, Validate(f), "non-ISO date")

	f = base
	f.DropState = strPtr("Idaho")
	require.Error(t, Validate(f), "state not a two-letter code")

	f = base
	f.Status = "delivered"
	require.Error(t, Validate(f), "status outside the enum")

	f = base
	f.BOLNumber = strPtr("A1")
	require.Error(t, Validate(f), "bol number too short")
}

func TestValidateAllowsNilOptionals(t *testing.T) {
	assert.NoError(t, Validate(Fields{Status: "in_transit"}))
}
