package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateFromTextCommaForm(t *testing.T) {
	st, ok := stateFromText("Pickup#1: Salt Lake City, UT 84101")
	require.True(t, ok)
	assert.Equal(t, "UT", st)
}

func TestStateFromTextFullName(t *testing.T) {
	st, ok := stateFromText("somewhere in north dakota apparently")
	require.True(t, ok)
	assert.Equal(t, "ND", st)
}

func TestStateFromTextRejectsInvalidCode(t *testing.T) {
	// "ZZ" is two uppercase letters in the address position but not a state.
	_, ok := stateFromText("Nowhere City, ZZ 00000")
	assert.False(t, ok)
}

func TestValidState(t *testing.T) {
	assert.True(t, ValidState("TX"))
	assert.True(t, ValidState("WY"))
	assert.False(t, ValidState("XX"))
	assert.False(t, ValidState("tx"))
}

func TestPickCityStatePrefersDifferingState(t *testing.T) {
	section := "Warehouse B\nAurora, CO 80011\nFinal Stop\nReno, NV 89501"
	cs, ok := pickCityState(section, true, "CO")
	require.True(t, ok)
	assert.Equal(t, "Reno, NV", cs.place)

	// With no differing state available, the exclusion is waived.
	cs, ok = pickCityState("Aurora, CO 80011", true, "CO")
	require.True(t, ok)
	assert.Equal(t, "CO", cs.state)
}

func TestCityStatesIgnoresLowercaseProse(t *testing.T) {
	assert.Empty(t, cityStates("arrived in reno, nv after dark"))
}
