package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSuggestedLabel(t *testing.T) {
	f := Fields{
		PickupState:  strPtr("UT"),
		DropState:    strPtr("ID"),
		DeliveryDate: strPtr("2025-09-15"),
	}
	assert.Equal(t, "mike UT ID 2025-09-15", BuildSuggestedLabel(f, "mike"))
}

func TestBuildSuggestedLabelPlaceholders(t *testing.T) {
	assert.Equal(t, "mike XX XX", BuildSuggestedLabel(Fields{}, "mike"))

	f := Fields{DropState: strPtr("NV")}
	assert.Equal(t, "mike XX NV", BuildSuggestedLabel(f, "mike"))
}

func TestBuildSuggestedLabelDefaultUser(t *testing.T) {
	f := Fields{PickupState: strPtr("CO"), DropState: strPtr("NV")}
	assert.Equal(t, "you CO NV", BuildSuggestedLabel(f, ""))
}
