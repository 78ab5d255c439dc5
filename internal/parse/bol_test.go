package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBOLText = `BILL OF LADING
Bill of Lading Number: BL-4821997
Ship Date: 09/10/2025
SHIP FROM
Acme Corp
4500 Brighton Blvd
Denver, CO 80202
SHIP TO / STOP 1
Beta LLC
Reno, NV 89501
Delivery Date: 09/12/2025
Carrier signature on file
`

func TestParseBOLFullDocument(t *testing.T) {
	f, spans := ParseBOL(sampleBOLText)

	require.NotNil(t, f.PickupDate)
	assert.Equal(t, "2025-09-10", *f.PickupDate)
	require.NotNil(t, f.DeliveryDate)
	assert.Equal(t, "2025-09-12", *f.DeliveryDate)

	require.NotNil(t, f.Origin)
	assert.Equal(t, "Denver, CO", *f.Origin)
	require.NotNil(t, f.Destination)
	assert.Equal(t, "Reno, NV", *f.Destination)

	require.NotNil(t, f.PickupState)
	assert.Equal(t, "CO", *f.PickupState)
	require.NotNil(t, f.DropState)
	assert.Equal(t, "NV", *f.DropState)

	require.NotNil(t, f.BOLNumber)
	assert.Equal(t, "BL-4821997", *f.BOLNumber)

	assert.Nil(t, f.GrossPay)
	assert.Nil(t, f.Miles)
	assert.Equal(t, "planned", f.Status)

	sp, ok := spans["bol_number"]
	require.True(t, ok)
	assert.Equal(t, "BL-4821997", sampleBOLText[sp.Start:sp.End])
}

func TestParseBOLLatestDateFallback(t *testing.T) {
	// No labeled delivery date: the latest distinct date in the document wins.
	text := "SHIP FROM\nAcme Corp\nDenver, CO 80202\nSHIP TO\nBeta LLC\nReno, NV 89501\nscanned 09/10/2025\nsigned 09/12/2025\n"
	f, _ := ParseBOL(text)

	require.NotNil(t, f.Origin)
	assert.Equal(t, "Denver, CO", *f.Origin)
	require.NotNil(t, f.Destination)
	assert.Equal(t, "Reno, NV", *f.Destination)
	require.NotNil(t, f.PickupState)
	assert.Equal(t, "CO", *f.PickupState)
	require.NotNil(t, f.DropState)
	assert.Equal(t, "NV", *f.DropState)

	assert.Nil(t, f.PickupDate)
	require.NotNil(t, f.DeliveryDate)
	assert.Equal(t, "2025-09-12", *f.DeliveryDate)
}

func TestParseBOLDeliveryFallbackSkipsPickupDate(t *testing.T) {
	// Only one distinct date, already claimed as the pickup: no delivery date.
	text := "Ship Date: 09/10/2025\nprinted 09/10/2025\n"
	f, _ := ParseBOL(text)
	require.NotNil(t, f.PickupDate)
	assert.Equal(t, "2025-09-10", *f.PickupDate)
	assert.Nil(t, f.DeliveryDate)
}

func TestParseBOLNumberPrefersLongestWithDigit(t *testing.T) {
	text := "BOL # SHORT Bill of Lading Number: 100482199755\nBOL # AB123\n"
	f, _ := ParseBOL(text)
	require.NotNil(t, f.BOLNumber)
	assert.Equal(t, "100482199755", *f.BOLNumber)
}

func TestParseBOLNumberRequiresDigit(t *testing.T) {
	f, _ := ParseBOL("Bill of Lading Number: PENDING\n")
	assert.Nil(t, f.BOLNumber)
}

func TestParseBOLNumberShape(t *testing.T) {
	for _, text := range []string{sampleBOLText, "BOL # X9Y8Z\n", "B/L # 12345-A\n"} {
		f, _ := ParseBOL(text)
		if f.BOLNumber == nil {
			continue
		}
		assert.GreaterOrEqual(t, len(*f.BOLNumber), 5)
		assert.True(t, strings.ContainsAny(*f.BOLNumber, "0123456789"))
	}
}

func TestParseBOLDestinationAvoidsOriginState(t *testing.T) {
	// The SHIP TO block repeats a same-state depot line; the differing-state
	// match is preferred.
	text := "SHIP FROM\nAcme Corp\nDenver, CO 80202\nSHIP TO\nRelay Depot\nAurora, CO 80011\nFinal: Reno, NV 89501\n"
	f, _ := ParseBOL(text)
	require.NotNil(t, f.Destination)
	assert.Equal(t, "Reno, NV", *f.Destination)
}

func TestParseBOLGlobalFallbackLocations(t *testing.T) {
	// No SHIP FROM / SHIP TO labels anywhere.
	text := "Origin: Omaha, NE 68102\nFinal stop: Boise, ID 83702\n"
	f, _ := ParseBOL(text)
	require.NotNil(t, f.Origin)
	assert.Equal(t, "Omaha, NE", *f.Origin)
	require.NotNil(t, f.Destination)
	assert.Equal(t, "Boise, ID", *f.Destination)
}

func TestParseBOLIdempotent(t *testing.T) {
	a, _ := ParseBOL(sampleBOLText)
	b, _ := ParseBOL(sampleBOLText)
	assert.Equal(t, a, b)
}
