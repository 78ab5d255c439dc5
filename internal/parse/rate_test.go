package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRateText = `CARRIER RATE CONFIRMATION
Order# 48122
Total Rate: $1,200.00
Miles: 341
Pickup#1: Salt Lake City, UT 84101
Appointment Date & Time: 2025-09-14 08:00-12:00
Shipper: Wasatch Distribution
Delivery#2: Boise, ID 83702
Appointment Date & Time: 2025-09-15 09:00-14:00
Consignee dock hours 06:00-16:00
`

func TestParseRateFullDocument(t *testing.T) {
	f, spans := ParseRate(sampleRateText)

	require.NotNil(t, f.GrossPay)
	assert.Equal(t, 1200.0, *f.GrossPay)

	require.NotNil(t, f.Miles)
	assert.Equal(t, 341, *f.Miles)

	require.NotNil(t, f.PickupDate)
	assert.Equal(t, "2025-09-14", *f.PickupDate)
	require.NotNil(t, f.DeliveryDate)
	assert.Equal(t, "2025-09-15", *f.DeliveryDate)

	require.NotNil(t, f.PickupState)
	assert.Equal(t, "UT", *f.PickupState)
	require.NotNil(t, f.DropState)
	assert.Equal(t, "ID", *f.DropState)

	require.NotNil(t, f.Origin)
	assert.Equal(t, "Salt Lake City, UT", *f.Origin)
	require.NotNil(t, f.Destination)
	assert.Equal(t, "Boise, ID", *f.Destination)

	assert.Equal(t, "planned", f.Status)

	// Spans point back into the source text.
	sp, ok := spans["pickup_date"]
	require.True(t, ok)
	assert.Equal(t, "2025-09-14", cleanText(sampleRateText)[sp.Start:sp.End])
}

func TestParseRateUnanchoredWindowDate(t *testing.T) {
	// No appointment label near delivery; the bare date inside the window wins.
	text := "Total Rate: $900.00\nPickup: Denver, CO 80202\nAppointment Date & Time: 2025-09-14\nDelivery: Cheyenne, WY 82001\n9/16/25 by noon\n"
	f, _ := ParseRate(text)
	require.NotNil(t, f.DeliveryDate)
	assert.Equal(t, "2025-09-16", *f.DeliveryDate)
}

func TestParseRateNoMoneyYieldsNil(t *testing.T) {
	f, _ := ParseRate("Pickup: Denver, CO\nDelivery: Reno, NV\nno figures at all")
	assert.Nil(t, f.GrossPay)
	assert.Nil(t, f.Miles)
}

func TestParseRateIdempotent(t *testing.T) {
	a, _ := ParseRate(sampleRateText)
	b, _ := ParseRate(sampleRateText)
	assert.Equal(t, a, b)
}

func TestParseRateInvalidStateNotPropagated(t *testing.T) {
	f, _ := ParseRate("Pickup: Gotham, QQ 11111\nDelivery: Metropolis, KS 66101\n")
	assert.Nil(t, f.PickupState)
	require.NotNil(t, f.DropState)
	assert.Equal(t, "KS", *f.DropState)
}

func TestParseRateEmptyText(t *testing.T) {
	f, _ := ParseRate("")
	assert.Nil(t, f.GrossPay)
	assert.Nil(t, f.PickupDate)
	assert.Nil(t, f.Origin)
	assert.Equal(t, "planned", f.Status)
}
