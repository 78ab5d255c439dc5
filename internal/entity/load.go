package entity

import (
	"time"

	"github.com/google/uuid"
)

// Load represents one haul for data transfer between layers. Optional fields
// are pointers; a nil means the extraction or the user never supplied a value.
type Load struct {
	ID           uuid.UUID  `json:"id"`
	DriverID     uuid.UUID  `json:"driver_id"`
	Label        string     `json:"label"`
	Status       string     `json:"status"`
	GrossPay     *float64   `json:"gross_pay,omitempty"`
	Miles        *int       `json:"miles,omitempty"`
	PickupDate   *time.Time `json:"pickup_date,omitempty"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	Origin       *string    `json:"origin,omitempty"`
	Destination  *string    `json:"destination,omitempty"`
	PickupState  *string    `json:"pickup_state,omitempty"`
	DropState    *string    `json:"drop_state,omitempty"`
	BOLNumber    *string    `json:"bol_number,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
