package entity

import (
	"time"

	"github.com/google/uuid"
)

// Expense represents a cost entry, optionally tied to a load.
type Expense struct {
	ID         uuid.UUID  `json:"id"`
	DriverID   uuid.UUID  `json:"driver_id"`
	LoadID     *uuid.UUID `json:"load_id,omitempty"`
	Category   string     `json:"category"`
	Amount     float64    `json:"amount"`
	IncurredAt time.Time  `json:"incurred_at"`
	Note       *string    `json:"note,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
