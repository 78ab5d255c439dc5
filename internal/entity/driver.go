package entity

import (
	"time"

	"github.com/google/uuid"
)

// Driver represents a driver account for data transfer between layers.
type Driver struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
