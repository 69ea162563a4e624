package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GeoZone is a named geographic zone owned by exactly one user. The geometry
// payload is opaque to this service and only checked for presence.
type GeoZone struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Name      string          `json:"name"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
