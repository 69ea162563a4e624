package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/stylesam/luxuria/internal/domain"
)

// Event types - Client → Server
const (
	EventTypePing = "ping"
)

// Event types - Server → Client
const (
	EventTypeUserUpdated   = "user.updated"
	EventTypeUserDeleted   = "user.deleted"
	EventTypeFriendAdded   = "friend.added"
	EventTypeFriendRemoved = "friend.removed"
	EventTypeZoneCreated   = "zone.created"
	EventTypeZoneUpdated   = "zone.updated"
	EventTypeZoneDeleted   = "zone.deleted"
	EventTypePong          = "pong"
	EventTypeError         = "error"
)

// Event is the base envelope for all WebSocket messages.
type Event struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"ts,omitempty"`
}

// --- Server → Client payloads ---

type UserPayload struct {
	domain.User
}

type UserDeletedPayload struct {
	ID uuid.UUID `json:"id"`
}

type FriendPayload struct {
	Friend domain.User `json:"friend"`
}

type FriendRemovedPayload struct {
	FriendID uuid.UUID `json:"friend_id"`
}

type ZonePayload struct {
	domain.GeoZone
}

type ZoneDeletedPayload struct {
	ID uuid.UUID `json:"id"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent creates a server→client event with the current timestamp.
func NewEvent(eventType string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:      eventType,
		Payload:   data,
		Timestamp: time.Now().Unix(),
	}, nil
}
