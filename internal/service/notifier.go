package service

import (
	"github.com/google/uuid"
	"github.com/stylesam/luxuria/internal/domain"
)

// Notifier broadcasts directory change events to connected clients.
type Notifier interface {
	NotifyUserUpdated(user *domain.User)
	NotifyUserDeleted(userID uuid.UUID)
	NotifyFriendAdded(userID uuid.UUID, friend *domain.User)
	NotifyFriendRemoved(userID, friendID uuid.UUID)
	NotifyZoneCreated(zone *domain.GeoZone)
	NotifyZoneUpdated(zone *domain.GeoZone)
	NotifyZoneDeleted(userID, zoneID uuid.UUID)
}
