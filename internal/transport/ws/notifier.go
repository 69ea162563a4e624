package ws

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stylesam/luxuria/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub. Directory
// changes fan out to every client; friend and zone changes go to the owner
// only.
type HubNotifier struct {
	hub *Hub
	log *zap.Logger
}

func NewHubNotifier(hub *Hub, log *zap.Logger) *HubNotifier {
	return &HubNotifier{hub: hub, log: log}
}

func (n *HubNotifier) NotifyUserUpdated(user *domain.User) {
	evt, err := NewEvent(EventTypeUserUpdated, UserPayload{User: *user})
	if err != nil {
		n.log.Warn("ws notifier: marshal error", zap.Error(err))
		return
	}
	n.hub.BroadcastToAll(evt)
}

func (n *HubNotifier) NotifyUserDeleted(userID uuid.UUID) {
	evt, err := NewEvent(EventTypeUserDeleted, UserDeletedPayload{ID: userID})
	if err != nil {
		n.log.Warn("ws notifier: marshal error", zap.Error(err))
		return
	}
	n.hub.BroadcastToAll(evt)
}

func (n *HubNotifier) NotifyFriendAdded(userID uuid.UUID, friend *domain.User) {
	evt, err := NewEvent(EventTypeFriendAdded, FriendPayload{Friend: *friend})
	if err != nil {
		n.log.Warn("ws notifier: marshal error", zap.Error(err))
		return
	}
	n.hub.BroadcastToUser(userID, evt)
}

func (n *HubNotifier) NotifyFriendRemoved(userID, friendID uuid.UUID) {
	evt, err := NewEvent(EventTypeFriendRemoved, FriendRemovedPayload{FriendID: friendID})
	if err != nil {
		n.log.Warn("ws notifier: marshal error", zap.Error(err))
		return
	}
	n.hub.BroadcastToUser(userID, evt)
}

func (n *HubNotifier) NotifyZoneCreated(zone *domain.GeoZone) {
	n.sendZoneEvent(EventTypeZoneCreated, zone)
}

func (n *HubNotifier) NotifyZoneUpdated(zone *domain.GeoZone) {
	n.sendZoneEvent(EventTypeZoneUpdated, zone)
}

func (n *HubNotifier) NotifyZoneDeleted(userID, zoneID uuid.UUID) {
	evt, err := NewEvent(EventTypeZoneDeleted, ZoneDeletedPayload{ID: zoneID})
	if err != nil {
		n.log.Warn("ws notifier: marshal error", zap.Error(err))
		return
	}
	n.hub.BroadcastToUser(userID, evt)
}

func (n *HubNotifier) sendZoneEvent(eventType string, zone *domain.GeoZone) {
	evt, err := NewEvent(eventType, ZonePayload{GeoZone: *zone})
	if err != nil {
		n.log.Warn("ws notifier: marshal error", zap.Error(err))
		return
	}
	n.hub.BroadcastToUser(zone.UserID, evt)
}
