package ws

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Hub manages all active WebSocket clients and routes directory events to
// them.
type Hub struct {
	// clients maps userID → client.
	clients map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan *broadcastMsg

	log *zap.Logger
}

type broadcastMsg struct {
	data []byte
	// target limits delivery to one user; nil means every connected client.
	target *uuid.UUID
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *broadcastMsg, 256),
		log:        log,
	}
}

// Run starts the Hub's main event loop. Call this in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.userID] = client
			h.log.Info("ws client connected",
				zap.String("user_id", client.userID.String()),
				zap.Int("total", len(h.clients)),
			)

		case client := <-h.unregister:
			if _, ok := h.clients[client.userID]; ok {
				delete(h.clients, client.userID)
				close(client.send)
				close(client.done)
				h.log.Info("ws client disconnected",
					zap.String("user_id", client.userID.String()),
					zap.Int("total", len(h.clients)),
				)
			}

		case msg := <-h.broadcast:
			if msg.target != nil {
				if client, ok := h.clients[*msg.target]; ok {
					h.deliver(client, msg.data)
				}
				continue
			}
			for _, client := range h.clients {
				h.deliver(client, msg.data)
			}
		}
	}
}

func (h *Hub) deliver(client *Client, data []byte) {
	select {
	case client.send <- data:
	default:
		// Client buffer full - disconnect
		delete(h.clients, client.userID)
		close(client.send)
		close(client.done)
	}
}

// BroadcastToAll sends an event to every connected client.
func (h *Hub) BroadcastToAll(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Warn("ws marshal error", zap.Error(err))
		return
	}
	h.broadcast <- &broadcastMsg{data: data}
}

// BroadcastToUser sends an event to a specific user, if connected.
func (h *Hub) BroadcastToUser(userID uuid.UUID, event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Warn("ws marshal error", zap.Error(err))
		return
	}
	h.broadcast <- &broadcastMsg{data: data, target: &userID}
}
