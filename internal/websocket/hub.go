package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"fikrswap-academy-be/internal/model"
	"fikrswap-academy-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Hub tracks connected learners and the class rooms they sit in. It
// delivers personal notifications by user id and fans chat traffic out
// to everyone in a class room. Redis pub/sub bridges instances.
type Hub struct {
	// UserID -> connections (multi-device)
	clients map[uuid.UUID][]*Client

	// Class room id -> members
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out; nil in single-node dev.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rooms:      make(map[string]map[*Client]bool),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			if client.Room != "" {
				if h.rooms[client.Room] == nil {
					h.rooms[client.Room] = make(map[*Client]bool)
				}
				h.rooms[client.Room][client] = true
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{
				"user_id": client.UserID,
				"room":    client.Room,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
				}
			}
			if client.Room != "" {
				if members, ok := h.rooms[client.Room]; ok {
					delete(members, client)
					if len(members) == 0 {
						delete(h.rooms, client.Room)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// Send delivers one stored notification to every device of one learner.
func (h *Hub) Send(userID uuid.UUID, notification model.Notification) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})

	h.mu.RLock()
	clients, localFound := h.clients[userID]
	h.mu.RUnlock()

	if localFound {
		for _, client := range clients {
			h.push(client, data)
		}
	}

	h.publishToCluster(map[string]interface{}{
		"target_user_id": userID.String(),
		"message":        data,
	})
}

// Broadcast delivers a notification to every connected client.
func (h *Hub) Broadcast(notification model.Notification) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})

	h.mu.RLock()
	for _, clients := range h.clients {
		for _, client := range clients {
			h.push(client, data)
		}
	}
	h.mu.RUnlock()

	h.publishToCluster(map[string]interface{}{
		"target_user_id": "*",
		"message":        data,
	})
}

// BroadcastToRoom fans a chat payload out to every member of one class
// room, on this instance and via redis on every other.
func (h *Hub) BroadcastToRoom(room string, payload interface{}) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "chat",
		"data": payload,
	})

	h.deliverToRoom(room, data)

	h.publishToCluster(map[string]interface{}{
		"target_room": room,
		"message":     data,
	})
}

func (h *Hub) deliverToRoom(room string, data []byte) {
	h.mu.RLock()
	members := make([]*Client, 0, len(h.rooms[room]))
	for client := range h.rooms[room] {
		members = append(members, client)
	}
	h.mu.RUnlock()

	for _, client := range members {
		h.push(client, data)
	}
}

func (h *Hub) push(client *Client, data []byte) {
	select {
	case client.Send <- data:
	default:
		h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{
			"user_id": client.UserID,
		})
		close(client.Send)
		h.unregister <- client
	}
}

func (h *Hub) publishToCluster(payload map[string]interface{}) {
	if h.rdb == nil {
		return
	}
	jsonPayload, _ := json.Marshal(payload)
	h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
}

func (h *Hub) subscribeToRedis() {
	// Every instance subscribes to the shared channel and filters for
	// users and rooms it hosts locally.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetUserID string          `json:"target_user_id"`
			TargetRoom   string          `json:"target_room"`
			Message      json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Redis msg parse error", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}

		if payload.TargetRoom != "" {
			h.deliverToRoom(payload.TargetRoom, payload.Message)
			continue
		}

		if payload.TargetUserID == "*" {
			h.mu.RLock()
			all := make([]*Client, 0)
			for _, clients := range h.clients {
				all = append(all, clients...)
			}
			h.mu.RUnlock()
			for _, client := range all {
				h.push(client, payload.Message)
			}
			continue
		}

		uid, err := uuid.Parse(payload.TargetUserID)
		if err != nil {
			continue
		}

		h.mu.RLock()
		clients, ok := h.clients[uid]
		h.mu.RUnlock()

		if ok {
			for _, client := range clients {
				h.push(client, payload.Message)
			}
		}
	}
}
