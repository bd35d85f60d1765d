package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"blogmosaic/internal/model"
	"blogmosaic/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "toast_events"

// Hub routes toast messages to the browser sessions that should see them.
type Hub struct {
	// Registered clients map: SessionID -> List of Clients (multi-tab)
	clients map[uuid.UUID][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance fan-out
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// dropStalled hands clients whose Send buffer is full back to the run loop.
// Run is the only closer of Send: it removes the client from the map before
// closing, so a client signalled here and by its own readPump is closed once.
// Callers must not hold mu: the run loop takes it to process the unregister.
func (h *Hub) dropStalled(stalled []*Client) {
	for _, client := range stalled {
		h.unregister <- client
	}
}

// Broadcast sends a toast to ALL connected clients.
func (h *Hub) Broadcast(toast model.Toast) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "toast",
		"data": toast,
	})

	h.mu.RLock()
	var stalled []*Client
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				stalled = append(stalled, client)
			}
		}
	}
	h.mu.RUnlock()
	h.dropStalled(stalled)

	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_session_id": "*",
			"message":           data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), clusterChannel, jsonPayload)
	}
}

// Send delivers a toast to every tab of one browser session.
func (h *Hub) Send(sessionID uuid.UUID, toast model.Toast) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "toast",
		"data": toast,
	})

	h.mu.RLock()
	clients, localFound := h.clients[sessionID]
	h.mu.RUnlock()

	if localFound {
		var stalled []*Client
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				h.logger.Warn("Hub", "Client Send buffer full, dropping client", map[string]interface{}{"session_id": sessionID})
				stalled = append(stalled, client)
			}
		}
		h.dropStalled(stalled)
	}

	// Always publish so other instances can reach tabs connected elsewhere.
	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_session_id": sessionID.String(),
			"message":           data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), clusterChannel, jsonPayload)
	}
}

func (h *Hub) subscribeToRedis() {
	// All instances subscribe to the same channel. When a message arrives we
	// check whether the target session is connected locally and deliver it.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			TargetSessionID string          `json:"target_session_id"`
			Message         json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.TargetSessionID == "*" {
			h.mu.RLock()
			var stalled []*Client
			for _, clients := range h.clients {
				for _, client := range clients {
					select {
					case client.Send <- payload.Message:
					default:
						stalled = append(stalled, client)
					}
				}
			}
			h.mu.RUnlock()
			h.dropStalled(stalled)
			continue
		}

		sid, err := uuid.Parse(payload.TargetSessionID)
		if err != nil {
			continue
		}

		h.mu.RLock()
		clients, ok := h.clients[sid]
		h.mu.RUnlock()

		if ok {
			var stalled []*Client
			for _, client := range clients {
				select {
				case client.Send <- payload.Message:
				default:
					stalled = append(stalled, client)
				}
			}
			h.dropStalled(stalled)
		}
	}
}
