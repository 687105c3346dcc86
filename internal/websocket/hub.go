package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"service-marketplace-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "chat_room_events"

type joinRequest struct {
	client *Client
	roomId uuid.UUID
}

type Hub struct {
	// Room membership: RoomID -> connections currently joined
	rooms map[uuid.UUID]map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Join requests (a connection entering a room).
	join chan joinRequest

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	// Identifies this instance on the backplane so locally published frames
	// are not delivered twice.
	instanceId string

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		rooms:      make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		join:       make(chan joinRequest),
		rdb:        rdb,
		instanceId: uuid.NewString(),
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
			h.logger.Info("Hub", "Client connected", map[string]interface{}{"client": client.Id})

		case client := <-h.unregister:
			h.mu.Lock()
			for roomId := range client.rooms {
				if members, ok := h.rooms[roomId]; ok {
					delete(members, client)
					if len(members) == 0 {
						delete(h.rooms, roomId)
					}
				}
			}
			if !client.closed {
				client.closed = true
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client disconnected", map[string]interface{}{"client": client.Id})

		case req := <-h.join:
			h.mu.Lock()
			if _, ok := h.rooms[req.roomId]; !ok {
				h.rooms[req.roomId] = make(map[*Client]bool)
			}
			h.rooms[req.roomId][req.client] = true
			req.client.rooms[req.roomId] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "Client joined room", map[string]interface{}{
				"client": req.client.Id,
				"roomId": req.roomId,
			})
		}
	}
}

// BroadcastToRoom delivers a frame to every local member of the room and
// mirrors it to other instances over Redis.
func (h *Hub) BroadcastToRoom(roomId uuid.UUID, payload []byte) {
	h.deliverLocal(roomId, payload)

	if h.rdb != nil {
		wrapped, _ := json.Marshal(map[string]interface{}{
			"origin":  h.instanceId,
			"room_id": roomId.String(),
			"message": json.RawMessage(payload),
		})
		h.rdb.Publish(context.Background(), clusterChannel, wrapped)
	}
}

func (h *Hub) deliverLocal(roomId uuid.UUID, payload []byte) {
	var slow []*Client

	// Sends stay under the read lock: the hub closes Send under the write
	// lock, so a close cannot overlap a send here. The select never blocks.
	h.mu.RLock()
	for client := range h.rooms[roomId] {
		select {
		case client.Send <- payload:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{
			"client": client.Id,
		})
		h.unregister <- client
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			Origin  string          `json:"origin"`
			RoomID  string          `json:"room_id"`
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		// Frames we published ourselves were already delivered locally.
		if payload.Origin == h.instanceId {
			continue
		}

		roomId, err := uuid.Parse(payload.RoomID)
		if err != nil {
			continue
		}
		h.deliverLocal(roomId, payload.Message)
	}
}
