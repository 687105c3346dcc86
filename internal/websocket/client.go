package websocket

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"service-marketplace-be/internal/dto"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	eventJoinRoom    = "joinRoom"
	eventSendMessage = "sendMessage"
)

// Relay handles inbound chat events. Implemented by the chat relay service.
type Relay interface {
	OnSendMessage(ctx context.Context, ev *dto.SendMessageEvent)
}

// IncomingMessage is the client→server frame envelope.
type IncomingMessage struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	Hub *Hub

	// The websocket connection.
	Conn *websocket.Conn

	// Connection id, for logs only. Connections are unauthenticated.
	Id uuid.UUID

	// Buffered channel of outbound messages.
	Send chan []byte

	// Rooms this connection has joined. Owned by the hub goroutine.
	rooms map[uuid.UUID]bool

	// Set once Send has been closed.
	closed bool

	relay Relay

	// Connection-scoped context, cancelled when the read loop exits.
	ctx    context.Context
	cancel context.CancelFunc
}

// readPump pumps messages from the websocket connection to the hub.
func (c *Client) readPump() {
	defer func() {
		c.cancel()
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("readPump error for client %s: %v", c.Id, err)
			}
			break
		}
		c.dispatch(raw)
	}
}

func (c *Client) dispatch(raw []byte) {
	var msg IncomingMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Printf("dropping malformed frame from client %s: %v", c.Id, err)
		return
	}

	switch msg.Event {
	case eventJoinRoom:
		// Payload is the bare room id string.
		var roomIdStr string
		if err := json.Unmarshal(msg.Payload, &roomIdStr); err != nil {
			log.Printf("dropping joinRoom with bad payload from client %s: %v", c.Id, err)
			return
		}
		roomId, err := uuid.Parse(roomIdStr)
		if err != nil {
			log.Printf("dropping joinRoom with bad room id from client %s: %v", c.Id, err)
			return
		}
		c.Hub.join <- joinRequest{client: c, roomId: roomId}

	case eventSendMessage:
		var ev dto.SendMessageEvent
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			log.Printf("dropping sendMessage with bad payload from client %s: %v", c.Id, err)
			return
		}
		c.relay.OnSendMessage(c.ctx, &ev)

	default:
		log.Printf("unknown event %q from client %s", msg.Event, c.Id)
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued frames to the current websocket message.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				w.Write(<-c.Send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
