package websocket

import (
	"context"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs handles websocket requests from the peer.
func ServeWs(hub *Hub, relay Relay, c *websocket.Conn) {
	ctx, cancel := context.WithCancel(context.Background())
	client := &Client{
		Hub:    hub,
		Conn:   c,
		Id:     uuid.New(),
		Send:   make(chan []byte, 256),
		rooms:  make(map[uuid.UUID]bool),
		relay:  relay,
		ctx:    ctx,
		cancel: cancel,
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // run in the handler goroutine
}
