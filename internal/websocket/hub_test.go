package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestHub() *Hub {
	h := NewHub(nil, nopLogger{})
	go h.Run()
	return h
}

func newTestClient(h *Hub, buffer int) *Client {
	return &Client{
		Hub:   h,
		Id:    uuid.New(),
		Send:  make(chan []byte, buffer),
		rooms: make(map[uuid.UUID]bool),
	}
}

func joinAndWait(t *testing.T, h *Hub, c *Client, roomId uuid.UUID) {
	t.Helper()
	h.join <- joinRequest{client: c, roomId: roomId}
	require.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		return h.rooms[roomId][c]
	}, time.Second, 5*time.Millisecond)
}

func drain(c *Client) [][]byte {
	frames := make([][]byte, 0, len(c.Send))
	for {
		select {
		case frame := <-c.Send:
			frames = append(frames, frame)
		default:
			return frames
		}
	}
}

func TestBroadcastReachesRoomMembersInOrder(t *testing.T) {
	h := newTestHub()
	roomId := uuid.New()

	a := newTestClient(h, 8)
	b := newTestClient(h, 8)
	joinAndWait(t, h, a, roomId)
	joinAndWait(t, h, b, roomId)

	h.BroadcastToRoom(roomId, []byte("first"))
	h.BroadcastToRoom(roomId, []byte("second"))

	for _, c := range []*Client{a, b} {
		frames := drain(c)
		require.Len(t, frames, 2)
		assert.Equal(t, "first", string(frames[0]))
		assert.Equal(t, "second", string(frames[1]))
	}
}

func TestBroadcastDoesNotCrossRooms(t *testing.T) {
	h := newTestHub()
	roomA := uuid.New()
	roomB := uuid.New()

	inA := newTestClient(h, 8)
	inB := newTestClient(h, 8)
	joinAndWait(t, h, inA, roomA)
	joinAndWait(t, h, inB, roomB)

	h.BroadcastToRoom(roomA, []byte("for room A only"))

	assert.Len(t, drain(inA), 1)
	assert.Empty(t, drain(inB))
}

func TestBroadcastToEmptyRoomIsNoop(t *testing.T) {
	h := newTestHub()

	bystander := newTestClient(h, 8)
	joinAndWait(t, h, bystander, uuid.New())

	h.BroadcastToRoom(uuid.New(), []byte("nobody home"))

	assert.Empty(t, drain(bystander))
}

func TestClientCanJoinMultipleRooms(t *testing.T) {
	h := newTestHub()
	roomA := uuid.New()
	roomB := uuid.New()

	c := newTestClient(h, 8)
	joinAndWait(t, h, c, roomA)
	joinAndWait(t, h, c, roomB)

	h.BroadcastToRoom(roomA, []byte("a"))
	h.BroadcastToRoom(roomB, []byte("b"))

	frames := drain(c)
	require.Len(t, frames, 2)
	assert.Equal(t, "a", string(frames[0]))
	assert.Equal(t, "b", string(frames[1]))
}

func TestUnregisterClearsAllMemberships(t *testing.T) {
	h := newTestHub()
	roomA := uuid.New()
	roomB := uuid.New()

	leaving := newTestClient(h, 8)
	staying := newTestClient(h, 8)
	joinAndWait(t, h, leaving, roomA)
	joinAndWait(t, h, leaving, roomB)
	joinAndWait(t, h, staying, roomA)

	h.unregister <- leaving
	require.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		return !h.rooms[roomA][leaving] && len(h.rooms[roomB]) == 0
	}, time.Second, 5*time.Millisecond)

	// Send is closed so writePump can exit.
	_, open := <-leaving.Send
	assert.False(t, open)

	h.BroadcastToRoom(roomA, []byte("still here"))
	assert.Len(t, drain(staying), 1)
}

func TestBroadcastDuringDisconnectDoesNotPanic(t *testing.T) {
	h := newTestHub()
	roomId := uuid.New()

	clients := make([]*Client, 0, 100)
	for i := 0; i < 100; i++ {
		c := newTestClient(h, 1)
		joinAndWait(t, h, c, roomId)
		clients = append(clients, c)
	}

	// Broadcasts race the disconnects below. A send on a closed Send
	// channel would panic and fail the whole test binary.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			h.BroadcastToRoom(roomId, []byte("burst"))
		}
	}()

	for _, c := range clients {
		h.unregister <- c
	}
	<-done

	require.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		return len(h.rooms[roomId]) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestSlowClientIsDropped(t *testing.T) {
	h := newTestHub()
	roomId := uuid.New()

	slow := newTestClient(h, 1)
	joinAndWait(t, h, slow, roomId)

	h.BroadcastToRoom(roomId, []byte("fills the buffer"))
	h.BroadcastToRoom(roomId, []byte("overflows it"))

	require.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		return len(h.rooms[roomId]) == 0
	}, time.Second, 5*time.Millisecond)
}
