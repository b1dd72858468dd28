package session

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"collabpad/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1 << 20
	sendBuffer     = 256
)

// Client is one live connection in a room. Outbound frames go through a
// bounded queue drained by WritePump, so a stalled peer never delays
// broadcasts to the rest of its room.
type Client struct {
	conn *websocket.Conn
	send chan models.WSFrame
	once sync.Once

	mu   sync.Mutex
	hook func(models.WSFrame)
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn, send: make(chan models.WSFrame, sendBuffer)}
}

// SetSendHook replaces the WebSocket transport (used in tests).
func (c *Client) SetSendHook(fn func(models.WSFrame)) {
	c.mu.Lock()
	c.hook = fn
	c.mu.Unlock()
}

// Send enqueues a frame without blocking and reports whether it was accepted.
// A full queue drops the frame for this client only.
func (c *Client) Send(frame models.WSFrame) bool {
	c.mu.Lock()
	hook := c.hook
	c.mu.Unlock()
	if hook != nil {
		hook(frame)
		return true
	}

	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// Close shuts the outbound queue down. Safe to call more than once; the
// owning handler calls it after the client has left its room, so no broadcast
// can race the close.
func (c *Client) Close() {
	c.once.Do(func() { close(c.send) })
}

// PrepareRead applies the read limit and keeps the read deadline refreshed by
// pongs.
func (c *Client) PrepareRead() {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
}

// ReadFrame blocks for the next inbound frame.
func (c *Client) ReadFrame() (models.WSFrame, error) {
	var frame models.WSFrame
	err := c.conn.ReadJSON(&frame)
	return frame, err
}

// WritePump owns all writes to the connection. It exits when the queue is
// closed, a write fails, or a ping goes unanswered.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
