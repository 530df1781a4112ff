package alertstream

import (
	"context"
	"time"

	"github.com/gorilla/websocket"

	"monitor-srv/pkg/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 64
)

// Connection is one subscribed websocket client.
type Connection struct {
	orgID  string
	userID string
	ws     *websocket.Conn
	send   chan Event
	logger log.Logger
}

func newConnection(logger log.Logger, ws *websocket.Conn, orgID, userID string) *Connection {
	return &Connection{
		orgID:  orgID,
		userID: userID,
		ws:     ws,
		send:   make(chan Event, sendBuffer),
		logger: logger,
	}
}

// Close closes the underlying socket.
func (c *Connection) Close() error {
	return c.ws.Close()
}

// readPump drains client frames to keep pong handling alive. The stream
// is one-way; inbound payloads are discarded.
func (c *Connection) readPump(hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.ws.Close()
	}()

	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warnf(context.Background(), "internal.alertstream.readPump: org %s: %v", c.orgID, err)
			}
			return
		}
	}
}

// writePump pushes queued events to the client and keeps the connection
// alive with pings.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteJSON(event); err != nil {
				c.logger.Warnf(context.Background(), "internal.alertstream.writePump: org %s: %v", c.orgID, err)
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
