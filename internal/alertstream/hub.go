package alertstream

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/log"
)

const (
	registerBuffer  = 100
	broadcastBuffer = 1000
)

// Hub maintains the active alert-stream connections, keyed by
// organization, and fans created alerts out to them.
type Hub struct {
	// connections maps orgID -> open connections (multiple operators,
	// multiple tabs).
	connections map[string][]*Connection
	mu          sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *broadcastMessage

	totalConnections atomic.Int64
	eventsSent       atomic.Int64
	eventsDropped    atomic.Int64

	maxConnections int
	logger         log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewHub creates a hub. maxConnections bounds the total number of open
// sockets across all organizations.
func NewHub(logger log.Logger, maxConnections int) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		connections:    make(map[string][]*Connection),
		register:       make(chan *Connection, registerBuffer),
		unregister:     make(chan *Connection, registerBuffer),
		broadcast:      make(chan *broadcastMessage, broadcastBuffer),
		maxConnections: maxConnections,
		logger:         logger,
		ctx:            ctx,
		cancel:         cancel,
		done:           make(chan struct{}),
	}
}

// Run is the hub's main loop. Start it on its own goroutine.
func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.ctx.Done():
			h.closeAllConnections()
			return
		case conn := <-h.register:
			h.registerConnection(conn)
		case conn := <-h.unregister:
			h.unregisterConnection(conn)
		case msg := <-h.broadcast:
			h.broadcastToOrg(msg)
		}
	}
}

// Shutdown stops the loop and closes every connection.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.cancel()
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PublishAlert implements monitor.AlertPublisher. It never blocks the
// caller; when the broadcast buffer is full the event is dropped and
// counted.
func (h *Hub) PublishAlert(orgID string, alert model.MonitoringAlert) {
	msg := &broadcastMessage{
		orgID: orgID,
		event: Event{
			Type:      EventTypeAlert,
			Timestamp: time.Now(),
			Alert:     &alert,
		},
	}
	select {
	case h.broadcast <- msg:
	default:
		h.eventsDropped.Add(1)
		h.logger.Warnf(context.Background(), "internal.alertstream.PublishAlert: broadcast buffer full, dropping alert %s", alert.ID)
	}
}

// Stats reports the hub's connection counters.
func (h *Hub) Stats() (active int64, sent int64, dropped int64) {
	return h.totalConnections.Load(), h.eventsSent.Load(), h.eventsDropped.Load()
}

func (h *Hub) registerConnection(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if int(h.totalConnections.Load()) >= h.maxConnections {
		h.logger.Warnf(context.Background(), "internal.alertstream.registerConnection: max connections reached, rejecting org %s", conn.orgID)
		go conn.Close()
		return
	}

	h.connections[conn.orgID] = append(h.connections[conn.orgID], conn)
	h.totalConnections.Add(1)
	h.logger.Infof(context.Background(), "internal.alertstream.registerConnection: org %s subscribed (%d open)",
		conn.orgID, h.totalConnections.Load())
}

func (h *Hub) unregisterConnection(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.connections[conn.orgID]
	if !ok {
		return
	}
	for i, c := range conns {
		if c == conn {
			h.connections[conn.orgID] = append(conns[:i], conns[i+1:]...)
			h.totalConnections.Add(-1)
			close(conn.send)
			break
		}
	}
	if len(h.connections[conn.orgID]) == 0 {
		delete(h.connections, conn.orgID)
	}
}

func (h *Hub) broadcastToOrg(msg *broadcastMessage) {
	h.mu.RLock()
	conns := append([]*Connection(nil), h.connections[msg.orgID]...)
	h.mu.RUnlock()

	for _, conn := range conns {
		select {
		case conn.send <- msg.event:
			h.eventsSent.Add(1)
		default:
			// Slow consumer; drop the event rather than stall the hub.
			h.eventsDropped.Add(1)
		}
	}
}

func (h *Hub) closeAllConnections() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for orgID, conns := range h.connections {
		for _, conn := range conns {
			close(conn.send)
		}
		delete(h.connections, orgID)
	}
	h.totalConnections.Store(0)
}
