package alertstream

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"monitor-srv/pkg/log"
)

const handshakeTimeout = 10 * time.Second

// Handler upgrades HTTP requests to alert-stream subscriptions.
type Handler struct {
	logger   log.Logger
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler creates the upgrade handler. In non-production environments
// every origin is accepted to simplify local development.
func NewHandler(logger log.Logger, hub *Hub, environment string) *Handler {
	upgrader := websocket.Upgrader{
		HandshakeTimeout: handshakeTimeout,
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
	}
	if environment != "production" {
		upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}

	return &Handler{
		logger:   logger,
		hub:      hub,
		upgrader: upgrader,
	}
}

// Subscribe upgrades the request and registers the connection for the
// caller's organization.
// @Summary Subscribe to live alerts
// @Description Upgrade to a websocket that streams alerts for the organization
// @Tags Alerts
// @Param X-Org-ID header string true "Organization ID"
// @Param X-User-ID header string false "User ID"
// @Success 101 {string} string "Switching Protocols"
// @Router /ws/alerts [get]
func (h *Handler) Subscribe(c *gin.Context) {
	ctx := c.Request.Context()

	orgID := c.GetHeader("X-Org-ID")
	if orgID == "" {
		orgID = c.Query("org_id")
	}
	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "organization id is required"})
		return
	}
	userID := c.GetHeader("X-User-ID")

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorf(ctx, "internal.alertstream.Subscribe: %v", err)
		return
	}

	conn := newConnection(h.logger, ws, orgID, userID)
	h.hub.register <- conn

	go conn.writePump()
	go conn.readPump(h.hub)
}
