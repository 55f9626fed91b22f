package pricefeed

import (
	"launchfund-server/internal/observability"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// upgrader is a shared WebSocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: Add proper origin validation for production
		return true
	},
}

// Handler upgrades feed requests and attaches them to the hub.
type Handler struct {
	hub    *Hub
	logger *observability.Logger
}

// NewHandler creates a price feed handler.
func NewHandler(hub *Hub, logger *observability.Logger) Handler {
	return Handler{hub: hub, logger: logger}
}

// HandleFeed upgrades the connection and streams trade updates for one
// campaign.
func (h Handler) HandleFeed(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(ctx, "failed to upgrade price feed connection", err)
		return
	}

	h.hub.Subscribe(ctx, campaignID, conn)
}
