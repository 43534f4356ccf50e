package handler

import (
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/armada/internal/pkg/logger"
	wspkg "github.com/piresc/armada/internal/pkg/websocket"
)

// WebSocketHandler serves the live alert feed to dashboard clients.
type WebSocketHandler struct {
	manager *wspkg.Manager
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(manager *wspkg.Manager) *WebSocketHandler {
	return &WebSocketHandler{manager: manager}
}

// HandleAlertFeed registers a dashboard client on the alert feed. The
// connection only receives broadcasts; inbound frames are read solely to
// detect disconnects.
func (h *WebSocketHandler) HandleAlertFeed(c echo.Context) error {
	clientID := uuid.New().String()

	return h.manager.HandleConnection(c, clientID, func(client *wspkg.Client) error {
		logger.Info("Dashboard client connected to alert feed",
			logger.String("client_id", client.ID))

		for {
			if _, _, err := client.Conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.Warn("Alert feed connection closed unexpectedly",
						logger.String("client_id", client.ID),
						logger.Err(err))
				}
				return nil
			}
		}
	})
}
