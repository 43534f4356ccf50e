package handler

import (
	"github.com/labstack/echo/v4"
	natspkg "github.com/piresc/armada/internal/pkg/nats"
	wspkg "github.com/piresc/armada/internal/pkg/websocket"
	"github.com/piresc/armada/services/geofence"
	httpHandler "github.com/piresc/armada/services/geofence/handler/http"
)

// Handler combines the HTTP, WebSocket and NATS surfaces of the geofence
// service.
type Handler struct {
	geofenceHTTP *httpHandler.GeofenceHandler
	geofenceWS   *WebSocketHandler
	geofenceNATS *NATSHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	geofenceUC geofence.GeofenceUC,
	repo geofence.GeofenceRepo,
	natsClient *natspkg.Client,
	wsManager *wspkg.Manager,
) *Handler {
	return &Handler{
		geofenceHTTP: httpHandler.NewGeofenceHandler(geofenceUC, repo),
		geofenceWS:   NewWebSocketHandler(wsManager),
		geofenceNATS: NewNATSHandler(geofenceUC, natsClient),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Internal routes for the surrounding application's polling layer
	internal := e.Group("/internal")

	internal.POST("/positions", h.geofenceHTTP.EvaluatePositions)
	internal.GET("/vehicles/nearby", h.geofenceHTTP.GetNearbyVehicles)
	internal.GET("/vehicles/:id/state", h.geofenceHTTP.GetVehicleState)
	internal.GET("/vehicles/:id/location", h.geofenceHTTP.GetLatestPosition)

	// Live alert feed for dashboard clients
	e.GET("/ws/alerts", h.geofenceWS.HandleAlertFeed)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.geofenceNATS.InitNATSConsumers()
}

// Close shuts down the NATS consumers
func (h *Handler) Close() {
	h.geofenceNATS.Close()
}
