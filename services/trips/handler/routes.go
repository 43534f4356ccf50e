package handler

import (
	"github.com/labstack/echo/v4"
	natspkg "github.com/piresc/armada/internal/pkg/nats"
	"github.com/piresc/armada/services/trips"
	httpHandler "github.com/piresc/armada/services/trips/handler/http"
)

// Handler combines the HTTP and NATS surfaces of the trips service.
type Handler struct {
	tripHTTP *httpHandler.TripHandler
	tripNATS *NATSHandler
}

// NewHandler creates a new combined handler
func NewHandler(tripUC trips.TripUC, natsClient *natspkg.Client) *Handler {
	return &Handler{
		tripHTTP: httpHandler.NewTripHandler(tripUC),
		tripNATS: NewNATSHandler(tripUC, natsClient),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Internal routes for the surrounding application's rendering layer
	internal := e.Group("/internal")

	internal.GET("/vehicles/:id/track", h.tripHTTP.GetVehicleTrack)
	internal.GET("/vehicles/:id/summary", h.tripHTTP.GetTripSummary)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.tripNATS.InitNATSConsumers()
}

// Close shuts down the NATS consumers
func (h *Handler) Close() {
	h.tripNATS.Close()
}
