package handler

import (
	"context"
	"encoding/json"

	"github.com/piresc/armada/internal/pkg/constants"
	"github.com/piresc/armada/internal/pkg/logger"
	"github.com/piresc/armada/internal/pkg/models"
	natspkg "github.com/piresc/armada/internal/pkg/nats"
	"github.com/piresc/armada/services/geofence"
)

// NATSHandler feeds telemetry position updates from the bus into the
// violation detector.
type NATSHandler struct {
	geofenceUC geofence.GeofenceUC
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
}

// NewNATSHandler creates a new geofence NATS handler
func NewNATSHandler(geofenceUC geofence.GeofenceUC, natsClient *natspkg.Client) *NATSHandler {
	return &NATSHandler{
		geofenceUC: geofenceUC,
		natsClient: natsClient,
		consumers:  make([]*natspkg.Consumer, 0),
	}
}

// InitNATSConsumers subscribes to the position update subject as part of a
// queue group so a sharded deployment splits vehicles between workers.
func (h *NATSHandler) InitNATSConsumers() error {
	consumer, err := natspkg.NewConsumerWithConn(
		h.natsClient.GetConn(),
		constants.SubjectPositionUpdate,
		constants.QueueGeofenceWorkers,
		h.handlePositionUpdate,
	)
	if err != nil {
		return err
	}

	h.consumers = append(h.consumers, consumer)
	logger.Info("Subscribed to position updates",
		logger.String("subject", constants.SubjectPositionUpdate),
		logger.String("queue_group", constants.QueueGeofenceWorkers))
	return nil
}

// handlePositionUpdate processes a single position update message
func (h *NATSHandler) handlePositionUpdate(data []byte) error {
	var update models.PositionUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		// Malformed telemetry is noise, not a processing failure.
		logger.Debug("Dropping malformed position update", logger.Err(err))
		return nil
	}

	return h.geofenceUC.ProcessPositionUpdate(context.Background(), &update)
}

// Close stops all consumers
func (h *NATSHandler) Close() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
}
