package handler

import (
	"context"
	"encoding/json"

	"github.com/piresc/armada/internal/pkg/constants"
	"github.com/piresc/armada/internal/pkg/logger"
	"github.com/piresc/armada/internal/pkg/models"
	natspkg "github.com/piresc/armada/internal/pkg/nats"
	"github.com/piresc/armada/services/trips"
)

// NATSHandler records telemetry position updates into the track history.
type NATSHandler struct {
	tripUC     trips.TripUC
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
}

// NewNATSHandler creates a new trips NATS handler
func NewNATSHandler(tripUC trips.TripUC, natsClient *natspkg.Client) *NATSHandler {
	return &NATSHandler{
		tripUC:     tripUC,
		natsClient: natsClient,
		consumers:  make([]*natspkg.Consumer, 0),
	}
}

// InitNATSConsumers subscribes to the position update subject. The queue
// group is separate from the geofence workers so both services see every
// update.
func (h *NATSHandler) InitNATSConsumers() error {
	consumer, err := natspkg.NewConsumerWithConn(
		h.natsClient.GetConn(),
		constants.SubjectPositionUpdate,
		constants.QueueTripsWorkers,
		h.handlePositionUpdate,
	)
	if err != nil {
		return err
	}

	h.consumers = append(h.consumers, consumer)
	logger.Info("Subscribed to position updates",
		logger.String("subject", constants.SubjectPositionUpdate),
		logger.String("queue_group", constants.QueueTripsWorkers))
	return nil
}

// handlePositionUpdate records a single position update message
func (h *NATSHandler) handlePositionUpdate(data []byte) error {
	var update models.PositionUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		logger.Debug("Dropping malformed position update", logger.Err(err))
		return nil
	}

	return h.tripUC.RecordPosition(context.Background(), &update)
}

// Close stops all consumers
func (h *NATSHandler) Close() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
}
