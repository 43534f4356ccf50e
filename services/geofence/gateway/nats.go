package gateway

import (
	"context"
	"time"

	"github.com/piresc/armada/internal/pkg/constants"
	"github.com/piresc/armada/internal/pkg/logger"
	"github.com/piresc/armada/internal/pkg/models"
	natspkg "github.com/piresc/armada/internal/pkg/nats"
	"github.com/piresc/armada/internal/pkg/retry"
	"github.com/piresc/armada/internal/pkg/websocket"
	"github.com/piresc/armada/services/geofence"
)

type geofenceGW struct {
	producer  *natspkg.Producer
	wsManager *websocket.Manager
	retrier   *retry.Retrier
}

// NewGeofenceGW creates the alert dispatcher. Alerts go to the NATS alert
// subject for durable consumers (notification service, alert log) and to
// connected dashboard WebSocket clients. NATS delivery is retried with
// exponential backoff.
func NewGeofenceGW(producer *natspkg.Producer, wsManager *websocket.Manager, zapLogger *logger.ZapLogger, maxRetries int) geofence.GeofenceGW {
	policy := retry.DefaultPolicy()
	if maxRetries > 0 {
		policy.MaxRetries = maxRetries
	}
	policy.MaxDelay = 5 * time.Second

	return &geofenceGW{
		producer:  producer,
		wsManager: wsManager,
		retrier:   retry.New(policy, zapLogger),
	}
}

// PublishViolationAlert dispatches one alert. The WebSocket broadcast is
// best-effort; only the NATS publish participates in the returned error.
func (g *geofenceGW) PublishViolationAlert(ctx context.Context, alert *models.ViolationAlert) error {
	if g.wsManager != nil {
		g.wsManager.Broadcast(models.WSEventViolationAlert, alert)
	}

	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(constants.SubjectViolationAlert, alert)
	})
}
