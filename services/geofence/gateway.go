package geofence

import (
	"context"

	"github.com/piresc/armada/internal/pkg/models"
)

// GeofenceGW defines the interface for publishing violation alerts to the
// outside world. Delivery failures are the gateway's problem; the detector
// never rolls back state because an alert could not be delivered.
type GeofenceGW interface {
	PublishViolationAlert(ctx context.Context, alert *models.ViolationAlert) error
}
