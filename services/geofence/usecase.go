package geofence

import (
	"context"

	"github.com/piresc/armada/internal/pkg/models"
)

// GeofenceUC defines the interface for geofence violation detection logic
type GeofenceUC interface {
	// ProcessPositionUpdate evaluates one position sample against the
	// vehicle's assigned region and emits at most one violation alert
	ProcessPositionUpdate(ctx context.Context, update *models.PositionUpdate) error

	// ProcessBatch evaluates a batch of samples, ordering them per vehicle
	// by timestamp before evaluation
	ProcessBatch(ctx context.Context, samples []models.PositionSample) error

	// GetVehicleState returns the current containment state for a vehicle,
	// or nil if the vehicle has not been evaluated yet
	GetVehicleState(ctx context.Context, vehicleKey string) (*models.VehicleHistory, error)
}
