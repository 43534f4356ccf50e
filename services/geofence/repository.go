package geofence

import (
	"context"

	"github.com/piresc/armada/internal/pkg/models"
)

// GeofenceRepo defines the interface for region and assignment lookups.
// Region geometry coming out of the repository is not trusted; the caller
// re-validates it on every fetch.
type GeofenceRepo interface {
	// GetAssignment returns the vehicle's region assignment, or nil when
	// the vehicle has none
	GetAssignment(ctx context.Context, vehicleKey string) (*models.VehicleAssignment, error)

	// GetRegion returns the region by id, or nil when it does not exist
	GetRegion(ctx context.Context, regionID string) (*models.GeofenceRegion, error)

	// StoreLatestPosition records the vehicle's most recent position for
	// dashboard reads
	StoreLatestPosition(ctx context.Context, sample models.PositionSample) error

	// GetLatestPosition reads the vehicle's most recent position, or nil
	// when none is stored
	GetLatestPosition(ctx context.Context, vehicleKey string) (*models.PositionSample, error)

	// GetNearbyVehicles returns vehicles whose latest position lies within
	// radiusMeters of the point, nearest first
	GetNearbyVehicles(ctx context.Context, point models.GeoPoint, radiusMeters float64) ([]models.NearbyVehicle, error)
}
