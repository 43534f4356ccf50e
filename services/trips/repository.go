package trips

import (
	"context"
	"time"

	"github.com/piresc/armada/internal/pkg/models"
)

// TripRepo defines the interface for track history storage
type TripRepo interface {
	// GetTrack returns the vehicle's position samples within [from, to],
	// ordered by recorded timestamp ascending
	GetTrack(ctx context.Context, vehicleKey string, from, to time.Time) ([]models.PositionSample, error)

	// InsertPosition appends one position sample to the track history
	InsertPosition(ctx context.Context, sample models.PositionSample) error
}
