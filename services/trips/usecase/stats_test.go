package usecase

import (
	"testing"
	"time"

	"github.com/piresc/armada/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeTripSummary_EmptyInput(t *testing.T) {
	summary := ComputeTripSummary(nil, 5)
	assert.Equal(t, models.TripSummary{}, summary)
}

func TestComputeTripSummary_SinglePoint(t *testing.T) {
	points := []models.PositionSample{
		{
			VehicleKey: "vehicle-1",
			Latitude:   -6.2088,
			Longitude:  106.8456,
			Speed:      speedPtr(12),
			Timestamp:  time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		},
	}

	summary := ComputeTripSummary(points, 5)
	assert.Zero(t, summary.DistanceKm)
	assert.Zero(t, summary.DurationHours)
	assert.InDelta(t, 12.0, summary.AvgSpeedKmh, 1e-9)
	assert.InDelta(t, 12.0, summary.MaxSpeedKmh, 1e-9)
	assert.Zero(t, summary.StopCount)
}

func TestComputeTripSummary_StopRunCountsOnce(t *testing.T) {
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	points := []models.PositionSample{
		{VehicleKey: "vehicle-1", Latitude: -6.2088, Longitude: 106.8456, Speed: speedPtr(0), Timestamp: base},
		{VehicleKey: "vehicle-1", Latitude: -6.2088, Longitude: 106.8456, Speed: speedPtr(0), Timestamp: base.Add(60 * time.Second)},
		{VehicleKey: "vehicle-1", Latitude: -6.2088, Longitude: 106.8456, Speed: speedPtr(30), Timestamp: base.Add(120 * time.Second)},
	}

	summary := ComputeTripSummary(points, 5)
	assert.Equal(t, 1, summary.StopCount)
	assert.InDelta(t, 10.0, summary.AvgSpeedKmh, 1e-9)
	assert.InDelta(t, 30.0, summary.MaxSpeedKmh, 1e-9)
	assert.InDelta(t, float64(120)/3600, summary.DurationHours, 1e-9)
	assert.InDelta(t, 0.0, summary.DistanceKm, 1e-9)
}

func TestComputeTripSummary_MultipleStopRuns(t *testing.T) {
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	speeds := []float64{0, 0, 30, 2, 1, 40, 0}
	points := make([]models.PositionSample, len(speeds))
	for i, s := range speeds {
		points[i] = models.PositionSample{
			VehicleKey: "vehicle-1",
			Latitude:   -6.2088,
			Longitude:  106.8456,
			Speed:      speedPtr(s),
			Timestamp:  base.Add(time.Duration(i) * time.Minute),
		}
	}

	summary := ComputeTripSummary(points, 5)
	assert.Equal(t, 3, summary.StopCount)
}

func TestComputeTripSummary_DistanceOverRealRoute(t *testing.T) {
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	// Jakarta to Bandung, straight line roughly 120 km.
	points := []models.PositionSample{
		{VehicleKey: "vehicle-1", Latitude: -6.2088, Longitude: 106.8456, Timestamp: base},
		{VehicleKey: "vehicle-1", Latitude: -6.9175, Longitude: 107.6191, Timestamp: base.Add(3 * time.Hour)},
	}

	summary := ComputeTripSummary(points, 5)
	assert.InDelta(t, 120, summary.DistanceKm, 10)
	assert.InDelta(t, 3.0, summary.DurationHours, 1e-9)
	// No speed readings at all: averages stay zero rather than being
	// derived from distance over time.
	assert.Zero(t, summary.AvgSpeedKmh)
	assert.Zero(t, summary.MaxSpeedKmh)
	assert.Zero(t, summary.StopCount)
}

func TestComputeTripSummary_MissingSpeedsSkipped(t *testing.T) {
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	points := []models.PositionSample{
		{VehicleKey: "vehicle-1", Latitude: -6.2088, Longitude: 106.8456, Speed: speedPtr(20), Timestamp: base},
		{VehicleKey: "vehicle-1", Latitude: -6.2090, Longitude: 106.8456, Timestamp: base.Add(time.Minute)},
		{VehicleKey: "vehicle-1", Latitude: -6.2092, Longitude: 106.8456, Speed: speedPtr(40), Timestamp: base.Add(2 * time.Minute)},
	}

	summary := ComputeTripSummary(points, 5)
	assert.InDelta(t, 30.0, summary.AvgSpeedKmh, 1e-9)
	assert.InDelta(t, 40.0, summary.MaxSpeedKmh, 1e-9)
}
