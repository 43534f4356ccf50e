package usecase

import (
	"math"

	"github.com/piresc/armada/internal/pkg/geo"
	"github.com/piresc/armada/internal/pkg/models"
)

// ComputeTripSummary aggregates statistics over the full time-sorted sample
// sequence, never the reduced one. All values are zero for an empty input.
//
// Average and maximum speed come from the samples' reported speed readings,
// not from distance over time; the telemetry source measures instantaneous
// speed independently of position.
func ComputeTripSummary(points []models.PositionSample, lowSpeedThreshold float64) models.TripSummary {
	var summary models.TripSummary
	if len(points) == 0 {
		return summary
	}

	for i := 1; i < len(points); i++ {
		segment := geo.DistanceKm(geo.PointFromSample(points[i-1]), geo.PointFromSample(points[i]))
		if math.IsNaN(segment) || math.IsInf(segment, 0) {
			continue
		}
		summary.DistanceKm += segment
	}

	duration := points[len(points)-1].Timestamp.Sub(points[0].Timestamp)
	if duration > 0 {
		summary.DurationHours = duration.Hours()
	}

	var speedSum float64
	var speedCount int
	inStop := false
	for _, p := range points {
		if !p.HasSpeed() {
			inStop = false
			continue
		}
		speed := p.SpeedValue()
		speedSum += speed
		speedCount++
		if speed > summary.MaxSpeedKmh {
			summary.MaxSpeedKmh = speed
		}

		// A run of consecutive low-speed samples counts as one stop.
		if speed < lowSpeedThreshold {
			if !inStop {
				summary.StopCount++
				inStop = true
			}
		} else {
			inStop = false
		}
	}
	if speedCount > 0 {
		summary.AvgSpeedKmh = speedSum / float64(speedCount)
	}

	return summary
}
