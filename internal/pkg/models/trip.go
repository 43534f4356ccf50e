package models

import "time"

// TripSummary holds aggregate statistics for one vehicle track, derived
// purely from the full sample sequence. Recomputed whenever inputs change.
type TripSummary struct {
	DistanceKm    float64 `json:"distance_km"`
	DurationHours float64 `json:"duration_hours"`
	AvgSpeedKmh   float64 `json:"avg_speed_kmh"`
	MaxSpeedKmh   float64 `json:"max_speed_kmh"`
	StopCount     int     `json:"stop_count"`
}

// TrackResponse is the trip history payload served for map rendering:
// the reduced point sequence plus statistics computed over the full track.
type TrackResponse struct {
	VehicleKey string           `json:"vehicle_key"`
	From       time.Time        `json:"from"`
	To         time.Time        `json:"to"`
	Points     []PositionSample `json:"points"`
	TotalCount int              `json:"total_count"` // samples before reduction
	Summary    TripSummary      `json:"summary"`
}
