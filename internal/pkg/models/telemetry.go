package models

import (
	"math"
	"time"
)

// PositionSample represents one timestamped GPS reading for a vehicle.
// Samples come from an external telemetry source and may carry missing or
// garbage fields; Valid reports whether the sample can enter geometry
// operations.
type PositionSample struct {
	VehicleKey string    `json:"vehicle_key"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Speed      *float64  `json:"speed,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Valid reports whether the sample has a vehicle key, a timestamp and
// in-range finite coordinates.
func (s PositionSample) Valid() bool {
	if s.VehicleKey == "" || s.Timestamp.IsZero() {
		return false
	}
	if math.IsNaN(s.Latitude) || math.IsInf(s.Latitude, 0) || s.Latitude < -90 || s.Latitude > 90 {
		return false
	}
	if math.IsNaN(s.Longitude) || math.IsInf(s.Longitude, 0) || s.Longitude < -180 || s.Longitude > 180 {
		return false
	}
	return true
}

// HasSpeed reports whether the sample carries a usable speed reading.
func (s PositionSample) HasSpeed() bool {
	return s.Speed != nil && !math.IsNaN(*s.Speed) && !math.IsInf(*s.Speed, 0)
}

// SpeedValue returns the reported speed, or 0 when the reading is absent.
func (s PositionSample) SpeedValue() float64 {
	if !s.HasSpeed() {
		return 0
	}
	return *s.Speed
}

// PositionUpdate represents a position update event consumed from the
// telemetry bus.
type PositionUpdate struct {
	Sample    PositionSample `json:"sample"`
	Source    string         `json:"source,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// VehicleAssignment links a vehicle to its active geofence region, if any.
type VehicleAssignment struct {
	VehicleKey  string `json:"vehicle_key"`
	VehicleName string `json:"vehicle_name"`
	RegionID    string `json:"region_id,omitempty"`
}

// NearbyVehicle is one entry of a radius query over the latest vehicle
// positions, ordered nearest first.
type NearbyVehicle struct {
	VehicleKey     string  `json:"vehicle_key"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DistanceMeters float64 `json:"distance_meters"`
}

// VehicleHistory is the ephemeral per-vehicle containment state kept by the
// violation detector. It is never persisted: discarding it and re-seeding
// WasInside from a containment check is always safe.
type VehicleHistory struct {
	VehicleKey    string          `json:"vehicle_key"`
	RegionID      string          `json:"region_id"`
	Previous      *PositionSample `json:"previous,omitempty"`
	Current       *PositionSample `json:"current,omitempty"`
	WasInside     bool            `json:"was_inside"`
	LastEvaluated time.Time       `json:"last_evaluated"`
}
