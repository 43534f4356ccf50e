package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// RegionKind identifies the geometry variant of a geofence region.
type RegionKind string

const (
	RegionCircle  RegionKind = "circle"
	RegionPolygon RegionKind = "polygon"
)

// RuleType governs which containment transition constitutes a violation.
type RuleType string

const (
	RuleForbidden RuleType = "FORBIDDEN" // entering the region is a violation
	RuleStayIn    RuleType = "STAY_IN"   // leaving the region is a violation
	RuleStandard  RuleType = "STANDARD"  // both transitions are reported, informational
)

// RegionStatus marks whether a region participates in detection.
type RegionStatus string

const (
	RegionActive   RegionStatus = "active"
	RegionInactive RegionStatus = "inactive"
)

// GeoPoint is a (lng,lat) coordinate pair as stored in region geometry.
type GeoPoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Finite reports whether both coordinates are finite numbers.
func (p GeoPoint) Finite() bool {
	return !math.IsNaN(p.Latitude) && !math.IsInf(p.Latitude, 0) &&
		!math.IsNaN(p.Longitude) && !math.IsInf(p.Longitude, 0)
}

// CircleGeometry is a center point plus radius in meters.
type CircleGeometry struct {
	Center       GeoPoint `json:"center"`
	RadiusMeters float64  `json:"radius_meters"`
}

// PolygonGeometry is an ordered ring of vertices. The closing point is
// optional; both open and closed rings are accepted.
type PolygonGeometry struct {
	Ring []GeoPoint `json:"ring"`
}

// GeofenceRegion is a named circular or polygonal area with a rule type.
// Exactly one of Circle/Polygon is set, selected by Kind.
type GeofenceRegion struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Kind    RegionKind       `json:"kind"`
	Rule    RuleType         `json:"rule_type"`
	Status  RegionStatus     `json:"status"`
	Circle  *CircleGeometry  `json:"circle,omitempty"`
	Polygon *PolygonGeometry `json:"polygon,omitempty"`
}

var (
	ErrRegionGeometry = errors.New("invalid region geometry")
)

// Validate rejects regions whose geometry must never reach containment
// evaluation: non-finite coordinates, degenerate radius, or fewer than
// three distinct polygon vertices.
func (r *GeofenceRegion) Validate() error {
	switch r.Kind {
	case RegionCircle:
		if r.Circle == nil {
			return fmt.Errorf("%w: circle region %q has no circle geometry", ErrRegionGeometry, r.ID)
		}
		if !r.Circle.Center.Finite() {
			return fmt.Errorf("%w: circle region %q has non-finite center", ErrRegionGeometry, r.ID)
		}
		if math.IsNaN(r.Circle.RadiusMeters) || r.Circle.RadiusMeters <= 0 {
			return fmt.Errorf("%w: circle region %q has degenerate radius %v", ErrRegionGeometry, r.ID, r.Circle.RadiusMeters)
		}
	case RegionPolygon:
		if r.Polygon == nil {
			return fmt.Errorf("%w: polygon region %q has no polygon geometry", ErrRegionGeometry, r.ID)
		}
		if err := validateRing(r.Polygon.Ring); err != nil {
			return fmt.Errorf("%w: polygon region %q: %v", ErrRegionGeometry, r.ID, err)
		}
	default:
		return fmt.Errorf("%w: region %q has unknown kind %q", ErrRegionGeometry, r.ID, r.Kind)
	}
	return nil
}

func validateRing(ring []GeoPoint) error {
	distinct := make(map[GeoPoint]struct{}, len(ring))
	for _, p := range ring {
		if !p.Finite() {
			return errors.New("ring contains non-finite vertex")
		}
		distinct[p] = struct{}{}
	}
	if len(distinct) < 3 {
		return fmt.Errorf("ring has %d distinct vertices, need at least 3", len(distinct))
	}
	return nil
}

// Active reports whether the region participates in detection.
func (r *GeofenceRegion) Active() bool {
	return r != nil && r.Status == RegionActive
}

// TransitionKind identifies a containment state change.
type TransitionKind string

const (
	TransitionEnter TransitionKind = "ENTER"
	TransitionExit  TransitionKind = "EXIT"
)

// AlertSeverity ranks published alerts for downstream consumers.
type AlertSeverity string

const (
	SeverityWarning AlertSeverity = "warning"
	SeverityInfo    AlertSeverity = "info"
)

// ViolationAlert is emitted once per qualifying containment transition.
// Ownership passes to the dispatcher on emission; the detector keeps no
// alert history beyond its de-duplication cooldown.
type ViolationAlert struct {
	ID          string         `json:"id"`
	VehicleKey  string         `json:"vehicle_key"`
	VehicleName string         `json:"vehicle_name"`
	RegionID    string         `json:"region_id"`
	RegionName  string         `json:"region_name"`
	Rule        RuleType       `json:"rule_triggered"`
	Transition  TransitionKind `json:"transition"`
	Severity    AlertSeverity  `json:"severity"`
	Message     string         `json:"message"`
	Location    string         `json:"location"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	Timestamp   time.Time      `json:"timestamp"`
}
