package geo

import (
	"math"

	"github.com/piresc/armada/internal/pkg/models"
)

const (
	earthRadiusMeters = 6371000.0
	earthRadiusKm     = 6371.0
)

// Point is a (lat,lng) coordinate pair used by geometry operations.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return finite(p.Latitude) && finite(p.Longitude)
}

// PointFromSample extracts the coordinate pair from a position sample.
func PointFromSample(s models.PositionSample) Point {
	return Point{Latitude: s.Latitude, Longitude: s.Longitude}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// DistanceMeters calculates the great-circle distance between two points in
// meters using the Haversine formula. Non-finite input yields 0 rather than
// an error so it can be used as a safe fallback when accumulating distances;
// containment checks must not rely on that fallback.
func DistanceMeters(a, b Point) float64 {
	if !a.Finite() || !b.Finite() {
		return 0
	}
	return haversine(a, b, earthRadiusMeters)
}

// DistanceKm calculates the great-circle distance between two points in
// kilometers. Same input handling as DistanceMeters.
func DistanceKm(a, b Point) float64 {
	if !a.Finite() || !b.Finite() {
		return 0
	}
	return haversine(a, b, earthRadiusKm)
}

func haversine(a, b Point, radius float64) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return radius * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// PointInCircle reports whether the point lies within radiusMeters of the
// center, boundary inclusive. Malformed input yields false, never a panic.
func PointInCircle(p, center Point, radiusMeters float64) bool {
	if !p.Finite() || !center.Finite() {
		return false
	}
	if !finite(radiusMeters) || radiusMeters <= 0 {
		return false
	}
	return DistanceMeters(p, center) <= radiusMeters
}

// PointInPolygon reports whether the point lies inside the ring using an
// even-odd ray casting test on raw longitude/latitude degrees. No projection
// is applied, which is acceptable for small regions (city-block to few-km
// scale); the boundary test is not metrically accurate for polygons spanning
// multiple degrees of latitude. Open and closed rings are both accepted.
func PointInPolygon(p Point, ring []models.GeoPoint) bool {
	if !p.Finite() {
		return false
	}

	// Drop the explicit closing vertex if present
	if n := len(ring); n > 1 && ring[0] == ring[n-1] {
		ring = ring[:n-1]
	}
	if len(ring) < 3 {
		return false
	}
	for _, v := range ring {
		if !v.Finite() {
			return false
		}
	}

	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		xi, yi := ring[i].Longitude, ring[i].Latitude
		xj, yj := ring[j].Longitude, ring[j].Latitude

		if (yi > p.Latitude) != (yj > p.Latitude) &&
			p.Longitude < (xj-xi)*(p.Latitude-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}

	return inside
}

// Containment dispatches the containment test on the region's geometry kind.
// The region is expected to be pre-validated; anything malformed yields false.
func Containment(p Point, region *models.GeofenceRegion) bool {
	if region == nil {
		return false
	}

	switch region.Kind {
	case models.RegionCircle:
		if region.Circle == nil {
			return false
		}
		center := Point{
			Latitude:  region.Circle.Center.Latitude,
			Longitude: region.Circle.Center.Longitude,
		}
		return PointInCircle(p, center, region.Circle.RadiusMeters)
	case models.RegionPolygon:
		if region.Polygon == nil {
			return false
		}
		return PointInPolygon(p, region.Polygon.Ring)
	default:
		return false
	}
}
