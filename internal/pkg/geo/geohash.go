package geo

import (
	"fmt"

	"github.com/mmcloughlin/geohash"
)

// EncodeLocation converts a point to a geohash string
func EncodeLocation(p Point, precision uint) string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, precision)
}

// LocationString renders a human-readable approximate location for alert
// messages: decimal coordinates plus the geohash cell.
func LocationString(p Point, precision uint) string {
	if !p.Finite() {
		return "unknown"
	}
	return fmt.Sprintf("%.6f,%.6f (%s)", p.Latitude, p.Longitude, EncodeLocation(p, precision))
}
