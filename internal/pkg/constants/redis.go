package constants

// Redis key formats
const (
	// Geofence Service
	KeyRegion            = "geofence:region:%s"     // Format: geofence:region:{region_id}
	KeyVehicleAssignment = "vehicle:assignment:%s"  // Format: vehicle:assignment:{vehicle_key}
	KeyVehicleLocation   = "vehicle:location:%s"    // Format: vehicle:location:{vehicle_key}
	KeyVehicleGeo        = "vehicles:geo"           // GeoHash set of latest vehicle positions
)

// Redis hash fields
const (
	FieldLatitude    = "lat"
	FieldLongitude   = "lng"
	FieldSpeed       = "speed"
	FieldTimestamp   = "ts"
	FieldRegionID    = "region_id"
	FieldVehicleName = "vehicle_name"
	FieldName        = "name"
	FieldKind        = "kind"
	FieldRule        = "rule"
	FieldStatus      = "status"
	FieldGeometry    = "geometry"
)
