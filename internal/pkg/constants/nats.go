package constants

// NATS Subjects
const (
	// Telemetry ingestion
	SubjectPositionUpdate = "telemetry.position.update"

	// Geofence Service
	SubjectViolationAlert = "geofence.alert.violation"

	// Queue groups
	QueueGeofenceWorkers = "geofence-workers"
	QueueTripsWorkers    = "trips-workers"
)
