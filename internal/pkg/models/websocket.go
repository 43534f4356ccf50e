package models

import "encoding/json"

// WSMessage represents a WebSocket message pushed to dashboard clients.
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WebSocket event names for the live alert feed.
const (
	WSEventViolationAlert = "violation_alert"
	WSEventError          = "error"
)

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
