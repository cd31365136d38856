package models

import "time"

// FreshnessState is the derived online/offline view of one monitored
// route. It is recomputed on every poll tick and never persisted.
// IsStale starts true: a route is assumed offline until a fix proves
// otherwise.
type FreshnessState struct {
	RouteID    string       `json:"route_id"`
	DeviceID   string       `json:"device_id"`
	Position   *LocationFix `json:"position,omitempty"`
	IsStale    bool         `json:"is_stale"`
	LastUpdate *time.Time   `json:"last_update,omitempty"`
}
