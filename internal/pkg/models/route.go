package models

// Route is an ordered sequence of stops served by at most one vehicle.
// A route without a device ID has no live position and is never polled.
type Route struct {
	ID       string `json:"id" db:"id"`
	SchoolID string `json:"school_id" db:"school_id"`
	Name     string `json:"name" db:"name"`
	DeviceID string `json:"device_id,omitempty" db:"device_id"`
	Stops    []Stop `json:"stops"`
}

// Stop is a scheduled stop on a route. Time is local wall clock in
// HH:MM with no date or timezone component.
type Stop struct {
	RouteID    string  `json:"route_id" db:"route_id"`
	StopNumber int     `json:"stop_number" db:"stop_number"`
	Location   string  `json:"location" db:"location"`
	Latitude   float64 `json:"latitude" db:"latitude"`
	Longitude  float64 `json:"longitude" db:"longitude"`
	Time       string  `json:"time" db:"scheduled_time"`
}

// NearestStopResult pairs a stop with its distance from a query point.
type NearestStopResult struct {
	Stop       Stop    `json:"stop"`
	RouteID    string  `json:"route_id"`
	DistanceKm float64 `json:"distance_km"`
}
