package models

import "time"

// LocationFix is the latest reported position of a tracked device.
// FixTime is whatever instant the device reported and is stored
// opaquely; ReceivedAt is assigned by the gateway at persistence time
// and is the only clock used for freshness decisions.
type LocationFix struct {
	DeviceID   string    `json:"device_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	FixTime    int64     `json:"fix_time"`
	ReceivedAt time.Time `json:"received_at"`
}

// FixReceivedEvent is published to NATS after a fix is stored.
type FixReceivedEvent struct {
	DeviceID   string    `json:"device_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	FixTime    int64     `json:"fix_time"`
	ReceivedAt time.Time `json:"received_at"`
}
