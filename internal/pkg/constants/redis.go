package constants

// Redis key patterns
const (
	// KeyDeviceFix holds the latest fix for one device as a hash.
	KeyDeviceFix = "telemetry:fix:%s"
)

// Redis hash field names
const (
	FieldDeviceID   = "device_id"
	FieldLatitude   = "latitude"
	FieldLongitude  = "longitude"
	FieldFixTime    = "fixtime"
	FieldReceivedAt = "received_at"
)
