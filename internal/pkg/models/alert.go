package models

// AlertRequest asks for a recurring arrival alert at a stop.
type AlertRequest struct {
	RouteID     string `json:"route_id"`
	StopNumber  int    `json:"stop_number"`
	LeadMinutes int    `json:"lead_minutes"`
}

// RecurringTrigger is a daily-repeating alert registered with the
// notification facility, keyed by local hour and minute.
type RecurringTrigger struct {
	ID      string `json:"id"`
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
	Message string `json:"message"`
}

// PermissionReply is the facility's answer to a permission request.
type PermissionReply struct {
	Granted bool   `json:"granted"`
	Reason  string `json:"reason,omitempty"`
}

// RegisterReply is the facility's answer to a trigger registration.
type RegisterReply struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}
