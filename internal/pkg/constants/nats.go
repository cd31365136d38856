package constants

// NATS subjects
const (
	// SubjectFixReceived carries a FixReceivedEvent after every
	// successful upsert.
	SubjectFixReceived = "telemetry.fix.received"

	// SubjectNotifyPermission is a request/reply subject answered by
	// the notification facility with a PermissionReply.
	SubjectNotifyPermission = "notify.permission.request"

	// SubjectNotifySchedule is a request/reply subject answered by
	// the notification facility with a RegisterReply.
	SubjectNotifySchedule = "notify.schedule.register"
)
