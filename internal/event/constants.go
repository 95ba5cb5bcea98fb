package event

// EventSchemaVersion is the current version of the event envelope
const EventSchemaVersion = "1.0"

// Log/error format strings
const (
	LogMsgHandlerErrorFormat = "%d handler(s) failed for event %s: %v"
)
