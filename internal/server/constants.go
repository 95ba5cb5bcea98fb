package server

// APIKeyHeader is the header carrying the configured API key
const APIKeyHeader = "X-API-Key"

// Log messages
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgUnauthorized     = "Rejected request with missing or bad API key"
)
