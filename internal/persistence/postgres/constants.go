package postgres

const defaultSaveID = "default"

// Error messages
const (
	ErrMsgPingFailed    = "failed to ping database"
	ErrMsgMigrateFailed = "failed to run migrations"
	ErrMsgSaveFailed    = "failed to write game save"
	ErrMsgLoadFailed    = "failed to read game save"
)
