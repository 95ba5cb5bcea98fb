package persistence

// Log messages
const (
	LogMsgSnapshotSaved    = "Snapshot saved"
	LogMsgSnapshotLoaded   = "Snapshot loaded"
	LogMsgNoSaveFound      = "No save found, starting fresh"
	LogMsgSnapshotRejected = "Snapshot rejected, falling back to starter state"
)

// Error messages
const (
	ErrMsgSerializeFailed   = "failed to serialize snapshot"
	ErrMsgDeserializeFailed = "failed to deserialize snapshot"
	ErrMsgSaveFailed        = "failed to save snapshot"
	ErrMsgLoadFailed        = "failed to load snapshot"
)
