package errors

const (
	PersistenceReadCorruptErrorCode = 400_001
	PersistenceWriteFailedErrorCode = 400_002
)

// PersistenceReadCorruptError indicates stored catalog data cannot be read or decoded
var PersistenceReadCorruptError = new(PersistenceReadCorruptErrorCode, "PersistenceReadCorrupt", "stored catalog data is corrupt: %s")

// PersistenceWriteFailedError indicates catalog could not be saved. In-memory data is kept.
var PersistenceWriteFailedError = new(PersistenceWriteFailedErrorCode, "PersistenceWriteFailed", "saving catalog failed: %s")
