package store

// Error message formats
const (
	ErrMsgReadFileFailed  = "failed to read store file: %w"
	ErrMsgWriteFileFailed = "failed to write store file: %w"
	ErrMsgRedisGetFailed  = "failed to get key %s from redis: %w"
	ErrMsgRedisSetFailed  = "failed to write keys to redis: %w"
	ErrMsgRedisDelFailed  = "failed to delete keys from redis: %w"
	ErrMsgRedisPingFailed = "failed to ping redis: %w"
	ErrMsgStoreClosed     = "store is closed"
)

// Cache defaults
const (
	// CacheSchemaVersion invalidates cached entries when the value format changes
	CacheSchemaVersion = "1.0"
)
