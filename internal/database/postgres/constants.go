package postgres

// kv_store table and columns
const (
	tableKVStore   = "kv_store"
	colKey         = "key"
	colValue       = "value"
	colUpdatedAt   = "updated_at"
	upsertKVSuffix = "ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at"
)

// Error message formats
const (
	ErrMsgBuildQuery = "failed to build query: %w"
	ErrMsgGetKey     = "failed to get key %s: %w"
	ErrMsgUpsertKey  = "failed to upsert key %s: %w"
	ErrMsgDeleteKeys = "failed to delete keys: %w"
	ErrMsgTxFailed   = "kv transaction failed: %w"
	ErrMsgPingFailed = "failed to ping database: %w"
)
