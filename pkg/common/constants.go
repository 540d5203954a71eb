package common

const (
	// SnapshotKey is the single key holding the latest scan snapshot in the KV store.
	SnapshotKey = "latest_scan"

	HeaderSessionID = "X-Session-ID"

	KVBackendREST  = "rest"
	KVBackendRedis = "redis"
)
