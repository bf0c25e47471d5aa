package ports

// BuildInfoCachePort is a write-once file cache for build-dependency
// reports.  Entries are never invalidated automatically; Remove and
// Clear are the manual eviction paths.
type BuildInfoCachePort interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, data []byte) error
	Remove(key string) error
	Clear() error
}
