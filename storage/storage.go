package storage

// Store is the string-keyed persistence contract consumed by every record
// store. Implementations must treat a missing key as (value="", ok=false)
// rather than an error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
	RemoveMany(keys []string) error
}
