package storage

import (
	"database/sql"
)

// SQLStore keeps key/value pairs in a single kv table. REPLACE INTO is
// understood by both supported drivers (sqlite3 and mysql), so the same
// statements work against either backend.
type SQLStore struct {
	DB *sql.DB
}

const createKVTable = `
	CREATE TABLE IF NOT EXISTS kv (
		k VARCHAR(191) PRIMARY KEY,
		v TEXT NOT NULL
	)
`

// NewSQLStore creates the kv table if needed and returns the store.
func NewSQLStore(db *sql.DB) (*SQLStore, error) {
	if _, err := db.Exec(createKVTable); err != nil {
		return nil, err
	}
	return &SQLStore{DB: db}, nil
}

// Get returns the value stored under key, with ok=false on a missing key.
func (s *SQLStore) Get(key string) (string, bool, error) {
	var value string
	err := s.DB.QueryRow("SELECT v FROM kv WHERE k = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set writes value under key, overwriting any previous value.
func (s *SQLStore) Set(key, value string) error {
	_, err := s.DB.Exec("REPLACE INTO kv (k, v) VALUES (?, ?)", key, value)
	return err
}

// Remove deletes the key. Removing a missing key is a no-op.
func (s *SQLStore) Remove(key string) error {
	_, err := s.DB.Exec("DELETE FROM kv WHERE k = ?", key)
	return err
}

// RemoveMany deletes every key in keys.
func (s *SQLStore) RemoveMany(keys []string) error {
	for _, key := range keys {
		if err := s.Remove(key); err != nil {
			return err
		}
	}
	return nil
}
