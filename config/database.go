package config

import (
	"database/sql"
	"log"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/khavyaindhu/farmersupportapp/storage"
)

// OpenStore opens the key-value store behind the configured driver. The
// sqlite3 driver is the on-device default; mysql serves shared deployments.
func OpenStore(cfg Config) (*storage.SQLStore, error) {
	db, err := sql.Open(cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return storage.NewSQLStore(db)
}

// MustOpenStore opens the store or exits.
func MustOpenStore(cfg Config) *storage.SQLStore {
	store, err := OpenStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open store (%s): %v", cfg.StoreDriver, err)
	}
	log.Printf("Store ready (%s)", cfg.StoreDriver)
	return store
}
