package db

import (
	"database/sql"

	"shortlink/shortlink/internal/config"
)

const schema = `
	CREATE TABLE IF NOT EXISTS short_links (
		id VARCHAR(36) PRIMARY KEY,
		code VARCHAR(10) UNIQUE NOT NULL,
		original_url TEXT UNIQUE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		expires_at TIMESTAMPTZ,
		click_count BIGINT NOT NULL DEFAULT 0
	)`

func Open(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the short_links table if it does not exist. Safe to run on
// every startup.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
