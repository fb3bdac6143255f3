package store

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

func NewDB(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("state database path is required")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return errors.Wrap(err, "unable to create kv table")
	}
	return nil
}
