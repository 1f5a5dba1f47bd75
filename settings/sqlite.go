package settings

import (
	"bytes"
	"database/sql"
	"io"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`

// SQLiteStore persists settings records in a sqlite database, one row
// per key.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens the database at path, creating it and the schema
// as needed. The handle is limited to one connection; the dispatcher
// serializes requests anyway.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open settings database")
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to apply settings schema")
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return errors.Wrapf(err, "failed to save %s", key)
}

func (s *SQLiteStore) Enumerate(prefix string, fn func(key string, r io.Reader) error) error {
	// substr instead of LIKE: prefixes contain '_', which LIKE treats
	// as a wildcard.
	rows, err := s.db.Query(
		`SELECT key, value FROM settings WHERE substr(key, 1, length(?)) = ?`,
		prefix, prefix)
	if err != nil {
		return errors.Wrap(err, "failed to enumerate settings")
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return errors.Wrap(err, "failed to scan settings row")
		}
		if err := fn(key, bytes.NewReader(value)); err != nil {
			return err
		}
	}
	return errors.Wrap(rows.Err(), "failed to enumerate settings")
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
