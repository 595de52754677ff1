package store

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("key not found")

// KV is the external key-value byte store backing every persisted
// collection. Each Put replaces one key in a single statement, which is
// the only atomicity the rest of the system relies on: a read-modify-write
// sequence around it is NOT isolated across writers.
type KV struct {
	db *sqlx.DB
}

func OpenKV(dsn string) (*KV, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	schema := `
CREATE TABLE IF NOT EXISTS kv(
  key TEXT PRIMARY KEY,
  value BLOB NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &KV{db: db}, nil
}

func (k *KV) Get(key string) ([]byte, error) {
	var value []byte
	err := k.db.Get(&value, `SELECT value FROM kv WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put overwrites the full value under key. Single-key, single-statement.
func (k *KV) Put(key string, value []byte) error {
	_, err := k.db.Exec(`
		INSERT INTO kv(key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}

func (k *KV) Close() error { return k.db.Close() }
