// Package sqlitestore provides a durable Store backed by a single-file
// SQLite database, for running the contract off-chain (simulation, local
// services, replay). On-chain deployments use the NEAR trie instead.
package sqlitestore

import (
	"bytes"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func Open(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	// WAL keeps single-writer workloads fast; NORMAL is a reasonable
	// durability/perf tradeoff for a local ledger file.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key BLOB PRIMARY KEY,
		value BLOB NOT NULL
	);`)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(key []byte) []byte {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?;`, key).Scan(&value)
	if err != nil {
		return nil
	}
	return value
}

func (s *SQLiteStore) Set(key []byte, value []byte) {
	if len(key) == 0 {
		return
	}
	if value == nil {
		value = []byte{}
	}
	_, _ = s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`, key, value)
}

func (s *SQLiteStore) Has(key []byte) bool {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM kv WHERE key = ?;`, key).Scan(&one)
	return err == nil
}

func (s *SQLiteStore) Delete(key []byte) {
	_, _ = s.db.Exec(`DELETE FROM kv WHERE key = ?;`, key)
}

func (s *SQLiteStore) IterPrefix(prefix []byte, callback func(key, value []byte) bool) {
	rows, err := s.db.Query(
		`SELECT key, value FROM kv WHERE key >= ? ORDER BY key;`, prefix)
	if err != nil {
		return
	}
	defer rows.Close()

	for rows.Next() {
		var key, value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return
		}
		if !bytes.HasPrefix(key, prefix) {
			return
		}
		if !callback(key, value) {
			return
		}
	}
}
