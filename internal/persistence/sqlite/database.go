package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // registers the sqlite driver
)

const fileName = "snapshots.db"

type Database struct {
	sqlite *sql.DB
	sync.Mutex
}

func (db *Database) Close() error {
	db.Lock()
	defer db.Unlock()
	return db.sqlite.Close()
}

// NewDatabase opens or creates the SQLite database in dataDir.
func NewDatabase(dataDir string) (*Database, error) {
	const perm = 0o700
	err := os.MkdirAll(dataDir, perm)
	if err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(dataDir, fileName)
	sqlite, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// Access to SQLite is serialized through the mutex
	sqlite.SetMaxOpenConns(1)

	_, err = sqlite.Exec(`
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		time_ns INTEGER NOT NULL,
		failed INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_snapshots_time ON snapshots(time_ns);
	CREATE TABLE IF NOT EXISTS rates (
		snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
		network TEXT NOT NULL,
		rank INTEGER NOT NULL,
		success_rate REAL NOT NULL,
		PRIMARY KEY(snapshot_id, network)
	);`)
	if err != nil {
		_ = sqlite.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Database{sqlite: sqlite}, nil
}

// Check verifies the database can be queried.
func (db *Database) Check() error {
	db.Lock()
	defer db.Unlock()
	return db.sqlite.Ping()
}
