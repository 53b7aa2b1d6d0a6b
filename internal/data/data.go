package data

import (
	"context"
	"sync"
	"time"

	"github.com/checker-network/leaderboard/internal/models"
)

// Database holds the outcome of the last cycle in memory and
// writes a snapshot of each cycle to the persistent database.
type Database struct {
	board     models.Leaderboard
	page      models.PageState
	cycleErr  error
	cycleTime time.Time
	sync.RWMutex
	persistentDB PersistentDatabase
}

// NewDatabase creates a new in memory database, with the page
// state shown before the first cycle completes.
func NewDatabase(initialPage models.PageState, persistentDB PersistentDatabase) *Database {
	return &Database{
		page:         initialPage,
		persistentDB: persistentDB,
	}
}

func (db *Database) String() string {
	return "database"
}

func (db *Database) Start(_ context.Context) (_ <-chan error, err error) {
	return nil, nil //nolint:nilnil
}

func (db *Database) Stop() (err error) {
	db.Lock() // ensure write operation finishes
	defer db.Unlock()
	return db.persistentDB.Close()
}
