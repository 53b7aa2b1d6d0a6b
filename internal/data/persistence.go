package data

import (
	"fmt"

	"github.com/checker-network/leaderboard/internal/models"
)

// Update records the outcome of a cycle, in memory and as a snapshot
// in the persistent database. A non nil cycleErr marks the cycle as failed.
func (db *Database) Update(board models.Leaderboard, page models.PageState,
	cycleErr error) (err error) {
	db.Lock()
	defer db.Unlock()

	db.board = board
	db.page = page
	db.cycleErr = cycleErr
	db.cycleTime = board.Time

	snapshot := board.Snapshot()
	if cycleErr != nil {
		snapshot.Failed = true
		snapshot.Rates = nil
	}

	err = db.persistentDB.StoreSnapshot(snapshot)
	if err != nil {
		return fmt.Errorf("storing snapshot: %w", err)
	}
	return nil
}

// History returns at most limit snapshots from newest to oldest.
func (db *Database) History(limit int) (snapshots []models.Snapshot, err error) {
	return db.persistentDB.GetSnapshots(limit)
}

// Check verifies the persistent database is usable.
func (db *Database) Check() error {
	return db.persistentDB.Check()
}
