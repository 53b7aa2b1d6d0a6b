package json

import (
	"github.com/checker-network/leaderboard/internal/models"
)

// StoreSnapshot appends the snapshot to the file, removing the
// oldest snapshots beyond the maximum number of snapshots.
func (db *Database) StoreSnapshot(snapshot models.Snapshot) (err error) {
	db.Lock()
	defer db.Unlock()

	db.data.Snapshots = append(db.data.Snapshots, snapshot)
	if db.maxSnapshots > 0 && len(db.data.Snapshots) > db.maxSnapshots {
		excess := len(db.data.Snapshots) - db.maxSnapshots
		db.data.Snapshots = append([]models.Snapshot(nil), db.data.Snapshots[excess:]...)
	}
	return db.write()
}

// GetSnapshots returns at most limit snapshots, from newest to oldest.
// A limit of 0 returns all the snapshots.
func (db *Database) GetSnapshots(limit int) (snapshots []models.Snapshot, err error) {
	db.RLock()
	defer db.RUnlock()

	count := len(db.data.Snapshots)
	if limit > 0 && limit < count {
		count = limit
	}

	snapshots = make([]models.Snapshot, count)
	last := len(db.data.Snapshots) - 1
	for i := range snapshots {
		snapshots[i] = db.data.Snapshots[last-i]
	}
	return snapshots, nil
}
