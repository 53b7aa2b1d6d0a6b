package data

import "github.com/checker-network/leaderboard/internal/models"

type PersistentDatabase interface {
	Close() error
	StoreSnapshot(snapshot models.Snapshot) (err error)
	GetSnapshots(limit int) (snapshots []models.Snapshot, err error)
	Check() error
}
