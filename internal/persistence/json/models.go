package json

import "github.com/checker-network/leaderboard/internal/models"

type dataModel struct {
	Snapshots []snapshot `json:"snapshots"`
}

type snapshot = models.Snapshot
