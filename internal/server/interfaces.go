package server

import (
	"context"
	"time"

	"github.com/checker-network/leaderboard/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Database,UpdateForcer

type Database interface {
	Page() (page models.PageState, cycleTime time.Time)
	Leaderboard() (board models.Leaderboard, cycleErr error)
	History(limit int) (snapshots []models.Snapshot, err error)
}

type UpdateForcer interface {
	ForceUpdate(ctx context.Context) (err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
