package leaderboard

import (
	"context"

	"github.com/checker-network/leaderboard/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Fetcher,Logger

type Fetcher interface {
	Fetch(ctx context.Context, network models.Network) (result models.NetworkResult, err error)
}

type Logger interface {
	Debug(s string)
	Warn(s string)
}
