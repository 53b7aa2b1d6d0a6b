package update

import (
	"context"
	"time"

	"github.com/checker-network/leaderboard/internal/healthchecksio"
	"github.com/checker-network/leaderboard/internal/models"
	"github.com/checker-network/leaderboard/internal/render"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Builder,Database,ShoutrrrClient,HealthchecksIOClient,Logger

type Builder interface {
	Build(ctx context.Context) (board models.Leaderboard, err error)
}

type Renderer interface {
	Render(document render.Document, board models.Leaderboard) (err error)
	RenderFailure(document render.Document, cause error) (err error)
}

type Page interface {
	render.Document
	State() (state models.PageState)
}

type Database interface {
	Update(board models.Leaderboard, page models.PageState, cycleErr error) (err error)
}

type ShoutrrrClient interface {
	NotifyUnavailable(cause error)
	NotifyRecovered(board models.Leaderboard)
}

type HealthchecksIOClient interface {
	Ping(ctx context.Context, state healthchecksio.State) (err error)
	Report(ctx context.Context, board models.Leaderboard, cycleErr error) (err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}

// Schedule returns the next activation time strictly after t,
// or the zero time if there is none.
type Schedule interface {
	Next(t time.Time) time.Time
}
