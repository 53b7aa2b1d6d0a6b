// Package leaderboard fetches the success rate of every configured
// network concurrently and ranks the networks which responded.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/checker-network/leaderboard/internal/models"
	"github.com/google/uuid"
)

var ErrNoNetworkData = errors.New("no network data available")

type Builder struct {
	fetcher  Fetcher
	networks []models.Network
	logger   Logger
	timeNow  func() time.Time
}

func NewBuilder(fetcher Fetcher, networks []models.Network,
	logger Logger, timeNow func() time.Time) *Builder {
	return &Builder{
		fetcher:  fetcher,
		networks: networks,
		logger:   logger,
		timeNow:  timeNow,
	}
}

func (b *Builder) Networks() []models.Network {
	return b.networks
}

// Build fetches all the networks concurrently and waits for all of them
// to finish. Networks failing to be fetched are logged and reported as
// unavailable, and the others are ranked by decreasing success rate,
// keeping the configuration order for equal rates.
// If no network could be fetched, it returns an error wrapping
// ErrNoNetworkData together with the partial leaderboard.
func (b *Builder) Build(ctx context.Context) (board models.Leaderboard, err error) {
	results := make([]models.NetworkResult, len(b.networks))
	errs := make([]error, len(b.networks))

	var wg sync.WaitGroup
	wg.Add(len(b.networks))
	for i, network := range b.networks {
		go func(i int, network models.Network) {
			defer wg.Done()
			results[i], errs[i] = b.fetcher.Fetch(ctx, network)
		}(i, network)
	}
	wg.Wait()

	board = models.Leaderboard{
		ID:   uuid.NewString(),
		Time: b.timeNow(),
	}

	available := make([]models.NetworkResult, 0, len(results))
	for i, network := range b.networks {
		if errs[i] != nil {
			b.logger.Warn("network " + network.ID + " is unavailable: " + errs[i].Error())
			board.Unavailable = append(board.Unavailable, network)
			continue
		}
		available = append(available, results[i])
	}

	if len(available) == 0 {
		return board, fmt.Errorf("%w: %d of %d networks failed",
			ErrNoNetworkData, len(board.Unavailable), len(b.networks))
	}

	sort.SliceStable(available, func(i, j int) bool {
		return available[i].SuccessRate > available[j].SuccessRate
	})

	board.Entries = make([]models.Entry, len(available))
	for i, result := range available {
		board.Entries[i] = models.Entry{
			Rank:   i + 1,
			Result: result,
		}
	}

	b.logger.Debug("ranked " + strconv.Itoa(len(available)) + " of " +
		strconv.Itoa(len(b.networks)) + " networks")

	return board, nil
}
