package update

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/checker-network/leaderboard/internal/healthchecksio"
	"github.com/checker-network/leaderboard/internal/models"
	"github.com/checker-network/leaderboard/internal/render"
)

type cycleState struct {
	ran    bool
	failed bool
}

// cycle builds the leaderboard, renders it to the page and records
// the outcome. A page missing one of its elements aborts the cycle.
func (s *Service) cycle(ctx context.Context) (err error) {
	s.pingHealthchecksio(ctx, healthchecksio.Start)

	board, buildErr := s.builder.Build(ctx)
	if buildErr != nil && ctx.Err() != nil {
		s.logger.Warn("cycle canceled: " + ctx.Err().Error())
		return fmt.Errorf("cycle canceled: %w", ctx.Err())
	}

	if buildErr != nil {
		err = s.renderer.RenderFailure(s.page, buildErr)
	} else {
		err = s.renderer.Render(s.page, board)
	}
	if err != nil {
		err = fmt.Errorf("rendering leaderboard: %w", err)
		s.logger.Error(err.Error())
		return err
	}

	if buildErr != nil {
		s.logger.Error(buildErr.Error())
	} else {
		s.logger.Info(summary(board))
	}

	err = s.db.Update(board, s.page.State(), buildErr)
	if err != nil {
		err = fmt.Errorf("updating database: %w", err)
		s.logger.Error(err.Error())
	}

	s.notifyTransition(board, buildErr)
	reportErr := s.hioClient.Report(ctx, board, buildErr)
	if reportErr != nil {
		s.logger.Error("reporting to healthchecks.io failed: " + reportErr.Error())
	}

	if buildErr != nil {
		return buildErr
	}
	return err
}

func (s *Service) notifyTransition(board models.Leaderboard, buildErr error) {
	failed := buildErr != nil
	switch {
	case failed && (!s.state.ran || !s.state.failed):
		s.notifier.NotifyUnavailable(buildErr)
	case !failed && s.state.ran && s.state.failed:
		s.notifier.NotifyRecovered(board)
	}
	s.state = cycleState{ran: true, failed: failed}
}

func (s *Service) pingHealthchecksio(ctx context.Context, state healthchecksio.State) {
	err := s.hioClient.Ping(ctx, state)
	if err != nil {
		s.logger.Error("pinging healthchecks.io failed: " + err.Error())
	}
}

func summary(board models.Leaderboard) string {
	const decimals = 2
	rates := make([]string, len(board.Entries))
	for i, entry := range board.Entries {
		rates[i] = entry.Result.Network.ID + " " +
			render.FormatRate(entry.Result.SuccessRate, decimals)
	}
	s := "ranked " + plural(len(board.Entries), "network") + ": " + strings.Join(rates, ", ")

	if len(board.Unavailable) > 0 {
		unavailable := make([]string, len(board.Unavailable))
		for i, network := range board.Unavailable {
			unavailable[i] = network.ID
		}
		s += "; unavailable: " + strings.Join(unavailable, ", ")
	}
	return s
}

func plural(count int, singular string) string {
	s := strconv.Itoa(count) + " " + singular
	if count != 1 {
		s += "s"
	}
	return s
}
