package update

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/checker-network/leaderboard/internal/healthchecksio"
	"github.com/checker-network/leaderboard/internal/models"
	"github.com/checker-network/leaderboard/internal/render"
	"github.com/checker-network/leaderboard/internal/update/mock_update"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestBoard() models.Leaderboard {
	return models.Leaderboard{
		ID:   "id",
		Time: time.Unix(1, 0).UTC(),
		Entries: []models.Entry{{
			Rank: 1,
			Result: models.NetworkResult{
				Network:     models.Network{ID: "walrus", Symbol: "WAL"},
				SuccessRate: 50,
			},
		}},
		Unavailable: []models.Network{{ID: "arweave", Symbol: "AR"}},
	}
}

type cycleMocks struct {
	builder   *mock_update.MockBuilder
	db        *mock_update.MockDatabase
	notifier  *mock_update.MockShoutrrrClient
	hioClient *mock_update.MockHealthchecksIOClient
	logger    *mock_update.MockLogger
}

func newCycleService(ctrl *gomock.Controller, page Page) (*Service, cycleMocks) {
	mocks := cycleMocks{
		builder:   mock_update.NewMockBuilder(ctrl),
		db:        mock_update.NewMockDatabase(ctrl),
		notifier:  mock_update.NewMockShoutrrrClient(ctrl),
		hioClient: mock_update.NewMockHealthchecksIOClient(ctrl),
		logger:    mock_update.NewMockLogger(ctrl),
	}
	renderer := render.New(render.Settings{Style: render.StyleBadge, Decimals: 2})
	service := NewService(mocks.builder, renderer, page, mocks.db, mocks.notifier,
		mocks.hioClient, nil, mocks.logger, time.Now)
	return service, mocks
}

func Test_Service_cycle_success(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	page := render.NewPage()
	service, mocks := newCycleService(ctrl, page)
	ctx := context.Background()
	board := makeTestBoard()

	gomock.InOrder(
		mocks.hioClient.EXPECT().Ping(ctx, healthchecksio.Start).Return(nil),
		mocks.builder.EXPECT().Build(ctx).Return(board, nil),
		mocks.logger.EXPECT().Info("ranked 1 network: walrus 50.00%; unavailable: arweave"),
		mocks.db.EXPECT().Update(board, gomock.Any(), nil).
			DoAndReturn(func(_ models.Leaderboard, state models.PageState, _ error) error {
				assert.True(t, state.Loading.Hidden)
				assert.True(t, state.Error.Hidden)
				assert.False(t, state.Networks.Hidden)
				assert.Contains(t, string(state.Networks.Content), `<span class="network-name">walrus</span>`)
				return nil
			}),
		mocks.hioClient.EXPECT().Report(ctx, board, nil).Return(nil),
	)

	err := service.cycle(ctx)

	require.NoError(t, err)
	assert.Equal(t, cycleState{ran: true}, service.state)
}

func Test_Service_cycle_failureAndRecovery(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	page := render.NewPage()
	service, mocks := newCycleService(ctrl, page)
	ctx := context.Background()
	errNoData := errors.New("no network data available")
	failedBoard := models.Leaderboard{ID: "failed", Time: time.Unix(1, 0)}
	board := makeTestBoard()

	gomock.InOrder(
		// first failure notifies
		mocks.hioClient.EXPECT().Ping(ctx, healthchecksio.Start).Return(nil),
		mocks.builder.EXPECT().Build(ctx).Return(failedBoard, errNoData),
		mocks.logger.EXPECT().Error("no network data available"),
		mocks.db.EXPECT().Update(failedBoard, gomock.Any(), errNoData).
			DoAndReturn(func(_ models.Leaderboard, state models.PageState, _ error) error {
				assert.False(t, state.Error.Hidden)
				assert.True(t, state.Networks.Hidden)
				assert.Empty(t, state.Networks.Content)
				return nil
			}),
		mocks.notifier.EXPECT().NotifyUnavailable(errNoData),
		mocks.hioClient.EXPECT().Report(ctx, failedBoard, errNoData).Return(nil),
		// second failure does not notify again
		mocks.hioClient.EXPECT().Ping(ctx, healthchecksio.Start).Return(nil),
		mocks.builder.EXPECT().Build(ctx).Return(failedBoard, errNoData),
		mocks.logger.EXPECT().Error("no network data available"),
		mocks.db.EXPECT().Update(failedBoard, gomock.Any(), errNoData).Return(nil),
		mocks.hioClient.EXPECT().Report(ctx, failedBoard, errNoData).
			Return(errors.New("report error")),
		mocks.logger.EXPECT().Error("reporting to healthchecks.io failed: report error"),
		// recovery notifies
		mocks.hioClient.EXPECT().Ping(ctx, healthchecksio.Start).Return(nil),
		mocks.builder.EXPECT().Build(ctx).Return(board, nil),
		mocks.logger.EXPECT().Info("ranked 1 network: walrus 50.00%; unavailable: arweave"),
		mocks.db.EXPECT().Update(board, gomock.Any(), nil).Return(nil),
		mocks.notifier.EXPECT().NotifyRecovered(board),
		mocks.hioClient.EXPECT().Report(ctx, board, nil).Return(nil),
	)

	err := service.cycle(ctx)
	assert.ErrorIs(t, err, errNoData)
	err = service.cycle(ctx)
	assert.ErrorIs(t, err, errNoData)
	err = service.cycle(ctx)
	assert.NoError(t, err)

	state := page.State()
	assert.True(t, state.Error.Hidden)
	assert.False(t, state.Networks.Hidden)
}

func Test_Service_cycle_missingElement(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	page := render.NewPage(render.LoadingID)
	service, mocks := newCycleService(ctrl, page)
	ctx := context.Background()

	mocks.hioClient.EXPECT().Ping(ctx, healthchecksio.Start).Return(nil)
	mocks.builder.EXPECT().Build(ctx).Return(makeTestBoard(), nil)
	mocks.logger.EXPECT().Error("rendering leaderboard: element not found: error, networks")

	err := service.cycle(ctx)

	assert.ErrorIs(t, err, render.ErrElementNotFound)
	assert.Equal(t, cycleState{}, service.state)
}

func Test_Service_cycle_databaseError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	service, mocks := newCycleService(ctrl, render.NewPage())
	ctx := context.Background()
	board := makeTestBoard()
	errDatabase := errors.New("disk full")

	mocks.hioClient.EXPECT().Ping(ctx, healthchecksio.Start).Return(nil)
	mocks.builder.EXPECT().Build(ctx).Return(board, nil)
	mocks.logger.EXPECT().Info(gomock.Any())
	mocks.db.EXPECT().Update(board, gomock.Any(), nil).Return(errDatabase)
	mocks.logger.EXPECT().Error("updating database: disk full")
	mocks.hioClient.EXPECT().Report(ctx, board, nil).Return(nil)

	err := service.cycle(ctx)

	assert.ErrorIs(t, err, errDatabase)
}

func Test_Service_cycle_canceled(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	service, mocks := newCycleService(ctrl, render.NewPage())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mocks.hioClient.EXPECT().Ping(ctx, healthchecksio.Start).Return(errors.New("ping canceled"))
	mocks.logger.EXPECT().Error("pinging healthchecks.io failed: ping canceled")
	mocks.builder.EXPECT().Build(ctx).Return(models.Leaderboard{}, context.Canceled)
	mocks.logger.EXPECT().Warn("cycle canceled: context canceled")

	err := service.cycle(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
