package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/checker-network/leaderboard/internal/data"
	"github.com/checker-network/leaderboard/internal/healthchecksio"
	"github.com/checker-network/leaderboard/internal/leaderboard"
	"github.com/checker-network/leaderboard/internal/models"
	"github.com/checker-network/leaderboard/internal/persistence/json"
	"github.com/checker-network/leaderboard/internal/render"
	"github.com/checker-network/leaderboard/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(string) {}
func (noopLogger) Info(string)  {}
func (noopLogger) Warn(string)  {}
func (noopLogger) Error(string) {}

type noopNotifier struct{}

func (noopNotifier) NotifyUnavailable(error)                  {}
func (noopNotifier) NotifyRecovered(models.Leaderboard) {}

func newStatsServer(t *testing.T, bodies map[string]string) (
	server *httptest.Server, requested func() []string) {
	t.Helper()

	var mutex sync.Mutex
	var paths []string
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mutex.Lock()
		paths = append(paths, r.URL.Path)
		mutex.Unlock()

		networkID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"),
			"/retrieval-success-rate")
		body, ok := bodies[networkID]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	requested = func() []string {
		mutex.Lock()
		defer mutex.Unlock()
		return append([]string(nil), paths...)
	}
	return server, requested
}

func newPipelineService(t *testing.T, serverURL string) (
	service *Service, page *render.Page, db *data.Database) {
	t.Helper()

	networks := []models.Network{
		{ID: "arweave", Symbol: "AR"},
		{ID: "filecoin", Symbol: "FIL"},
		{ID: "walrus", Symbol: "WAL"},
	}
	timeNow := func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }
	resolver := stats.NewURLResolver(serverURL, nil)
	client := stats.New(&http.Client{}, resolver, 7, noopLogger{}, timeNow)
	builder := leaderboard.NewBuilder(client, networks, noopLogger{}, timeNow)

	jsonDB, err := json.NewDatabase(t.TempDir(), json.DefaultMaxSnapshots)
	require.NoError(t, err)
	page = render.NewPage()
	db = data.NewDatabase(page.State(), jsonDB)

	renderer := render.New(render.Settings{Style: render.StyleRing, Decimals: 2})
	hioClient := healthchecksio.New(&http.Client{}, "", "")
	service = NewService(builder, renderer, page, db, noopNotifier{},
		hioClient, nil, noopLogger{}, timeNow)
	return service, page, db
}

func Test_Service_pipeline_partialFailure(t *testing.T) {
	t.Parallel()

	server, requested := newStatsServer(t, map[string]string{
		"arweave":  `[{"day":"2024-03-10","total":"10","successful":"3"}]`,
		"filecoin": `[{"day":"2024-03-10","total":"5","successful":"4"}]`,
	})
	service, page, db := newPipelineService(t, server.URL)

	err := service.cycle(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"/arweave/retrieval-success-rate",
		"/filecoin/retrieval-success-rate",
		"/walrus/retrieval-success-rate",
	}, requested())

	state := page.State()
	assert.True(t, state.Loading.Hidden)
	assert.True(t, state.Error.Hidden)
	assert.False(t, state.Networks.Hidden)

	content := string(state.Networks.Content)
	filecoinIndex := strings.Index(content, `<span class="network-name">filecoin</span>`)
	arweaveIndex := strings.Index(content, `<span class="network-name">arweave</span>`)
	require.NotEqual(t, -1, filecoinIndex)
	require.NotEqual(t, -1, arweaveIndex)
	assert.Less(t, filecoinIndex, arweaveIndex)
	assert.NotContains(t, content, "walrus")
	assert.Contains(t, content, "80.00%")
	assert.Contains(t, content, "30.00%")

	board, cycleErr := db.Leaderboard()
	require.NoError(t, cycleErr)
	require.Len(t, board.Entries, 2)
	assert.Equal(t, "filecoin", board.Entries[0].Result.Network.ID)
	assert.Equal(t, []models.Network{{ID: "walrus", Symbol: "WAL"}}, board.Unavailable)

	history, err := db.History(0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.False(t, history[0].Failed)
	assert.Len(t, history[0].Rates, 2)
}

func Test_Service_pipeline_allFailed(t *testing.T) {
	t.Parallel()

	server, requested := newStatsServer(t, nil)
	service, page, db := newPipelineService(t, server.URL)

	err := service.cycle(context.Background())
	assert.ErrorIs(t, err, leaderboard.ErrNoNetworkData)
	assert.Len(t, requested(), 3)

	state := page.State()
	assert.True(t, state.Loading.Hidden)
	assert.False(t, state.Error.Hidden)
	assert.Contains(t, string(state.Error.Content), "Failed to load network data.")
	assert.True(t, state.Networks.Hidden)
	assert.Empty(t, state.Networks.Content)

	history, err := db.History(0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].Failed)
	assert.Empty(t, history[0].Rates)
}
