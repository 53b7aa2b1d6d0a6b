package render

import (
	"errors"
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/checker-network/leaderboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBoard(t time.Time, rates map[string]float64, order ...string) models.Leaderboard {
	board := models.Leaderboard{ID: "id", Time: t}
	for i, id := range order {
		board.Entries = append(board.Entries, models.Entry{
			Rank: i + 1,
			Result: models.NetworkResult{
				Network:     models.Network{ID: id, Symbol: strings.ToUpper(id[:2])},
				SuccessRate: rates[id],
			},
		})
	}
	return board
}

func Test_Renderer_Fragment(t *testing.T) {
	t.Parallel()

	boardTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	board := models.Leaderboard{
		Time: boardTime,
		Entries: []models.Entry{{
			Rank: 1,
			Result: models.NetworkResult{
				Network:     models.Network{ID: "filecoin", Symbol: "FIL"},
				SuccessRate: 95.6,
			},
		}},
	}

	testCases := map[string]struct {
		settings Settings
		fragment template.HTML
	}{
		"badge": {
			settings: Settings{Style: StyleBadge, Decimals: 2},
			fragment: `<div class="leaderboard" data-time="2024-01-01T00:00:00Z">` +
				`<div class="network-item high" data-rank="1">` +
				`<span class="network-rank">#1</span>` +
				`<span class="network-name">filecoin</span>` +
				`<span class="network-symbol">FIL</span>` +
				`<span class="success-rate badge high">95.60%</span>` +
				`</div></div>`,
		},
		"ring": {
			settings: Settings{Style: StyleRing, Decimals: 1},
			fragment: `<div class="leaderboard" data-time="2024-01-01T00:00:00Z">` +
				`<div class="network-item high" data-rank="1">` +
				`<span class="network-rank">#1</span>` +
				`<span class="network-name">filecoin</span>` +
				`<span class="network-symbol">FIL</span>` +
				`<div class="progress-ring high" ` +
				`style="background: conic-gradient(var(--high) 95.60%, var(--track) 0)">` +
				`<span class="success-rate">95.6%</span></div>` +
				`</div></div>`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			renderer := New(testCase.settings)

			assert.Equal(t, testCase.fragment, renderer.Fragment(board))
		})
	}
}

func Test_Renderer_Fragment_escapes(t *testing.T) {
	t.Parallel()

	board := models.Leaderboard{
		Entries: []models.Entry{{
			Rank: 1,
			Result: models.NetworkResult{
				Network: models.Network{ID: "<b>net</b>", Symbol: `"S"`},
			},
		}},
	}
	renderer := New(Settings{Style: StyleBadge})

	fragment := string(renderer.Fragment(board))

	assert.Contains(t, fragment, `<span class="network-name">&lt;b&gt;net&lt;/b&gt;</span>`)
	assert.Contains(t, fragment, `<span class="network-symbol">&#34;S&#34;</span>`)
	assert.Contains(t, fragment, `<span class="success-rate badge low">0%</span>`)
}

func Test_Renderer_Render_replace(t *testing.T) {
	t.Parallel()

	renderer := New(Settings{Style: StyleBadge, Mode: ModeReplace, Decimals: 2})
	page := NewPage()

	initial := page.State()
	assert.False(t, initial.Loading.Hidden)
	assert.True(t, initial.Error.Hidden)
	assert.True(t, initial.Networks.Hidden)

	first := makeBoard(time.Unix(1, 0), map[string]float64{"filecoin": 80, "arweave": 30},
		"filecoin", "arweave")
	err := renderer.Render(page, first)
	require.NoError(t, err)

	second := makeBoard(time.Unix(2, 0), map[string]float64{"walrus": 100}, "walrus")
	err = renderer.Render(page, second)
	require.NoError(t, err)

	state := page.State()
	assert.True(t, state.Loading.Hidden)
	assert.True(t, state.Error.Hidden)
	assert.False(t, state.Networks.Hidden)
	assert.Equal(t, renderer.Fragment(second), state.Networks.Content)
}

func Test_Renderer_Render_rankOrder(t *testing.T) {
	t.Parallel()

	renderer := New(Settings{Style: StyleRing, Decimals: 2})
	page := NewPage()
	board := makeBoard(time.Unix(1, 0),
		map[string]float64{"filecoin": 80, "arweave": 30, "walrus": 0},
		"filecoin", "arweave", "walrus")

	err := renderer.Render(page, board)
	require.NoError(t, err)

	content := string(page.State().Networks.Content)
	filecoinIndex := strings.Index(content, `<span class="network-name">filecoin</span>`)
	arweaveIndex := strings.Index(content, `<span class="network-name">arweave</span>`)
	walrusIndex := strings.Index(content, `<span class="network-name">walrus</span>`)
	assert.True(t, filecoinIndex >= 0 && filecoinIndex < arweaveIndex && arweaveIndex < walrusIndex)
	assert.Contains(t, content, "80.00%")
	assert.Contains(t, content, "30.00%")
	assert.Contains(t, content, "0.00%")
}

func Test_Renderer_Render_prepend(t *testing.T) {
	t.Parallel()

	renderer := New(Settings{Style: StyleBadge, Mode: ModePrepend, Decimals: 2, PrependLimit: 2})
	page := NewPage()

	boards := make([]models.Leaderboard, 3)
	for i := range boards {
		boards[i] = makeBoard(time.Unix(int64(i), 0), map[string]float64{"walrus": 50}, "walrus")
		err := renderer.Render(page, boards[i])
		require.NoError(t, err)
	}

	element, ok := page.ElementByID(NetworksID)
	require.True(t, ok)
	expectedBlocks := []template.HTML{
		renderer.Fragment(boards[2]),
		renderer.Fragment(boards[1]),
	}
	assert.Equal(t, expectedBlocks, element.Blocks())
	assert.Equal(t, expectedBlocks[0]+expectedBlocks[1], page.State().Networks.Content)
}

func Test_Renderer_RenderFailure(t *testing.T) {
	t.Parallel()

	renderer := New(Settings{Style: StyleBadge, Decimals: 2})
	page := NewPage()
	board := makeBoard(time.Unix(1, 0), map[string]float64{"walrus": 50}, "walrus")
	err := renderer.Render(page, board)
	require.NoError(t, err)

	err = renderer.RenderFailure(page, errors.New("no network data available: <3>"))
	require.NoError(t, err)

	state := page.State()
	assert.True(t, state.Loading.Hidden)
	assert.False(t, state.Error.Hidden)
	assert.Equal(t, template.HTML(`<p class="error-message">Failed to load network data.</p>`+
		`<p class="error-detail">no network data available: &lt;3&gt;</p>`), state.Error.Content)
	assert.True(t, state.Networks.Hidden)
	assert.Empty(t, state.Networks.Content)

	// a successful render afterwards hides the error again
	err = renderer.Render(page, board)
	require.NoError(t, err)
	state = page.State()
	assert.True(t, state.Error.Hidden)
	assert.False(t, state.Networks.Hidden)
}

func Test_Renderer_missingElement(t *testing.T) {
	t.Parallel()

	renderer := New(Settings{})

	testCases := map[string]struct {
		ids        []string
		errMessage string
	}{
		"missing networks": {
			ids:        []string{LoadingID, ErrorID},
			errMessage: "element not found: networks",
		},
		"missing all": {
			ids:        []string{"other"},
			errMessage: "element not found: loading, error, networks",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			page := NewPage(testCase.ids...)

			err := renderer.Render(page, models.Leaderboard{})
			assert.ErrorIs(t, err, ErrElementNotFound)
			assert.EqualError(t, err, testCase.errMessage)

			err = renderer.RenderFailure(page, nil)
			assert.ErrorIs(t, err, ErrElementNotFound)
		})
	}
}
