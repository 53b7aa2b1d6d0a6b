package shoutrrr

import (
	"testing"

	"github.com/checker-network/leaderboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		settings   Settings
		names      []string
		title      string
		decimals   uint
		errMessage string
	}{
		"no_address": {
			names:    []string{},
			title:    "Network Leaderboard",
			decimals: 2,
		},
		"generic_address": {
			settings: Settings{
				Addresses:    []string{"generic://example.com"},
				DefaultTitle: "Leaderboard",
				Decimals:     ptrTo(uint(1)),
			},
			names:    []string{"generic"},
			title:    "Leaderboard",
			decimals: 1,
		},
		"invalid_address": {
			settings: Settings{
				Addresses: []string{"notaservice://example.com"},
			},
			errMessage: "validating settings: shoutrrr addresses: ",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client, err := New(testCase.settings)

			if testCase.errMessage != "" {
				assert.ErrorContains(t, err, testCase.errMessage)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.names, client.serviceNames)
			assert.Equal(t, testCase.title, client.defaultTitle)
			assert.Equal(t, testCase.decimals, client.decimals)
		})
	}
}

func Test_addDefaultTitle(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		address        string
		defaultTitle   string
		updatedAddress string
	}{
		"generic_with_empty_title": {
			address:        "generic://example.com?title=",
			defaultTitle:   "Network Leaderboard",
			updatedAddress: "generic://example.com?title=",
		},
		"generic_with_title": {
			address:        "generic://example.com?title=MyTitle",
			defaultTitle:   "Network Leaderboard",
			updatedAddress: "generic://example.com?title=MyTitle",
		},
		"generic_without_title": {
			address:        "generic://example.com",
			defaultTitle:   "Network Leaderboard",
			updatedAddress: "generic://example.com?title=Network+Leaderboard",
		},
		"discord_keeps_other_parameters": {
			address:        "discord://token@channel?avatar=x",
			defaultTitle:   "Leaderboard",
			updatedAddress: "discord://token@channel?avatar=x&title=Leaderboard",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			updatedAddress := addDefaultTitle(testCase.address, testCase.defaultTitle)

			assert.Equal(t, testCase.updatedAddress, updatedAddress)
		})
	}
}

func ptrTo[T any](value T) *T { return &value }

func Test_launchedMessage(t *testing.T) {
	t.Parallel()

	networks := []models.Network{
		{ID: "arweave", Symbol: "AR"},
		{ID: "custom"},
	}

	message := launchedMessage(networks)

	assert.Equal(t, "Ranking arweave (AR), custom", message)
}

func Test_rankingMessage(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		board    models.Leaderboard
		decimals uint
		message  string
	}{
		"empty": {},
		"ranked_and_unavailable": {
			board: models.Leaderboard{
				Entries: []models.Entry{
					{Rank: 1, Result: models.NetworkResult{
						Network: models.Network{ID: "filecoin"}, SuccessRate: 80,
					}},
					{Rank: 2, Result: models.NetworkResult{
						Network: models.Network{ID: "arweave"}, SuccessRate: 33.333,
					}},
				},
				Unavailable: []models.Network{{ID: "walrus"}, {ID: "other"}},
			},
			decimals: 2,
			message:  "#1 filecoin 80.00%\n#2 arweave 33.33%\nUnavailable: walrus, other",
		},
		"no_decimals": {
			board: models.Leaderboard{
				Entries: []models.Entry{
					{Rank: 1, Result: models.NetworkResult{
						Network: models.Network{ID: "walrus"}, SuccessRate: 99.6,
					}},
				},
			},
			message: "#1 walrus 100%",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			message := rankingMessage(testCase.board, testCase.decimals)

			assert.Equal(t, testCase.message, message)
		})
	}
}
