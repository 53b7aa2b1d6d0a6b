package render

import (
	"io"

	"github.com/checker-network/leaderboard/internal/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

//nolint:gochecknoglobals
var levelTextColors = map[string]text.Colors{
	LevelLow:    {text.FgRed},
	LevelMedium: {text.FgYellow},
	LevelHigh:   {text.FgGreen},
}

// WriteTable writes the leaderboard as a table to w, followed by
// the networks which were unavailable. Rates are colored with ANSI
// escape sequences if colored is true.
func WriteTable(w io.Writer, board models.Leaderboard, decimals uint, colored bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"#", "Network", "Symbol", "Success rate"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{
			Name:        "Success rate",
			Align:       text.AlignRight,
			AlignHeader: text.AlignRight,
		},
	})

	for _, entry := range board.Entries {
		rate := FormatRate(entry.Result.SuccessRate, decimals)
		if colored {
			rate = levelTextColors[Level(entry.Result.SuccessRate)].Sprint(rate)
		}
		// the order of values must match the order of the header
		t.AppendRow(table.Row{entry.Rank, entry.Result.Network.ID,
			entry.Result.Network.Symbol, rate})
	}

	for _, network := range board.Unavailable {
		t.AppendRow(table.Row{"-", network.ID, network.Symbol, "unavailable"})
	}

	t.Render()
}
