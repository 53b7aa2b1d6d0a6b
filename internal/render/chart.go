package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/checker-network/leaderboard/internal/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrNoEntries = errors.New("leaderboard has no entry")

//nolint:gochecknoglobals
var levelColors = map[string]drawing.Color{
	LevelLow:    drawing.ColorFromHex("e5534b"),
	LevelMedium: drawing.ColorFromHex("e3b341"),
	LevelHigh:   drawing.ColorFromHex("46954a"),
}

// WriteChart writes a PNG bar chart of the success rates to w.
func WriteChart(w io.Writer, board models.Leaderboard, decimals uint) (err error) {
	if len(board.Entries) == 0 {
		return fmt.Errorf("%w", ErrNoEntries)
	}

	bars := make([]chart.Value, len(board.Entries))
	for i, entry := range board.Entries {
		color := levelColors[Level(entry.Result.SuccessRate)]
		bars[i] = chart.Value{
			Value: entry.Result.SuccessRate,
			Label: entry.Result.Network.ID + " " + FormatRate(entry.Result.SuccessRate, decimals),
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		}
	}

	const width, height, barWidth = 800, 400, 80
	graph := chart.BarChart{
		Title: "Retrieval success rate",
		TitleStyle: chart.Style{
			FontSize: 14,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:    width,
		Height:   height,
		BarWidth: barWidth,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: 100, //nolint:gomnd
			},
		},
		Bars: bars,
	}

	err = graph.Render(chart.PNG, w)
	if err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
