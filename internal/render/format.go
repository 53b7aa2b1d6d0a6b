package render

import "strconv"

// Level classes of a success rate.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// Level returns the color class of a success rate percentage.
func Level(rate float64) string {
	const lowThreshold, mediumThreshold = 50, 75
	switch {
	case rate < lowThreshold:
		return LevelLow
	case rate < mediumThreshold:
		return LevelMedium
	default:
		return LevelHigh
	}
}

// FormatRate formats a success rate percentage with the given
// number of decimals followed by a percent sign, for example 95.60%.
func FormatRate(rate float64, decimals uint) string {
	return strconv.FormatFloat(rate, 'f', int(decimals), 64) + "%" //nolint:gomnd
}
