// Package successrate reduces daily retrieval measurements to
// a success rate percentage.
package successrate

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/checker-network/leaderboard/internal/models"
)

var (
	ErrCountMalformed         = errors.New("count is malformed")
	ErrSuccessfulExceedsTotal = errors.New("successful count exceeds total count")
	ErrCountOverflow          = errors.New("summed count overflows")
)

// Calculate sums the total and successful counts of all the measurements
// and returns successful/total*100, or 0 if the summed total is 0.
// The rate returned is always between 0 and 100 included.
func Calculate(measurements []models.Measurement) (rate float64, err error) {
	var total, successful uint64
	for _, measurement := range measurements {
		dayTotal, err := parseCount(measurement.Total)
		if err != nil {
			return 0, fmt.Errorf("total count for day %q: %w", measurement.Day, err)
		}

		daySuccessful, err := parseCount(measurement.Successful)
		if err != nil {
			return 0, fmt.Errorf("successful count for day %q: %w", measurement.Day, err)
		}

		var carry uint64
		total, carry = bits.Add64(total, dayTotal, 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: total count for day %q", ErrCountOverflow, measurement.Day)
		}

		successful, carry = bits.Add64(successful, daySuccessful, 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: successful count for day %q", ErrCountOverflow, measurement.Day)
		}
	}

	if total == 0 {
		return 0, nil
	} else if successful > total {
		return 0, fmt.Errorf("%w: %d successful for %d total",
			ErrSuccessfulExceedsTotal, successful, total)
	}

	return float64(successful) / float64(total) * 100, nil //nolint:gomnd
}

func parseCount(count models.Count) (n uint64, err error) {
	const base, bitSize = 10, 64
	n, err = strconv.ParseUint(strings.TrimSpace(string(count)), base, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrCountMalformed, string(count))
	}
	return n, nil
}
