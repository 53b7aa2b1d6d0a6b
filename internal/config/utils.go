package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/qdm12/gosettings/reader"
)

var ErrPeriodNegative = errors.New("period cannot be negative")

// readDurationPtr returns nil if the key is not set, so a zero
// duration can be told apart from an unset one.
func readDurationPtr(r *reader.Reader, key string) (duration *time.Duration, err error) {
	s := r.Get(key)
	if s == nil {
		return nil, nil //nolint:nilnil
	}

	value, err := time.ParseDuration(*s)
	if err != nil {
		return nil, fmt.Errorf("environment variable %s: %w", key, err)
	}
	return &value, nil
}

func readUintPtr(r *reader.Reader, key string) (value *uint, err error) {
	s := r.Get(key)
	if s == nil {
		return nil, nil //nolint:nilnil
	}

	parsed, err := strconv.ParseUint(*s, 10, 0)
	if err != nil {
		return nil, fmt.Errorf("environment variable %s: %w", key, err)
	}
	result := uint(parsed)
	return &result, nil
}
