package update

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// NewSchedule returns the schedule of the periodic cycles.
// A non empty cron specification takes precedence over the period.
// It returns a nil schedule if the period is zero and the cron
// specification is empty, in which case only the first cycle runs.
func NewSchedule(period time.Duration, cronSpec string) (schedule Schedule, err error) {
	if cronSpec != "" {
		schedule, err = cron.ParseStandard(cronSpec)
		if err != nil {
			return nil, fmt.Errorf("parsing cron schedule: %w", err)
		}
		return schedule, nil
	}

	if period == 0 {
		return nil, nil //nolint:nilnil
	}
	return periodSchedule(period), nil
}

type periodSchedule time.Duration

func (p periodSchedule) Next(t time.Time) time.Time {
	return t.Add(time.Duration(p))
}
