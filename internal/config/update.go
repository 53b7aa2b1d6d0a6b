package config

import (
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/robfig/cron/v3"
)

type Update struct {
	// Period is the period between two cycles,
	// and zero disables periodic cycles.
	Period *time.Duration
	// Schedule is a standard cron specification which,
	// if not empty, is used instead of the period.
	Schedule *string
}

func (u *Update) setDefaults() {
	const defaultPeriod = 30 * time.Second
	u.Period = gosettings.DefaultPointer(u.Period, defaultPeriod)
	u.Schedule = gosettings.DefaultPointer(u.Schedule, "")
}

func (u Update) Validate() (err error) {
	if *u.Period < 0 {
		return fmt.Errorf("%w: %s", ErrPeriodNegative, *u.Period)
	}

	if *u.Schedule != "" {
		_, err = cron.ParseStandard(*u.Schedule)
		if err != nil {
			return fmt.Errorf("cron schedule: %w", err)
		}
	}
	return nil
}

func (u Update) String() string {
	return u.toLinesNode().String()
}

func (u Update) toLinesNode() *gotree.Node {
	node := gotree.New("Update")
	switch {
	case *u.Schedule != "":
		node.Appendf("Schedule: %s", *u.Schedule)
	case *u.Period == 0:
		node.Appendf("Period: disabled")
	default:
		node.Appendf("Period: %s", *u.Period)
	}
	return node
}

func (u *Update) read(r *reader.Reader, warner Warner) (err error) {
	u.Period, err = readDurationPtr(r, "PERIOD")
	if err != nil {
		return err
	}

	u.Schedule = r.Get("UPDATE_SCHEDULE", reader.ForceLowercase(false))
	if u.Schedule != nil && u.Period != nil {
		warnIgnored(warner, "PERIOD", "UPDATE_SCHEDULE")
	}
	return nil
}
