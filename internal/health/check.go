package health

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoCycleYet     = errors.New("no cycle completed yet")
	ErrLastCycleStale = errors.New("last cycle is too old")
)

// MakeIsHealthy returns a function checking the last cycle succeeded
// and is not older than maxAge, and the hosts of the stats APIs resolve.
// A zero maxAge disables the age check.
func MakeIsHealthy(db LastCycler, resolver LookupIPer, hosts []string,
	maxAge time.Duration, timeNow func() time.Time) func(ctx context.Context) error {
	return func(ctx context.Context) (err error) {
		return isHealthy(ctx, db, resolver, hosts, maxAge, timeNow)
	}
}

func isHealthy(ctx context.Context, db LastCycler, resolver LookupIPer,
	hosts []string, maxAge time.Duration, timeNow func() time.Time) (err error) {
	cycleTime, cycleErr := db.LastCycle()
	switch {
	case cycleTime.IsZero():
		return ErrNoCycleYet
	case cycleErr != nil:
		return fmt.Errorf("last cycle failed: %w", cycleErr)
	case maxAge > 0 && timeNow().Sub(cycleTime) > maxAge:
		return fmt.Errorf("%w: completed at %s which is more than %s ago",
			ErrLastCycleStale, cycleTime.Format(time.RFC3339), maxAge)
	}

	for _, host := range hosts {
		_, err = resolver.LookupIP(ctx, "ip", host)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", host, err)
		}
	}
	return nil
}
