package update

import (
	"context"
	"time"
)

type Service struct {
	// Injected fields
	builder   Builder
	renderer  Renderer
	page      Page
	db        Database
	notifier  ShoutrrrClient
	hioClient HealthchecksIOClient
	schedule  Schedule
	logger    Logger
	timeNow   func() time.Time

	// Internal fields
	force  chan chan<- error
	state  cycleState
	stopCh chan<- struct{}
	done   <-chan struct{}
}

// NewService creates the service running leaderboard cycles.
// The page is only accessed by the service once it is started.
// A nil schedule only runs the first cycle.
func NewService(builder Builder, renderer Renderer, page Page, db Database,
	notifier ShoutrrrClient, hioClient HealthchecksIOClient, schedule Schedule,
	logger Logger, timeNow func() time.Time) *Service {
	return &Service{
		builder:   builder,
		renderer:  renderer,
		page:      page,
		db:        db,
		notifier:  notifier,
		hioClient: hioClient,
		schedule:  schedule,
		logger:    logger,
		timeNow:   timeNow,
		force:     make(chan chan<- error),
	}
}

func (s *Service) String() string {
	return "updater"
}

// Start launches the cycles loop, which runs a first cycle
// right away and then follows the schedule.
func (s *Service) Start(ctx context.Context) (runError <-chan error, startErr error) {
	ready := make(chan struct{})
	stopCh := make(chan struct{})
	s.stopCh = stopCh
	done := make(chan struct{})
	s.done = done
	go s.run(ready, stopCh, done)
	select {
	case <-ready:
	case <-ctx.Done():
		return nil, s.Stop()
	}
	return nil, nil
}

func (s *Service) run(ready chan<- struct{}, stopCh <-chan struct{},
	done chan<- struct{}) {
	defer close(done)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	close(ready)

	start := s.timeNow()
	_ = s.cycle(ctx)

	var next time.Time
	if s.schedule != nil {
		next = s.schedule.Next(start)
	}

	for {
		var timer *time.Timer
		var tick <-chan time.Time
		if !next.IsZero() {
			now := s.timeNow()
			next = s.skipMissed(next, now)
			if !next.IsZero() {
				timer = time.NewTimer(next.Sub(now))
				tick = timer.C
			}
		}

		select {
		case <-ctx.Done():
			stopTimer(timer)
			return
		case <-tick:
			next = s.schedule.Next(next)
			_ = s.cycle(ctx)
		case result := <-s.force:
			stopTimer(timer)
			result <- s.cycle(ctx)
		}
	}
}

// skipMissed returns the first activation time after now, skipping
// the activations missed while a cycle was running.
func (s *Service) skipMissed(next, now time.Time) time.Time {
	skipped := 0
	for !next.IsZero() && !next.After(now) {
		next = s.schedule.Next(next)
		skipped++
	}
	if skipped > 0 {
		s.logger.Debug("skipped " + plural(skipped, "scheduled cycle") +
			" overlapping the previous cycle")
	}
	return next
}

// ForceUpdate runs a cycle as soon as the current one, if any, finishes
// and returns its error.
func (s *Service) ForceUpdate(ctx context.Context) (err error) {
	result := make(chan error, 1)
	select {
	case s.force <- result:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err = <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) Stop() (err error) {
	close(s.stopCh)
	<-s.done
	return nil
}

func stopTimer(timer *time.Timer) {
	if timer != nil && !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
