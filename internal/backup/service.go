package backup

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"
)

type Logger interface {
	Info(s string)
}

type Service struct {
	// Injected fields
	backupPeriod time.Duration
	ziper        FileZiper
	inputFiles   []string
	outputDir    string
	logger       Logger
	timeNow      func() time.Time

	// Internal fields
	stopCh chan<- struct{}
	done   <-chan struct{}
}

// New creates a service zipping the input files to the output directory
// every backup period. A zero backup period disables it.
func New(backupPeriod time.Duration, ziper FileZiper, inputFiles []string,
	outputDir string, logger Logger, timeNow func() time.Time) *Service {
	return &Service{
		backupPeriod: backupPeriod,
		ziper:        ziper,
		inputFiles:   inputFiles,
		outputDir:    outputDir,
		logger:       logger,
		timeNow:      timeNow,
	}
}

func (s *Service) String() string {
	return "backup"
}

func makeZipFileName(now time.Time) string {
	return "leaderboard-backup-" + strconv.FormatInt(now.UnixNano(), 10) + ".zip"
}

func (s *Service) Start(ctx context.Context) (runError <-chan error, startErr error) {
	ready := make(chan struct{})
	runErrorCh := make(chan error)
	stopCh := make(chan struct{})
	s.stopCh = stopCh
	done := make(chan struct{})
	s.done = done
	go s.run(ready, runErrorCh, stopCh, done)
	select {
	case <-ready:
	case <-ctx.Done():
		return nil, s.Stop()
	}
	return runErrorCh, nil
}

func (s *Service) run(ready chan<- struct{}, runError chan<- error,
	stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	if s.backupPeriod == 0 {
		close(ready)
		s.logger.Info("disabled")
		return
	}

	s.logger.Info("each " + s.backupPeriod.String() +
		"; writing zip files to directory " + s.outputDir)
	timer := time.NewTimer(s.backupPeriod)
	close(ready)

	for {
		select {
		case <-timer.C:
		case <-stopCh:
			_ = timer.Stop()
			return
		}

		err := s.backup()
		if err != nil {
			runError <- err
			return
		}
		timer.Reset(s.backupPeriod)
	}
}

func (s *Service) backup() (err error) {
	outputPath := filepath.Join(s.outputDir, makeZipFileName(s.timeNow()))
	err = s.ziper.ZipFiles(outputPath, s.inputFiles...)
	if err != nil {
		return fmt.Errorf("zipping files: %w", err)
	}
	s.logger.Info("backed up " + strconv.Itoa(len(s.inputFiles)) +
		" file(s) to " + outputPath)
	return nil
}

func (s *Service) Stop() (err error) {
	close(s.stopCh)
	<-s.done
	return nil
}
