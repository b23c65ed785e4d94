package cronjob

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger"
)

// Purger deletes records created before cutoff.
type Purger interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// RetentionScheduler periodically drops run records older than the
// retention window.
type RetentionScheduler struct {
	cron      *cron.Cron
	retention time.Duration
	purgers   map[string]Purger
	now       func() time.Time
}

func NewRetentionScheduler(retentionDays int, purgers map[string]Purger) *RetentionScheduler {
	return &RetentionScheduler{
		cron:      cron.New(),
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		purgers:   purgers,
		now:       time.Now,
	}
}

// Start schedules the sweep with a standard five field cron spec. A zero
// retention disables the sweep.
func (s *RetentionScheduler) Start(spec string) error {
	if s.retention <= 0 {
		logger.Info("retention sweep disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("failed to schedule retention sweep: %w", err)
	}
	s.cron.Start()
	logger.Info("retention sweep scheduled", "spec", spec, "retention", s.retention)
	return nil
}

// Stop waits for a running sweep to finish.
func (s *RetentionScheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce purges every store and returns the rows removed per store. A
// failing store is logged and skipped.
func (s *RetentionScheduler) RunOnce(ctx context.Context) map[string]int64 {
	cutoff := s.now().Add(-s.retention)
	removed := make(map[string]int64, len(s.purgers))
	for name, p := range s.purgers {
		n, err := p.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("retention sweep failed", "store", name, "error", err)
			continue
		}
		removed[name] = n
	}
	logger.Info("retention sweep finished", "cutoff", cutoff.Format(time.RFC3339), "removed", removed)
	return removed
}
