package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"feed_syncer/internal/domain"
)

// Job is one recurring synchronization task. Run reports its outcome through
// the result; it does not return an error.
type Job interface {
	ID() string
	Name() string
	Run(ctx context.Context) *domain.Result
}

type entry struct {
	job      Job
	interval time.Duration
}

// Scheduler runs each registered job on its own ticker. Jobs start
// immediately on Start and then once per interval.
type Scheduler struct {
	entries    []entry
	runTimeout time.Duration
	logger     *slog.Logger
}

func New(runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		runTimeout: runTimeout,
		logger:     logger,
	}
}

func (s *Scheduler) Register(job Job, interval time.Duration) {
	s.entries = append(s.entries, entry{job: job, interval: interval})
}

// Start blocks until ctx is cancelled, then waits for in-flight runs to
// finish.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "jobs", len(s.entries))

	var wg sync.WaitGroup
	for _, e := range s.entries {
		wg.Add(1)
		go func(e entry) {
			defer wg.Done()
			s.loop(ctx, e)
		}(e)
	}

	<-ctx.Done()
	wg.Wait()
	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) loop(ctx context.Context, e entry) {
	s.logger.Info("job scheduled", "job", e.job.ID(), "interval", e.interval)

	s.runJob(ctx, e.job)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runJob(ctx, e.job)
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	result := job.Run(runCtx)
	if result == nil {
		return
	}

	logger := s.logger.With(
		"job", job.ID(),
		"message", result.Message,
		"fetched", result.TotalFetched,
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"pages", result.Pages,
		"duration", result.Duration,
	)
	if result.Success {
		logger.Info("job run finished")
	} else {
		logger.Error("job run failed")
	}
}
