package job

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/phareim/reader/utils/logger"
	"github.com/phareim/reader/utils/metrics"
)

// Run outcomes reported to metrics and logs.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeTimedOut = "timed_out"
)

// Job is a periodic background task. Timeout bounds a single run; zero
// means the run is only bounded by the scheduler's context.
type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler drives registered jobs on their own tickers.
type Scheduler struct {
	mu      sync.Mutex
	jobs    []Job
	running sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Register(j Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, j)
}

// Start fires every registered job immediately and then once per interval
// until ctx is done. A job whose run outlasts its interval skips the ticks
// it missed instead of queueing them.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	jobs := append([]Job(nil), s.jobs...)
	s.mu.Unlock()

	for _, j := range jobs {
		s.running.Add(1)
		go func(j Job) {
			defer s.running.Done()
			s.loop(ctx, j)
		}(j)
	}
}

func (s *Scheduler) loop(ctx context.Context, j Job) {
	runOnce(ctx, j)

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Logger.InfoContext(ctx, "Job stopped", "job", j.Name)
			return
		case <-ticker.C:
			runOnce(ctx, j)
		}
	}
}

// runOnce executes one run of j and reports its outcome. It returns the
// outcome, or "" when ctx was already done and nothing ran.
func runOnce(ctx context.Context, j Job) string {
	if ctx.Err() != nil {
		return ""
	}

	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if j.Timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, j.Timeout)
	}
	defer cancel()

	started := time.Now()
	err := j.Fn(runCtx)
	elapsed := time.Since(started)

	outcome := OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded) && errors.Is(runCtx.Err(), context.DeadlineExceeded):
		outcome = OutcomeTimedOut
	default:
		outcome = OutcomeFailure
	}
	metrics.RecordJobRun(j.Name, outcome, elapsed)

	if err != nil {
		logger.Logger.ErrorContext(ctx, "Job run failed",
			"job", j.Name, "outcome", outcome, "duration_ms", elapsed.Milliseconds(), "error", err)
		return outcome
	}
	logger.Logger.InfoContext(ctx, "Job run finished", "job", j.Name, "duration_ms", elapsed.Milliseconds())
	return outcome
}

// Wait blocks until every job loop has returned.
func (s *Scheduler) Wait() {
	s.running.Wait()
}
