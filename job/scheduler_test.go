package job

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/utils/metrics"
)

func TestScheduler_RunsJobOnStart(t *testing.T) {
	var count atomic.Int32

	scheduler := NewScheduler()
	scheduler.Register(Job{
		Name:     "test-job",
		Interval: time.Hour,
		Timeout:  time.Second,
		Fn: func(ctx context.Context) error {
			count.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	assert.Eventually(t, func() bool { return count.Load() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()
	scheduler.Wait()
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	var count atomic.Int32

	scheduler := NewScheduler()
	scheduler.Register(Job{
		Name:     "stop-test",
		Interval: 10 * time.Millisecond,
		Timeout:  time.Second,
		Fn: func(ctx context.Context) error {
			count.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	cancel()
	scheduler.Wait()

	afterShutdown := count.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, afterShutdown, count.Load())
}

func TestScheduler_AppliesTimeout(t *testing.T) {
	deadlineSet := make(chan bool, 1)

	scheduler := NewScheduler()
	scheduler.Register(Job{
		Name:     "timeout-test",
		Interval: time.Hour,
		Timeout:  20 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			deadlineSet <- ok
			<-ctx.Done()
			return ctx.Err()
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	scheduler.Start(ctx)

	select {
	case ok := <-deadlineSet:
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("job did not run")
	}
	cancel()
	scheduler.Wait()
}

func TestRunOnce_RecordsOutcome(t *testing.T) {
	runs := func(name, outcome string) float64 {
		return testutil.ToFloat64(metrics.JobRunsTotal.WithLabelValues(name, outcome))
	}

	tests := []struct {
		name    string
		timeout time.Duration
		fn      func(ctx context.Context) error
		want    string
	}{
		{
			name: "success",
			fn:   func(context.Context) error { return nil },
			want: OutcomeSuccess,
		},
		{
			name: "failure",
			fn:   func(context.Context) error { return errors.New("db down") },
			want: OutcomeFailure,
		},
		{
			name:    "timed out",
			timeout: 10 * time.Millisecond,
			fn: func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
			want: OutcomeTimedOut,
		},
		{
			name: "deadline error from a dependency is a failure",
			fn:   func(context.Context) error { return context.DeadlineExceeded },
			want: OutcomeFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobName := "outcome-" + tt.name
			before := runs(jobName, tt.want)

			got := runOnce(context.Background(), Job{Name: jobName, Timeout: tt.timeout, Fn: tt.fn})

			assert.Equal(t, tt.want, got)
			assert.Equal(t, before+1, runs(jobName, tt.want))
		})
	}
}

func TestRunOnce_SkipsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false

	got := runOnce(ctx, Job{Name: "cancelled", Fn: func(context.Context) error {
		called = true
		return nil
	}})

	assert.Empty(t, got)
	assert.False(t, called)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.JobRunsTotal.WithLabelValues("cancelled", OutcomeSuccess)))
}

type syncerFunc func(ctx context.Context) (domain.SyncReport, error)

func (f syncerFunc) SyncEverything(ctx context.Context) (domain.SyncReport, error) {
	return f(ctx)
}

func TestFeedSyncJob(t *testing.T) {
	t.Run("reports success", func(t *testing.T) {
		calls := 0
		j := FeedSyncJob(syncerFunc(func(context.Context) (domain.SyncReport, error) {
			calls++
			return domain.SyncReport{Summary: domain.SyncSummary{Total: 2, Succeeded: 1, Failed: 1}}, nil
		}), 30*time.Minute, 10*time.Minute)

		assert.Equal(t, FeedSyncJobName, j.Name)
		assert.Equal(t, 30*time.Minute, j.Interval)
		require.NoError(t, j.Fn(context.Background()))
		assert.Equal(t, 1, calls)
	})

	t.Run("propagates listing failure", func(t *testing.T) {
		listErr := errors.New("db down")
		j := FeedSyncJob(syncerFunc(func(context.Context) (domain.SyncReport, error) {
			return domain.SyncReport{}, listErr
		}), time.Minute, time.Minute)

		assert.ErrorIs(t, j.Fn(context.Background()), listErr)
	})
}
