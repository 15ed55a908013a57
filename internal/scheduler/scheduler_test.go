package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyushiSoni2003/Scrape-saas-news/internal/logger"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/scheduler"
	"github.com/AyushiSoni2003/Scrape-saas-news/internal/service"
)

type countingRunner struct {
	calls atomic.Int32
	err   error
}

func (r *countingRunner) Run(ctx context.Context) (*service.RunReport, error) {
	r.calls.Add(1)
	if r.err != nil {
		return nil, r.err
	}
	return &service.RunReport{RunID: "scheduled"}, nil
}

func TestNew_RejectsBadSchedule(t *testing.T) {
	t.Parallel()

	_, err := scheduler.New(scheduler.Config{Schedule: "every tuesday"}, &countingRunner{}, nil)
	require.Error(t, err)
}

func TestNew_AcceptsCronAndDescriptor(t *testing.T) {
	t.Parallel()

	for _, spec := range []string{"0 */6 * * *", "@daily", "@every 1h", ""} {
		s, err := scheduler.New(scheduler.Config{Schedule: spec}, &countingRunner{}, logger.NewNop())
		require.NoError(t, err, spec)
		s.Start()
		assert.False(t, s.Next().IsZero(), spec)
		s.Stop()
	}
}

func TestScheduler_RunsJob(t *testing.T) {
	t.Parallel()

	runner := &countingRunner{}
	s, err := scheduler.New(scheduler.Config{Schedule: "@every 1s", Timeout: time.Second}, runner, logger.NewNop())
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return runner.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_FailureIsNotFatal(t *testing.T) {
	t.Parallel()

	runner := &countingRunner{err: errors.New("index unavailable")}
	s, err := scheduler.New(scheduler.Config{Schedule: "@every 1s"}, runner, logger.NewNop())
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return runner.calls.Load() >= 2 }, 4*time.Second, 50*time.Millisecond)
}
