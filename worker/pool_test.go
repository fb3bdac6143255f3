package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsAllJobs(t *testing.T) {
	pool := NewPool(context.Background(), 3)

	var done atomic.Int32
	jobs := make([]Job, 8)
	for i := range jobs {
		jobs[i] = Job{Name: "load", Run: func(context.Context) error {
			done.Add(1)
			return nil
		}}
	}
	pool.Push(jobs...)

	require.NoError(t, pool.Wait())
	assert.EqualValues(t, 8, done.Load())
}

func TestPoolBoundsConcurrency(t *testing.T) {
	pool := NewPool(context.Background(), 2)

	var mu sync.Mutex
	inFlight, peak := 0, 0

	jobs := make([]Job, 6)
	for i := range jobs {
		jobs[i] = Job{Name: "load", Run: func(context.Context) error {
			mu.Lock()
			inFlight++
			if inFlight > peak {
				peak = inFlight
			}
			mu.Unlock()

			time.Sleep(20 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return nil
		}}
	}
	pool.Push(jobs...)

	require.NoError(t, pool.Wait())
	assert.LessOrEqual(t, peak, 2)
	assert.Greater(t, peak, 0)
}

func TestPoolReportsJobError(t *testing.T) {
	pool := NewPool(context.Background(), 2)

	pool.Push(
		Job{Name: "users", Run: func(context.Context) error { return nil }},
		Job{Name: "tickets", Run: func(context.Context) error { return assert.AnError }},
	)

	err := pool.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch tickets")
}

func TestPoolSkipsJobsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewPool(ctx, 2)

	var ran atomic.Int32
	pool.Push(Job{Name: "users", Run: func(context.Context) error {
		ran.Add(1)
		return nil
	}})

	err := pool.Wait()
	require.Error(t, err)
	assert.Zero(t, ran.Load())
}
