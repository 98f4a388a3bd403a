package background

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amikaross/rails-engine/internal/caching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls atomic.Int32
	err   error
}

func (s *countingSweeper) SweepEmptyInvoices(ctx context.Context) ([]int64, error) {
	s.calls.Add(1)
	return []int64{1}, s.err
}

type flushCache struct {
	caching.CacheService
	flushed atomic.Int32
}

func (c *flushCache) InvalidateAll(ctx context.Context) error {
	c.flushed.Add(1)
	return nil
}

func TestNewJobScheduler_RegistersJobs(t *testing.T) {
	js, err := NewJobScheduler(SchedulerConfig{
		InvoiceSweepInterval: time.Hour,
		CacheFlushInterval:   time.Hour,
	}, &countingSweeper{}, &flushCache{})
	require.NoError(t, err)
	defer js.Stop()

	statuses := js.GetJobStatus()
	require.Len(t, statuses, 2)
	assert.Equal(t, CacheFlushJob, statuses[0].Name)
	assert.Equal(t, InvoiceSweepJob, statuses[1].Name)
}

func TestNewJobScheduler_CacheFlushOptional(t *testing.T) {
	js, err := NewJobScheduler(SchedulerConfig{InvoiceSweepInterval: time.Hour}, &countingSweeper{}, &flushCache{})
	require.NoError(t, err)
	defer js.Stop()

	assert.Len(t, js.GetJobStatus(), 1)
}

func TestNewJobScheduler_RejectsBadInterval(t *testing.T) {
	_, err := NewJobScheduler(SchedulerConfig{InvoiceSweepInterval: 0}, &countingSweeper{}, &flushCache{})
	assert.Error(t, err)
}

func TestSweepEmptyInvoices(t *testing.T) {
	sweeper := &countingSweeper{}
	js, err := NewJobScheduler(SchedulerConfig{InvoiceSweepInterval: time.Hour}, sweeper, &flushCache{})
	require.NoError(t, err)
	defer js.Stop()

	require.NoError(t, js.sweepEmptyInvoices())
	assert.Equal(t, int32(1), sweeper.calls.Load())

	sweeper.err = errors.New("connection refused")
	assert.Error(t, js.sweepEmptyInvoices())
}

func TestScheduler_RunsSweep(t *testing.T) {
	sweeper := &countingSweeper{}
	js, err := NewJobScheduler(SchedulerConfig{InvoiceSweepInterval: 20 * time.Millisecond}, sweeper, &flushCache{})
	require.NoError(t, err)

	js.Start()
	assert.Eventually(t, func() bool { return sweeper.calls.Load() > 0 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, js.Stop())
}

func TestFlushCache(t *testing.T) {
	cache := &flushCache{}
	js, err := NewJobScheduler(SchedulerConfig{InvoiceSweepInterval: time.Hour}, &countingSweeper{}, cache)
	require.NoError(t, err)
	defer js.Stop()

	require.NoError(t, js.flushCache())
	assert.Equal(t, int32(1), cache.flushed.Load())
}
