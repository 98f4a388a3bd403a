package background

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/amikaross/rails-engine/internal/caching"
	"github.com/amikaross/rails-engine/internal/logger"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const (
	InvoiceSweepJob = "empty-invoice-sweep"
	CacheFlushJob   = "cache-flush"

	jobTimeout = time.Minute
)

// InvoiceSweeper removes invoices that no longer have any items
type InvoiceSweeper interface {
	SweepEmptyInvoices(ctx context.Context) ([]int64, error)
}

// SchedulerConfig holds job intervals
type SchedulerConfig struct {
	InvoiceSweepInterval time.Duration
	CacheFlushInterval   time.Duration
}

// JobScheduler runs the periodic maintenance jobs
type JobScheduler struct {
	scheduler gocron.Scheduler
	sweeper   InvoiceSweeper
	cacheSvc  caching.CacheService
	jobs      map[string]gocron.Job
	mu        sync.RWMutex
}

// NewJobScheduler creates a scheduler with every job registered but not
// running until Start
func NewJobScheduler(cfg SchedulerConfig, sweeper InvoiceSweeper, cacheSvc caching.CacheService) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	js := &JobScheduler{
		scheduler: scheduler,
		sweeper:   sweeper,
		cacheSvc:  cacheSvc,
		jobs:      make(map[string]gocron.Job),
	}

	if err := js.registerJobs(cfg); err != nil {
		_ = scheduler.Shutdown()
		return nil, err
	}
	return js, nil
}

// Start starts the job scheduler
func (js *JobScheduler) Start() {
	logger.GetLogger().Info("Starting background job scheduler", zap.Int("jobs", len(js.jobs)))
	js.scheduler.Start()
}

// Stop waits for running jobs and stops the scheduler
func (js *JobScheduler) Stop() error {
	logger.GetLogger().Info("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs(cfg SchedulerConfig) error {
	// a sweep that overruns its interval is skipped rather than stacked
	if err := js.addJob(InvoiceSweepJob, cfg.InvoiceSweepInterval, js.sweepEmptyInvoices,
		gocron.WithSingletonMode(gocron.LimitModeReschedule)); err != nil {
		return err
	}

	if cfg.CacheFlushInterval > 0 {
		if err := js.addJob(CacheFlushJob, cfg.CacheFlushInterval, js.flushCache); err != nil {
			return err
		}
	}
	return nil
}

func (js *JobScheduler) addJob(name string, interval time.Duration, task func() error, options ...gocron.JobOption) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	options = append(options, gocron.WithName(name))
	job, err := js.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		options...,
	)
	if err != nil {
		return fmt.Errorf("register job %s: %w", name, err)
	}

	js.jobs[name] = job
	return nil
}

func (js *JobScheduler) sweepEmptyInvoices() error {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	log := logger.GetLogger().With(zap.String("job", InvoiceSweepJob))
	removed, err := js.sweeper.SweepEmptyInvoices(logger.WithContext(ctx, log))
	if err != nil {
		log.Error("Empty invoice sweep failed", zap.Error(err))
		return err
	}
	log.Debug("Empty invoice sweep finished", zap.Int("removed", len(removed)))
	return nil
}

func (js *JobScheduler) flushCache() error {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := js.cacheSvc.InvalidateAll(ctx); err != nil {
		logger.GetLogger().Warn("Cache flush failed", zap.String("job", CacheFlushJob), zap.Error(err))
		return err
	}
	return nil
}

// JobStatus describes one scheduled job
type JobStatus struct {
	Name    string    `json:"name"`
	LastRun time.Time `json:"last_run"`
	NextRun time.Time `json:"next_run"`
}

// GetJobStatus returns information about scheduled jobs
func (js *JobScheduler) GetJobStatus() []JobStatus {
	js.mu.RLock()
	defer js.mu.RUnlock()

	statuses := make([]JobStatus, 0, len(js.jobs))
	for name, job := range js.jobs {
		status := JobStatus{Name: name}
		if lastRun, err := job.LastRun(); err == nil {
			status.LastRun = lastRun
		}
		if nextRun, err := job.NextRun(); err == nil {
			status.NextRun = nextRun
		}
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })
	return statuses
}
