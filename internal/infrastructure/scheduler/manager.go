// Package scheduler runs periodic background jobs on robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

const defaultJobTimeout = 5 * time.Minute

// BatchJob processes one batch and returns the number of items handled.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// BatchJobFunc adapts a function to BatchJob.
type BatchJobFunc func(ctx context.Context) (int, error)

func (f BatchJobFunc) Execute(ctx context.Context) (int, error) {
	return f(ctx)
}

type SchedulerManager struct {
	cron   *cron.Cron
	logger logger.Interface

	started   bool
	startedMu sync.Mutex
}

func NewSchedulerManager(log logger.Interface) *SchedulerManager {
	return &SchedulerManager{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.Recover(cronLogger{log}), cron.SkipIfStillRunning(cronLogger{log})),
		),
		logger: log,
	}
}

// ValidateSpec reports whether spec is a standard cron expression or descriptor.
func ValidateSpec(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	return nil
}

// RegisterBroadcastDispatch runs the due-campaign dispatcher on spec (e.g. "@every 1m").
func (m *SchedulerManager) RegisterBroadcastDispatch(spec string, job BatchJob) error {
	return m.register("broadcast-dispatch", spec, job)
}

func (m *SchedulerManager) register(name, spec string, job BatchJob) error {
	_, err := m.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), defaultJobTimeout)
		defer cancel()
		m.run(ctx, name, job)
	})
	if err != nil {
		return fmt.Errorf("failed to register %s job: %w", name, err)
	}

	m.logger.Infow("registered scheduled job", "job", name, "spec", spec)
	return nil
}

func (m *SchedulerManager) run(ctx context.Context, name string, job BatchJob) {
	start := time.Now()
	count, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("scheduled job failed",
			"job", name,
			"error", err,
			"duration", time.Since(start),
		)
		return
	}
	if count > 0 {
		m.logger.Infow("scheduled job processed items",
			"job", name,
			"count", count,
			"duration", time.Since(start),
		)
	}
}

func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()
	if m.started {
		return
	}
	m.cron.Start()
	m.started = true
	m.logger.Infow("scheduler started", "jobs", len(m.cron.Entries()))
}

// Stop waits for running jobs until ctx is done.
func (m *SchedulerManager) Stop(ctx context.Context) error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()
	if !m.started {
		return nil
	}
	m.started = false

	select {
	case <-m.cron.Stop().Done():
		m.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler shutdown: %w", ctx.Err())
	}
}

// cronLogger bridges cron's logr-style logger to logger.Interface.
type cronLogger struct {
	log logger.Interface
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
