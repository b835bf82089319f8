package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// Worker runs until its context is done
type Worker interface {
	Run(ctx context.Context) error
}

type OnWork func() error

// BaseJob cron-driven job
type BaseJob struct {
	Cron      *cron.Cron
	IsRunning bool
	OnWork    OnWork
}

func (job *BaseJob) Start() error {
	job.Cron.Start()
	return nil
}

func (job *BaseJob) Stop() error {
	job.Cron.Stop()
	return nil
}

func (job *BaseJob) Run() {
	if job.IsRunning {
		return
	}

	job.IsRunning = true

	job.OnWork()

	job.IsRunning = false
}

// TickWorker ticking job
type TickWorker struct {
	Delay    time.Duration
	ErrDelay time.Duration
}

// StartTick tick on work until ctx done
func (w *TickWorker) StartTick(ctx context.Context, onWork func(ctx context.Context) error) error {
	delay := w.Delay
	if delay <= 0 {
		delay = time.Second
	}

	errDelay := w.ErrDelay
	if errDelay <= 0 {
		errDelay = 3 * time.Second
	}

	dur := time.Millisecond
	timer := time.NewTimer(dur)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			if err := onWork(ctx); err != nil {
				dur = errDelay
			} else {
				dur = delay
			}

			timer.Reset(dur)
		}
	}
}
