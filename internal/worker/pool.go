// Package worker provides the bounded pool that drains queued
// screenshot scans off the Discord event goroutines.
package worker

import (
	"context"
	"sync"

	"github.com/lootgrid/lootgrid/internal/logger"
)

// Job is a unit of background work.
type Job interface {
	Process(ctx context.Context) error
}

// Pool executes jobs on a fixed set of goroutines over a bounded
// queue. Enqueue never blocks the caller; a full queue rejects the
// job instead.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}

	stopOnce sync.Once
}

// NewPool creates a worker pool. Call Start before enqueueing.
func NewPool(workers int, queueSize int) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			ctx := context.Background()
			if err := job.Process(ctx); err != nil {
				logger.FromContext(ctx).Error(LogMsgJobFailed, "error", err)
			}
		case <-p.quit:
			return
		}
	}
}

// Enqueue offers a job to the pool without blocking. It reports false
// when the queue is full or the pool has been stopped.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}

	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop signals the workers and waits for in-flight jobs to finish.
// Jobs still sitting in the queue are abandoned.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		p.wg.Wait()
	})
}
