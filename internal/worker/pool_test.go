package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingJob struct {
	executed *int32
	done     *sync.WaitGroup
	err      error
}

func (j *countingJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	if j.done != nil {
		j.done.Done()
	}
	return j.err
}

func TestPoolProcessesEnqueuedJobs(t *testing.T) {
	var executed int32
	var done sync.WaitGroup
	done.Add(2)

	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	job := &countingJob{executed: &executed, done: &done}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))

	done.Wait()
	assert.Equal(t, int32(2), atomic.LoadInt32(&executed))
}

func TestPoolSurvivesFailingJob(t *testing.T) {
	var executed int32
	var done sync.WaitGroup
	done.Add(2)

	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	assert.True(t, pool.Enqueue(&countingJob{executed: &executed, done: &done, err: errors.New("boom")}))
	assert.True(t, pool.Enqueue(&countingJob{executed: &executed, done: &done}))

	done.Wait()
	assert.Equal(t, int32(2), atomic.LoadInt32(&executed))
}

type blockingJob struct {
	release chan struct{}
}

func (j *blockingJob) Process(ctx context.Context) error {
	<-j.release
	return nil
}

func TestPoolEnqueueRejectsWhenFull(t *testing.T) {
	release := make(chan struct{})
	pool := NewPool(1, 1)
	pool.Start()

	// Occupy the single worker, then fill the single queue slot.
	assert.True(t, pool.Enqueue(&blockingJob{release: release}))

	// The worker may not have picked up the first job yet; keep
	// offering until the queue slot itself is taken.
	assert.Eventually(t, func() bool {
		return pool.Enqueue(&blockingJob{release: release})
	}, time.Second, 5*time.Millisecond)

	assert.False(t, pool.Enqueue(&blockingJob{release: release}), "a full queue rejects instead of blocking")

	close(release)
	pool.Stop()
}

func TestPoolEnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()

	var executed int32
	assert.False(t, pool.Enqueue(&countingJob{executed: &executed}))
}
