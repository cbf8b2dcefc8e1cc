// Package queue buffers activity events in memory and delivers them from
// a small worker pool.
package queue

import (
	"context"
	"sync"
	"time"

	"sdg-knowledge/internal/models"
)

// ActivityJob is one event waiting to be sent.
type ActivityJob struct {
	Event      models.ActivityEvent
	EnqueuedAt time.Time
}

// MemoryQueue is a bounded in-memory job queue.
type MemoryQueue struct {
	jobs     chan ActivityJob
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a new in-memory queue with the given capacity.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		jobs:     make(chan ActivityJob, capacity),
		capacity: capacity,
	}
}

// Enqueue adds a job without blocking. Returns error if queue is full or
// closed. The read lock is held for the whole send so Close cannot close
// the channel underneath it.
func (q *MemoryQueue) Enqueue(job ActivityJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue returns the next job, blocking until one is available. Jobs
// buffered before Close are still returned; ErrQueueClosed follows once
// the buffer is empty.
func (q *MemoryQueue) Dequeue(ctx context.Context) (ActivityJob, error) {
	select {
	case <-ctx.Done():
		return ActivityJob{}, ctx.Err()
	case job, ok := <-q.jobs:
		if !ok {
			return ActivityJob{}, ErrQueueClosed
		}
		return job, nil
	}
}

// Close closes the queue. No more jobs can be enqueued after closing.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Len returns the current number of jobs in the queue.
func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}

// Capacity returns the queue capacity.
func (q *MemoryQueue) Capacity() int {
	return q.capacity
}
