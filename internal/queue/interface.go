package queue

import (
	"context"

	"sdg-knowledge/internal/models"
)

//go:generate mockgen -destination=mocks/mock_sender.go -package=mocks sdg-knowledge/internal/queue Sender

// Queue defines the interface for activity job queue operations.
type Queue interface {
	// Enqueue adds a job to the queue.
	Enqueue(job ActivityJob) error
	// Dequeue removes and returns the next job from the queue.
	Dequeue(ctx context.Context) (ActivityJob, error)
	// Close closes the queue.
	Close()
	// Len returns the current number of jobs in the queue.
	Len() int
	// Capacity returns the queue capacity.
	Capacity() int
}

// Sender delivers one activity event to the API.
type Sender interface {
	SendActivity(ctx context.Context, event *models.ActivityEvent) error
}

// Ensure MemoryQueue implements Queue interface
var _ Queue = (*MemoryQueue)(nil)
