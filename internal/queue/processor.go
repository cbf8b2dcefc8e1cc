package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"sdg-knowledge/internal/models"

	"github.com/sirupsen/logrus"
)

// SendTimeout bounds a single delivery attempt.
const SendTimeout = 10 * time.Second

// Processor drains the queue with a fixed number of workers. Each event
// gets exactly one delivery attempt; failures are logged and dropped.
type Processor struct {
	queue        *MemoryQueue
	sender       Sender
	workerCount  int
	wg           sync.WaitGroup
	startOnce    sync.Once
	shutdownOnce sync.Once
	mu           sync.Mutex
	sent         int
	failed       int
	dropped      int
}

// NewProcessor creates a new activity processor.
func NewProcessor(queue *MemoryQueue, sender Sender, workerCount int) *Processor {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Processor{
		queue:       queue,
		sender:      sender,
		workerCount: workerCount,
	}
}

// Start begins processing jobs with the configured number of workers.
// Cancelling ctx stops the workers without draining.
func (p *Processor) Start(ctx context.Context) {
	p.startOnce.Do(func() {
		for i := 0; i < p.workerCount; i++ {
			p.wg.Add(1)
			go p.worker(ctx, i)
		}
		logrus.WithField("workers", p.workerCount).Debug("Activity processor started")
	})
}

// Dispatch enqueues an event without blocking. A full or closed queue
// drops the event.
func (p *Processor) Dispatch(event models.ActivityEvent) {
	err := p.queue.Enqueue(ActivityJob{Event: event, EnqueuedAt: time.Now()})
	if err == nil {
		return
	}

	p.mu.Lock()
	p.dropped++
	p.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"activity_type": event.ActivityType,
		"page":          event.Page,
		"reason":        err.Error(),
	}).Debug("Activity event dropped")
}

// Stop closes the queue and waits for workers to deliver what is already
// buffered. It returns false if timeout elapses first; remaining events
// are abandoned.
func (p *Processor) Stop(timeout time.Duration) bool {
	p.shutdownOnce.Do(func() {
		p.queue.Close()
	})

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logrus.WithFields(p.statsFields()).Debug("Activity processor stopped")
		return true
	case <-time.After(timeout):
		logrus.WithFields(p.statsFields()).Warn("Activity processor stop timed out")
		return false
	}
}

// Stats returns delivery counters.
func (p *Processor) Stats() (sent, failed, dropped int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sent, p.failed, p.dropped
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || ctx.Err() != nil {
				logrus.WithField("worker", id).Debug("Activity worker shutting down")
				return
			}
			continue
		}
		p.processJob(job)
	}
}

func (p *Processor) processJob(job ActivityJob) {
	// Delivery uses its own deadline so buffered events still go out
	// while Stop drains.
	ctx, cancel := context.WithTimeout(context.Background(), SendTimeout)
	defer cancel()

	event := job.Event
	err := p.sender.SendActivity(ctx, &event)

	p.mu.Lock()
	if err != nil {
		p.failed++
	} else {
		p.sent++
	}
	p.mu.Unlock()

	if err != nil {
		logrus.WithFields(logrus.Fields{
			"activity_type": event.ActivityType,
			"page":          event.Page,
			"queued_for":    time.Since(job.EnqueuedAt),
		}).WithError(err).Debug("Activity event not delivered")
	}
}

func (p *Processor) statsFields() logrus.Fields {
	sent, failed, dropped := p.Stats()
	return logrus.Fields{"sent": sent, "failed": failed, "dropped": dropped}
}
