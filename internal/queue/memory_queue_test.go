package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"sdg-knowledge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageView(page string) ActivityJob {
	return ActivityJob{Event: models.ActivityEvent{ActivityType: models.ActivityPageView, Page: page}}
}

func TestNewMemoryQueue(t *testing.T) {
	q := NewMemoryQueue(10)

	assert.Equal(t, 10, q.Capacity())
	assert.Equal(t, 0, q.Len())
}

func TestMemoryQueue_Enqueue(t *testing.T) {
	t.Run("enqueues up to capacity", func(t *testing.T) {
		q := NewMemoryQueue(3)

		for i := 0; i < 3; i++ {
			assert.NoError(t, q.Enqueue(pageView("Home")))
		}

		assert.Equal(t, 3, q.Len())
	})

	t.Run("returns error when queue is full", func(t *testing.T) {
		q := NewMemoryQueue(2)
		_ = q.Enqueue(pageView("a"))
		_ = q.Enqueue(pageView("b"))

		err := q.Enqueue(pageView("c"))

		assert.Equal(t, ErrQueueFull, err)
		assert.Equal(t, 2, q.Len())
	})

	t.Run("returns error when queue is closed", func(t *testing.T) {
		q := NewMemoryQueue(10)
		q.Close()

		assert.Equal(t, ErrQueueClosed, q.Enqueue(pageView("Home")))
	})
}

func TestMemoryQueue_Dequeue(t *testing.T) {
	t.Run("dequeues in FIFO order", func(t *testing.T) {
		q := NewMemoryQueue(10)
		_ = q.Enqueue(pageView("first"))
		_ = q.Enqueue(pageView("second"))

		ctx := context.Background()
		first, _ := q.Dequeue(ctx)
		second, _ := q.Dequeue(ctx)

		assert.Equal(t, "first", first.Event.Page)
		assert.Equal(t, "second", second.Event.Page)
	})

	t.Run("returns error when context is cancelled", func(t *testing.T) {
		q := NewMemoryQueue(10)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := q.Dequeue(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("buffered jobs survive close", func(t *testing.T) {
		q := NewMemoryQueue(10)
		_ = q.Enqueue(pageView("pending"))
		q.Close()

		job, err := q.Dequeue(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "pending", job.Event.Page)

		_, err = q.Dequeue(context.Background())
		assert.Equal(t, ErrQueueClosed, err)
	})

	t.Run("blocks until a job arrives", func(t *testing.T) {
		q := NewMemoryQueue(1)
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		go func() {
			time.Sleep(20 * time.Millisecond)
			_ = q.Enqueue(pageView("late"))
		}()

		job, err := q.Dequeue(ctx)
		require.NoError(t, err)
		assert.Equal(t, "late", job.Event.Page)
	})
}

func TestMemoryQueue_CloseRace(t *testing.T) {
	q := NewMemoryQueue(100)
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_ = q.Enqueue(pageView("x"))
			}
		}()
	}
	q.Close()
	q.Close()
	wg.Wait()

	assert.Equal(t, ErrQueueClosed, q.Enqueue(pageView("y")))
}
