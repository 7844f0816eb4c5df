package queue_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkedlift/engagement-backend/internal/queue"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestPublishWithoutSubscribers(t *testing.T) {
	q := queue.NewInMemoryQueue()

	err := q.Publish("orphan_topic", "payload")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no subscribers")
}

func TestPublishDeliversToSubscriber(t *testing.T) {
	q := queue.NewInMemoryQueue()

	var mu sync.Mutex
	var got []any
	err := q.Subscribe("deliveries", func(payload any) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, payload)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, q.Publish("deliveries", "item-1"))
	require.NoError(t, q.Publish("deliveries", "item-2"))

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	})

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []any{"item-1", "item-2"}, got)
}

func TestPublishRetriesFailedJobs(t *testing.T) {
	q := queue.NewInMemoryQueue()

	var mu sync.Mutex
	attempts := 0
	err := q.Subscribe("flaky", func(payload any) error {
		mu.Lock()
		defer mu.Unlock()
		attempts++
		if attempts < 2 {
			return fmt.Errorf("transient failure")
		}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, q.Publish("flaky", "item-1"))

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return attempts == 2
	})
}

func TestStartEngagementSubscriberAcksProcessingErrors(t *testing.T) {
	q := queue.NewInMemoryQueue()

	var mu sync.Mutex
	var processed []string
	queue.StartEngagementSubscriber(q, func(queueItemID string) error {
		mu.Lock()
		defer mu.Unlock()
		processed = append(processed, queueItemID)
		return fmt.Errorf("executor blew up")
	})

	// The subscriber registers asynchronously.
	waitFor(t, func() bool {
		return q.Publish(queue.TopicEngagementExecutions, "item-1") == nil
	})

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(processed) >= 1
	})

	// A processing error is acked, never retried.
	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"item-1"}, processed)
}

func TestStartEngagementSubscriberIgnoresBadPayloads(t *testing.T) {
	q := queue.NewInMemoryQueue()

	var mu sync.Mutex
	calls := 0
	queue.StartEngagementSubscriber(q, func(queueItemID string) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return nil
	})

	waitFor(t, func() bool {
		return q.Publish(queue.TopicEngagementExecutions, 12345) == nil
	})

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, calls)
}
