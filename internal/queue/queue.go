package queue

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// TopicEngagementExecutions carries newly created queue-item IDs
const TopicEngagementExecutions = "engagement_executions"

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is an in-process queue with retry, used when no AMQP broker
// is configured
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: 3,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for job.RetryCount <= job.MaxRetries {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %+v, error: %v\n", job.RetryCount, job.MaxRetries, job.Payload, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts: %+v\n", job.MaxRetries, job.Payload)
			return // No requeue
		}

		// Backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// StartEngagementSubscriber routes queue-item IDs from the engagement topic
// into the supplied processing function. Processing errors are acked, not
// retried: a failed item is already terminal and stays failed until
// something re-queues it.
func StartEngagementSubscriber(q Queue, process func(queueItemID string) error) {
	go func() {
		err := q.Subscribe(TopicEngagementExecutions, func(payload any) error {
			id, ok := payload.(string)
			if !ok {
				log.Println("⚠️ Invalid payload type, expected string queue item ID")
				return nil
			}

			log.Println("📩 Processing queued engagement item:", id)

			if err := process(id); err != nil {
				log.Println("⚠️ Failed to process queue item:", err)
				return nil
			}

			log.Println("✅ Queue item processed successfully:", id)
			return nil
		})

		if err != nil {
			log.Println("⚠️ Failed to start subscriber for", TopicEngagementExecutions, ":", err)
		}
	}()
}
