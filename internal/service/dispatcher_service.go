// internal/service/dispatcher_service.go
package service

import (
	"log"
	"time"

	"github.com/linkedlift/engagement-backend/internal/queue"
	"github.com/linkedlift/engagement-backend/internal/repository"
)

// DispatcherService publishes pending queue items for execution once their
// scheduled_for time has passed. The scheduler only inserts rows; this is the
// single place items enter the execution queue, so nothing runs early.
type DispatcherService struct {
	QueueRepo repository.QueueRepositoryInterface
	Queue     queue.Queue
	Now       func() time.Time
}

// DispatchDue publishes the IDs of up to batchSize due items. Publishing is
// at-least-once: an item stays pending until a consumer claims it, so a slow
// consumer may see the same ID on consecutive runs. The processor's
// conditional claim keeps execution at-most-once regardless.
func (s *DispatcherService) DispatchDue(batchSize int) (int, error) {
	items, err := s.QueueRepo.ListDue(s.now(), batchSize)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, item := range items {
		if err := s.Queue.Publish(queue.TopicEngagementExecutions, item.ID); err != nil {
			log.Println("⚠️ failed to publish queue item", item.ID, ":", err)
			continue
		}
		published++
	}
	return published, nil
}

// Start runs DispatchDue on every tick until stop is closed.
func (s *DispatcherService) Start(interval time.Duration, batchSize int, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := s.DispatchDue(batchSize)
			if err != nil {
				log.Println("⚠️ dispatcher run failed:", err)
				continue
			}
			if n > 0 {
				log.Printf("📤 Dispatched %d due engagement items\n", n)
			}
		case <-stop:
			return
		}
	}
}

func (s *DispatcherService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
