package service

import (
	"context"
	"log"
)

// QueueProcessor defines the method the worker needs
type QueueProcessor interface {
	ProcessQueueItem(ctx context.Context, id string) (*EngagementResult, error)
}

// Worker drains queue-item IDs from a channel and runs the processor on each
type Worker struct {
	Processor QueueProcessor
	JobChan   <-chan string
}

// Constructor
func NewWorker(processor QueueProcessor, jobChan <-chan string) *Worker {
	return &Worker{
		Processor: processor,
		JobChan:   jobChan,
	}
}

// Start begins processing jobs
func (w *Worker) Start() {
	for id := range w.JobChan {
		result, err := w.Processor.ProcessQueueItem(context.Background(), id)
		if err != nil {
			log.Println("⚠️ failed to process queue item", id, ":", err)
			continue
		}
		log.Printf("✅ Processed %s engagement for %s (%s)\n", result.Type, result.TargetName, result.Status)
	}
}
