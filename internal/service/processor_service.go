// internal/service/processor_service.go
package service

import (
	"context"
	"log"

	appErrors "github.com/linkedlift/engagement-backend/internal/errors"
	"github.com/linkedlift/engagement-backend/internal/metrics"
	"github.com/linkedlift/engagement-backend/internal/model"
	"github.com/linkedlift/engagement-backend/internal/repository"
)

// ProcessorService executes exactly one queue item end-to-end and leaves it
// in a terminal, observable state.
type ProcessorService struct {
	QueueRepo   repository.QueueRepositoryInterface
	TargetRepo  repository.TargetRepositoryInterface
	HistoryRepo repository.HistoryRepositoryInterface
	Executors   map[string]EngagementExecutor
}

func NewProcessorService(
	queueRepo repository.QueueRepositoryInterface,
	targetRepo repository.TargetRepositoryInterface,
	historyRepo repository.HistoryRepositoryInterface,
	gen TextGenerator,
) *ProcessorService {
	return &ProcessorService{
		QueueRepo:   queueRepo,
		TargetRepo:  targetRepo,
		HistoryRepo: historyRepo,
		Executors: map[string]EngagementExecutor{
			model.EngagementComment:    &CommentExecutor{Generator: gen},
			model.EngagementConnection: &ConnectionExecutor{},
			model.EngagementLike:       &LikeExecutor{},
		},
	}
}

// ProcessQueueItem advances one item through
// pending -> processing -> completed|failed. The claim is an atomic
// conditional update, so concurrent invocations against the same ID execute
// the engagement at most once.
func (s *ProcessorService) ProcessQueueItem(ctx context.Context, id string) (*EngagementResult, error) {
	item, err := s.QueueRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, appErrors.NewNotFound("queue item", id)
	}

	target, err := s.TargetRepo.GetByID(item.TargetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, appErrors.NewNotFound("target", item.TargetID)
	}

	claimed, err := s.QueueRepo.MarkProcessing(id)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, appErrors.NewQueueItemNotPending(id, item.Status)
	}

	result, err := s.execute(ctx, item, target)
	if err != nil {
		if markErr := s.QueueRepo.MarkFailed(id, err.Error()); markErr != nil {
			log.Println("⚠️ failed to mark queue item failed:", markErr)
		}
		metrics.EngagementsProcessed.WithLabelValues(model.QueueStatusFailed).Inc()
		return nil, err
	}

	content := result.UsedContent()
	if err := s.QueueRepo.MarkCompleted(id, content); err != nil {
		return nil, err
	}
	metrics.EngagementsProcessed.WithLabelValues(model.QueueStatusCompleted).Inc()

	// History and the target counter are best effort: the engagement itself
	// already completed.
	history := &model.EngagementHistory{
		UserID:         item.UserID,
		TargetID:       item.TargetID,
		CampaignID:     item.CampaignID,
		QueueItemID:    item.ID,
		EngagementType: item.EngagementType,
		Content:        content,
		Status:         "sent",
	}
	if err := s.HistoryRepo.Create(history); err != nil {
		log.Println("⚠️ failed to write engagement history for", item.ID, ":", err)
	}
	if err := s.TargetRepo.RecordEngagement(target.ID); err != nil {
		log.Println("⚠️ failed to record engagement on target", target.ID, ":", err)
	}

	return result, nil
}

func (s *ProcessorService) execute(ctx context.Context, item *model.EngagementQueueItem, target *model.EngagementTarget) (*EngagementResult, error) {
	executor, ok := s.Executors[item.EngagementType]
	if !ok {
		return nil, appErrors.NewUnknownEngagementType(item.EngagementType)
	}
	return executor.Execute(ctx, item, target)
}
