// internal/service/scheduler_service.go
package service

import (
	"log"
	"time"

	"github.com/linkedlift/engagement-backend/internal/metrics"
	"github.com/linkedlift/engagement-backend/internal/model"
	"github.com/linkedlift/engagement-backend/internal/repository"
)

// scheduleSpreadMinutes bounds the random delay before a scheduled action
// becomes due, so a rule's actions don't all land at the same instant.
const scheduleSpreadMinutes = 480

type SchedulerService struct {
	RuleRepo   repository.RuleRepositoryInterface
	TargetRepo repository.TargetRepositoryInterface
	QueueRepo  repository.QueueRepositoryInterface
	Trigger    *TriggerEvaluator
	Rand       Rand
	Now        func() time.Time
}

// Result struct for Run
type SchedulerResult struct {
	RulesProcessed int `json:"rulesProcessed"`
	TotalScheduled int `json:"totalScheduled"`
}

// Run evaluates every active rule once and schedules engagement actions for
// the rules whose trigger fires. Insert failures are logged and skipped so a
// single bad row never aborts the run.
func (s *SchedulerService) Run() (*SchedulerResult, error) {
	metrics.SchedulerRuns.Inc()

	rules, err := s.RuleRepo.ListActive()
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := &SchedulerResult{RulesProcessed: len(rules)}

	for _, rule := range rules {
		if !s.Trigger.ShouldTrigger(rule, now) {
			continue
		}
		result.TotalScheduled += s.scheduleForRule(rule, now)
	}

	return result, nil
}

// scheduleForRule picks eligible targets for a triggered rule and inserts one
// queue item per planned action. Returns the number of items created.
func (s *SchedulerService) scheduleForRule(rule *model.AutomationRule, now time.Time) int {
	// The fetch is capped at the combined daily limits. This caps targets
	// considered, not actions: with lopsided limits the smaller cap still
	// applies per type below.
	limit := rule.DailyCommentLimit + rule.DailyConnectionLimit
	targets, err := s.TargetRepo.ListActiveByCampaign(rule.CampaignID, limit)
	if err != nil {
		log.Println("⚠️ failed to fetch targets for campaign", rule.CampaignID, ":", err)
		return 0
	}

	scheduled := 0
	for i, target := range targets {
		if i < rule.DailyCommentLimit {
			scheduled += s.enqueue(rule, &target, model.EngagementComment, now)
		}
		if i < rule.DailyConnectionLimit && s.Rand.Float64() > 0.7 {
			scheduled += s.enqueue(rule, &target, model.EngagementConnection, now)
		}
		if rule.AutoLike && s.Rand.Float64() > 0.5 {
			scheduled += s.enqueue(rule, &target, model.EngagementLike, now)
		}
	}
	return scheduled
}

// enqueue inserts one queue item, best effort. Returns 1 on success, 0 on a
// logged failure. Items are only inserted here; the dispatcher publishes them
// for execution once scheduled_for passes.
func (s *SchedulerService) enqueue(rule *model.AutomationRule, target *model.EngagementTarget, engagementType string, now time.Time) int {
	offset := time.Duration(s.Rand.Float64() * scheduleSpreadMinutes * float64(time.Minute))
	item := &model.EngagementQueueItem{
		UserID:         rule.UserID,
		TargetID:       target.ID,
		CampaignID:     rule.CampaignID,
		RuleID:         &rule.ID,
		EngagementType: engagementType,
		ScheduledFor:   now.Add(offset),
		Status:         model.QueueStatusPending,
	}

	if err := s.QueueRepo.Create(item); err != nil {
		log.Println("⚠️ failed to enqueue", engagementType, "for target", target.ID, ":", err)
		return 0
	}

	metrics.EngagementsScheduled.WithLabelValues(engagementType).Inc()
	return 1
}

func (s *SchedulerService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
