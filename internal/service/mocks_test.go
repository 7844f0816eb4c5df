package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/linkedlift/engagement-backend/internal/generator"
	"github.com/linkedlift/engagement-backend/internal/model"
)

// --- Mock repositories ---

type mockRuleRepo struct {
	rules []*model.AutomationRule
	err   error
}

func (m *mockRuleRepo) ListActive() ([]*model.AutomationRule, error) { return m.rules, m.err }
func (m *mockRuleRepo) ListByUser(userID string) ([]*model.AutomationRule, error) {
	return m.rules, m.err
}
func (m *mockRuleRepo) GetByID(id string) (*model.AutomationRule, error) {
	for _, r := range m.rules {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}
func (m *mockRuleRepo) Create(r *model.AutomationRule) error   { return nil }
func (m *mockRuleRepo) SetActive(id string, active bool) error { return nil }

type mockTargetRepo struct {
	mu         sync.Mutex
	targets    []model.EngagementTarget
	gotLimit   int
	recordedOn []string
}

func (m *mockTargetRepo) GetByID(id string) (*model.EngagementTarget, error) {
	for i := range m.targets {
		if m.targets[i].ID == id {
			return &m.targets[i], nil
		}
	}
	return nil, nil
}

func (m *mockTargetRepo) ListActiveByCampaign(campaignID string, limit int) ([]model.EngagementTarget, error) {
	m.gotLimit = limit
	if limit > len(m.targets) {
		limit = len(m.targets)
	}
	return m.targets[:limit], nil
}

func (m *mockTargetRepo) ListByCampaign(campaignID string) ([]model.EngagementTarget, error) {
	return m.targets, nil
}

func (m *mockTargetRepo) Create(t *model.EngagementTarget) error { return nil }

func (m *mockTargetRepo) RecordEngagement(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordedOn = append(m.recordedOn, id)
	return nil
}

type mockQueueRepo struct {
	mu        sync.Mutex
	items     map[string]*model.EngagementQueueItem
	created   []*model.EngagementQueueItem
	createErr func(item *model.EngagementQueueItem) error
}

func newMockQueueRepo(items ...*model.EngagementQueueItem) *mockQueueRepo {
	m := &mockQueueRepo{items: map[string]*model.EngagementQueueItem{}}
	for _, item := range items {
		m.items[item.ID] = item
	}
	return m
}

func (m *mockQueueRepo) Create(item *model.EngagementQueueItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		if err := m.createErr(item); err != nil {
			return err
		}
	}
	if item.ID == "" {
		item.ID = "generated-" + string(rune('a'+len(m.created)))
	}
	m.created = append(m.created, item)
	m.items[item.ID] = item
	return nil
}

func (m *mockQueueRepo) GetByID(id string) (*model.EngagementQueueItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	clone := *item
	return &clone, nil
}

func (m *mockQueueRepo) MarkProcessing(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok || item.Status != model.QueueStatusPending {
		return false, nil
	}
	item.Status = model.QueueStatusProcessing
	return true, nil
}

func (m *mockQueueRepo) MarkCompleted(id, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id].Status = model.QueueStatusCompleted
	m.items[id].Content = content
	return nil
}

func (m *mockQueueRepo) MarkFailed(id, errorMessage string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id].Status = model.QueueStatusFailed
	m.items[id].ErrorMessage = errorMessage
	return nil
}

func (m *mockQueueRepo) ListDue(now time.Time, limit int) ([]model.EngagementQueueItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	due := []model.EngagementQueueItem{}
	for _, item := range m.items {
		if item.Status == model.QueueStatusPending && !item.ScheduledFor.After(now) {
			due = append(due, *item)
		}
		if len(due) == limit {
			break
		}
	}
	return due, nil
}

type mockHistoryRepo struct {
	mu   sync.Mutex
	rows []model.EngagementHistory
}

// Create mirrors the unique index on queue_item_id: inserting a second row
// for the same queue item is a no-op.
func (m *mockHistoryRepo) Create(h *model.EngagementHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.QueueItemID == h.QueueItemID {
			return nil
		}
	}
	m.rows = append(m.rows, *h)
	return nil
}

func (m *mockHistoryRepo) ListRecent(userID string, limit int) ([]model.EngagementHistory, error) {
	return m.rows, nil
}

// --- Mock text generator ---

type mockGenerator struct {
	mu           sync.Mutex
	comment      string
	message      string
	err          error
	commentCalls int
	messageCalls int
}

func (m *mockGenerator) GenerateComment(ctx context.Context, in generator.CommentContext) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commentCalls++
	return m.comment, m.err
}

func (m *mockGenerator) GenerateConnectionMessage(ctx context.Context, in generator.ConnectionContext) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messageCalls++
	return m.message, m.err
}
