package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/linkedlift/engagement-backend/internal/model"
)

type HistoryRepositoryInterface interface {
	Create(h *model.EngagementHistory) error
	ListRecent(userID string, limit int) ([]model.EngagementHistory, error)
}

type HistoryRepository struct {
	DB *sql.DB
}

// Create appends a history row. The unique index on queue_item_id makes the
// insert a no-op when the item was already recorded, so reprocessing a
// completed item can never duplicate history.
func (r *HistoryRepository) Create(h *model.EngagementHistory) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.SentAt.IsZero() {
		h.SentAt = time.Now()
	}
	query := `
		INSERT INTO engagement_history
		(id, user_id, target_id, campaign_id, queue_item_id, engagement_type, content, status, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (queue_item_id) DO NOTHING
	`
	_, err := r.DB.Exec(query,
		h.ID, h.UserID, h.TargetID, h.CampaignID, h.QueueItemID,
		h.EngagementType, h.Content, h.Status, h.SentAt,
	)
	return err
}

func (r *HistoryRepository) ListRecent(userID string, limit int) ([]model.EngagementHistory, error) {
	query := `
		SELECT id, user_id, target_id, campaign_id, queue_item_id, engagement_type, content, status, sent_at
		FROM engagement_history
		WHERE user_id = $1
		ORDER BY sent_at DESC
		LIMIT $2
	`
	rows, err := r.DB.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []model.EngagementHistory{}
	for rows.Next() {
		var h model.EngagementHistory
		if err := rows.Scan(&h.ID, &h.UserID, &h.TargetID, &h.CampaignID, &h.QueueItemID,
			&h.EngagementType, &h.Content, &h.Status, &h.SentAt); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

var _ HistoryRepositoryInterface = (*HistoryRepository)(nil)
