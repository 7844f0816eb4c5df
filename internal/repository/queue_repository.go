package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/linkedlift/engagement-backend/internal/model"
)

type QueueRepositoryInterface interface {
	Create(item *model.EngagementQueueItem) error
	GetByID(id string) (*model.EngagementQueueItem, error)
	MarkProcessing(id string) (bool, error)
	MarkCompleted(id, content string) error
	MarkFailed(id, errorMessage string) error
	ListDue(now time.Time, limit int) ([]model.EngagementQueueItem, error)
}

type QueueRepository struct {
	DB *sql.DB
}

const queueColumns = `id, user_id, target_id, campaign_id, rule_id, engagement_type, content,
		scheduled_for, status, error_message, processed_at, created_at`

// Create inserts a new queue item in pending status
func (r *QueueRepository) Create(item *model.EngagementQueueItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Status == "" {
		item.Status = model.QueueStatusPending
	}
	item.CreatedAt = time.Now()

	query := `
		INSERT INTO engagement_queue
		(id, user_id, target_id, campaign_id, rule_id, engagement_type, content, scheduled_for, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.DB.Exec(query,
		item.ID, item.UserID, item.TargetID, item.CampaignID, item.RuleID,
		item.EngagementType, item.Content, item.ScheduledFor, item.Status, item.CreatedAt,
	)
	return err
}

// GetByID fetches a queue item by its ID
func (r *QueueRepository) GetByID(id string) (*model.EngagementQueueItem, error) {
	query := `SELECT ` + queueColumns + ` FROM engagement_queue WHERE id=$1`
	var item model.EngagementQueueItem
	var content, errorMessage sql.NullString
	err := r.DB.QueryRow(query, id).Scan(
		&item.ID, &item.UserID, &item.TargetID, &item.CampaignID, &item.RuleID,
		&item.EngagementType, &content, &item.ScheduledFor, &item.Status,
		&errorMessage, &item.ProcessedAt, &item.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	item.Content = content.String
	item.ErrorMessage = errorMessage.String
	return &item, nil
}

// MarkProcessing claims the pending -> processing transition. It reports
// whether the claim won; a false return means another invocation already
// advanced the item past pending.
func (r *QueueRepository) MarkProcessing(id string) (bool, error) {
	query := `UPDATE engagement_queue SET status='processing' WHERE id=$1 AND status='pending'`
	res, err := r.DB.Exec(query, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// MarkCompleted records the terminal completed state along with the content
// that was actually used
func (r *QueueRepository) MarkCompleted(id, content string) error {
	query := `UPDATE engagement_queue SET status='completed', content=$1, processed_at=NOW() WHERE id=$2`
	_, err := r.DB.Exec(query, content, id)
	return err
}

// MarkFailed records the terminal failed state with the captured error
func (r *QueueRepository) MarkFailed(id, errorMessage string) error {
	query := `UPDATE engagement_queue SET status='failed', error_message=$1, processed_at=NOW() WHERE id=$2`
	_, err := r.DB.Exec(query, errorMessage, id)
	return err
}

// ListDue returns pending items whose scheduled_for has passed, oldest first.
// This is the dispatcher's feed: items stay out of it until they are due.
func (r *QueueRepository) ListDue(now time.Time, limit int) ([]model.EngagementQueueItem, error) {
	query := `SELECT ` + queueColumns + `
		FROM engagement_queue
		WHERE status='pending' AND scheduled_for <= $1
		ORDER BY scheduled_for ASC
		LIMIT $2`
	rows, err := r.DB.Query(query, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.EngagementQueueItem{}
	for rows.Next() {
		var item model.EngagementQueueItem
		var content, errorMessage sql.NullString
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.TargetID, &item.CampaignID, &item.RuleID,
			&item.EngagementType, &content, &item.ScheduledFor, &item.Status,
			&errorMessage, &item.ProcessedAt, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.Content = content.String
		item.ErrorMessage = errorMessage.String
		items = append(items, item)
	}
	return items, rows.Err()
}

var _ QueueRepositoryInterface = (*QueueRepository)(nil)
