// internal/model/engagement_queue_item.go
package model

import "time"

// Engagement types
const (
	EngagementComment    = "comment"
	EngagementConnection = "connection"
	EngagementLike       = "like"
)

// Queue item statuses. Transitions are monotonic:
// pending -> processing -> completed | failed.
const (
	QueueStatusPending    = "pending"
	QueueStatusProcessing = "processing"
	QueueStatusCompleted  = "completed"
	QueueStatusFailed     = "failed"
)

type EngagementQueueItem struct {
	ID             string     `db:"id" json:"id"`
	UserID         string     `db:"user_id" json:"user_id"`
	TargetID       string     `db:"target_id" json:"target_id"`
	CampaignID     string     `db:"campaign_id" json:"campaign_id"`
	RuleID         *string    `db:"rule_id" json:"rule_id,omitempty"`
	EngagementType string     `db:"engagement_type" json:"engagement_type"` // comment, connection, like
	Content        string     `db:"content" json:"content,omitempty"`
	ScheduledFor   time.Time  `db:"scheduled_for" json:"scheduled_for"`
	Status         string     `db:"status" json:"status"`
	ErrorMessage   string     `db:"error_message" json:"error_message,omitempty"`
	ProcessedAt    *time.Time `db:"processed_at" json:"processed_at,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}
