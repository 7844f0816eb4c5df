// internal/model/engagement_history.go
package model

import "time"

// EngagementHistory is an append-only record of an executed engagement.
// At most one row exists per queue item.
type EngagementHistory struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	TargetID       string    `db:"target_id" json:"target_id"`
	CampaignID     string    `db:"campaign_id" json:"campaign_id"`
	QueueItemID    string    `db:"queue_item_id" json:"queue_item_id"`
	EngagementType string    `db:"engagement_type" json:"engagement_type"`
	Content        string    `db:"content" json:"content,omitempty"`
	Status         string    `db:"status" json:"status"` // sent
	SentAt         time.Time `db:"sent_at" json:"sent_at"`
}
