// internal/model/engagement_target.go
package model

import "time"

type EngagementTarget struct {
	ID              string     `db:"id" json:"id"`
	UserID          string     `db:"user_id" json:"user_id"`
	CampaignID      string     `db:"campaign_id" json:"campaign_id"`
	Name            string     `db:"name" json:"name"`
	Company         string     `db:"company" json:"company"`
	Industry        string     `db:"industry" json:"industry"`
	Position        string     `db:"position" json:"position"`
	Status          string     `db:"status" json:"status"` // pending, active, connected, engaged
	EngagementCount int        `db:"engagement_count" json:"engagement_count"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
