// internal/model/automation_rule.go
package model

import "time"

// Trigger types for automation rules
const (
	TriggerSchedule = "schedule"
	TriggerKeyword  = "keyword"
	TriggerManual   = "manual"
)

type AutomationRule struct {
	ID                   string     `db:"id" json:"id"`
	UserID               string     `db:"user_id" json:"user_id"`
	CampaignID           string     `db:"campaign_id" json:"campaign_id"`
	TriggerType          string     `db:"trigger_type" json:"trigger_type"` // schedule, keyword, manual
	ScheduleTime         *string    `db:"schedule_time" json:"schedule_time,omitempty"` // "HH:MM"
	Keywords             []string   `db:"keywords" json:"keywords,omitempty"`
	DailyCommentLimit    int        `db:"daily_comment_limit" json:"daily_comment_limit"`
	DailyConnectionLimit int        `db:"daily_connection_limit" json:"daily_connection_limit"`
	AutoLike             bool       `db:"auto_like" json:"auto_like"`
	IsActive             bool       `db:"is_active" json:"is_active"`
	CreatedAt            time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt            *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
