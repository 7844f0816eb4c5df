package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/linkedlift/engagement-backend/internal/model"
)

type RuleRepositoryInterface interface {
	ListActive() ([]*model.AutomationRule, error)
	ListByUser(userID string) ([]*model.AutomationRule, error)
	GetByID(id string) (*model.AutomationRule, error)
	Create(r *model.AutomationRule) error
	SetActive(id string, active bool) error
}

type RuleRepository struct {
	DB *sql.DB
}

const ruleColumns = `id, user_id, campaign_id, trigger_type, schedule_time, keywords,
		daily_comment_limit, daily_connection_limit, auto_like, is_active, created_at, updated_at`

func (r *RuleRepository) Create(rule *model.AutomationRule) error {
	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	rule.CreatedAt = time.Now()
	query := `
		INSERT INTO automation_rules
		(id, user_id, campaign_id, trigger_type, schedule_time, keywords,
		 daily_comment_limit, daily_connection_limit, auto_like, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.DB.Exec(query,
		rule.ID, rule.UserID, rule.CampaignID, rule.TriggerType, rule.ScheduleTime,
		pq.Array(rule.Keywords), rule.DailyCommentLimit, rule.DailyConnectionLimit,
		rule.AutoLike, rule.IsActive, rule.CreatedAt,
	)
	return err
}

// ListActive returns active rules across all users. The scheduler runs with a
// service role, so no user filter applies here.
func (r *RuleRepository) ListActive() ([]*model.AutomationRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM automation_rules WHERE is_active = true`
	return r.queryRules(query)
}

func (r *RuleRepository) ListByUser(userID string) ([]*model.AutomationRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM automation_rules WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryRules(query, userID)
}

func (r *RuleRepository) queryRules(query string, args ...interface{}) ([]*model.AutomationRule, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := []*model.AutomationRule{}
	for rows.Next() {
		rule := &model.AutomationRule{}
		var keywords pq.StringArray
		if err := rows.Scan(
			&rule.ID, &rule.UserID, &rule.CampaignID, &rule.TriggerType,
			&rule.ScheduleTime, &keywords, &rule.DailyCommentLimit,
			&rule.DailyConnectionLimit, &rule.AutoLike, &rule.IsActive,
			&rule.CreatedAt, &rule.UpdatedAt,
		); err != nil {
			return nil, err
		}
		rule.Keywords = keywords
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func (r *RuleRepository) GetByID(id string) (*model.AutomationRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM automation_rules WHERE id = $1`
	rule := &model.AutomationRule{}
	var keywords pq.StringArray
	err := r.DB.QueryRow(query, id).Scan(
		&rule.ID, &rule.UserID, &rule.CampaignID, &rule.TriggerType,
		&rule.ScheduleTime, &keywords, &rule.DailyCommentLimit,
		&rule.DailyConnectionLimit, &rule.AutoLike, &rule.IsActive,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	rule.Keywords = keywords
	return rule, nil
}

func (r *RuleRepository) SetActive(id string, active bool) error {
	query := `UPDATE automation_rules SET is_active=$1, updated_at=NOW() WHERE id=$2`
	_, err := r.DB.Exec(query, active, id)
	return err
}

var _ RuleRepositoryInterface = (*RuleRepository)(nil)
