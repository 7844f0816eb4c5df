package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/linkedlift/engagement-backend/internal/model"
)

// TargetRepositoryInterface defines methods used by the scheduler and processor
type TargetRepositoryInterface interface {
	GetByID(id string) (*model.EngagementTarget, error)
	ListActiveByCampaign(campaignID string, limit int) ([]model.EngagementTarget, error)
	ListByCampaign(campaignID string) ([]model.EngagementTarget, error)
	Create(t *model.EngagementTarget) error
	RecordEngagement(id string) error
}

// TargetRepository is the concrete implementation
type TargetRepository struct {
	DB *sql.DB
}

const targetColumns = `id, user_id, campaign_id, name, company, industry, position, status, engagement_count, created_at, updated_at`

// GetByID fetches a target by ID
func (r *TargetRepository) GetByID(id string) (*model.EngagementTarget, error) {
	query := `SELECT ` + targetColumns + ` FROM engagement_targets WHERE id = $1`
	row := r.DB.QueryRow(query, id)

	var t model.EngagementTarget
	if err := row.Scan(&t.ID, &t.UserID, &t.CampaignID, &t.Name, &t.Company, &t.Industry,
		&t.Position, &t.Status, &t.EngagementCount, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &t, nil
}

// ListActiveByCampaign fetches active targets for a campaign, capped at limit.
// Ordering is stable so the planner's index-based caps are deterministic.
func (r *TargetRepository) ListActiveByCampaign(campaignID string, limit int) ([]model.EngagementTarget, error) {
	query := `SELECT ` + targetColumns + `
        FROM engagement_targets
        WHERE campaign_id = $1 AND status = 'active'
        ORDER BY created_at ASC
        LIMIT $2`
	return r.queryTargets(query, campaignID, limit)
}

// ListByCampaign fetches all targets for a campaign
func (r *TargetRepository) ListByCampaign(campaignID string) ([]model.EngagementTarget, error) {
	query := `SELECT ` + targetColumns + ` FROM engagement_targets WHERE campaign_id = $1 ORDER BY created_at DESC`
	return r.queryTargets(query, campaignID)
}

func (r *TargetRepository) queryTargets(query string, args ...interface{}) ([]model.EngagementTarget, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	targets := []model.EngagementTarget{}
	for rows.Next() {
		var t model.EngagementTarget
		if err := rows.Scan(&t.ID, &t.UserID, &t.CampaignID, &t.Name, &t.Company, &t.Industry,
			&t.Position, &t.Status, &t.EngagementCount, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

// Create inserts a new target
func (r *TargetRepository) Create(t *model.EngagementTarget) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = "active"
	}
	t.CreatedAt = time.Now()
	query := `
        INSERT INTO engagement_targets
        (id, user_id, campaign_id, name, company, industry, position, status, engagement_count, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9)
    `
	_, err := r.DB.Exec(query, t.ID, t.UserID, t.CampaignID, t.Name, t.Company, t.Industry,
		t.Position, t.Status, t.CreatedAt)
	return err
}

// RecordEngagement bumps the engagement counter and promotes pending targets
// to active after their first completed engagement.
func (r *TargetRepository) RecordEngagement(id string) error {
	query := `
        UPDATE engagement_targets
        SET engagement_count = engagement_count + 1,
            status = CASE WHEN status = 'pending' THEN 'active' ELSE status END,
            updated_at = NOW()
        WHERE id = $1
    `
	_, err := r.DB.Exec(query, id)
	return err
}

var _ TargetRepositoryInterface = (*TargetRepository)(nil)
