// internal/service/campaign_service.go
package service

import (
	"time"

	"github.com/linkedlift/engagement-backend/internal/model"
	"github.com/linkedlift/engagement-backend/internal/repository"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
}

type CampaignDetails struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Name      string         `json:"name"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
	Stats     map[string]int `json:"stats"`
}

func (s *CampaignService) CreateCampaign(userID, name, status string) (*model.Campaign, error) {
	c := &model.Campaign{
		UserID: userID,
		Name:   name,
		Status: status,
	}
	if err := s.CampaignRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCampaigns fetches a user's campaigns with pagination
func (s *CampaignService) ListCampaigns(userID string, page, pageSize int, status string) ([]model.Campaign, map[string]int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize

	ptrs, total, err := s.CampaignRepo.ListCampaigns(userID, offset, pageSize, status)
	if err != nil {
		return nil, nil, err
	}

	campaigns := make([]model.Campaign, len(ptrs))
	for i, c := range ptrs {
		campaigns[i] = *c
	}

	totalPages := (total + pageSize - 1) / pageSize
	pagination := map[string]int{
		"page":        page,
		"page_size":   pageSize,
		"total_count": total,
		"total_pages": totalPages,
	}

	return campaigns, pagination, nil
}

// GetCampaignDetailsWithStats fetches a campaign along with its engagement
// queue counts by status
func (s *CampaignService) GetCampaignDetailsWithStats(campaignID string) (*CampaignDetails, error) {
	campaign, err := s.CampaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, err
	}

	stats, err := s.CampaignRepo.GetEngagementStats(campaignID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, count := range stats {
		total += count
	}
	stats["total"] = total

	return &CampaignDetails{
		ID:        campaign.ID,
		UserID:    campaign.UserID,
		Name:      campaign.Name,
		Status:    campaign.Status,
		CreatedAt: campaign.CreatedAt,
		UpdatedAt: campaign.UpdatedAt,
		Stats:     stats,
	}, nil
}
