package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/linkedlift/engagement-backend/internal/errors"
	"github.com/linkedlift/engagement-backend/internal/handler"
	"github.com/linkedlift/engagement-backend/internal/model"
	"github.com/linkedlift/engagement-backend/internal/service"
)

type mockCampaignRepo struct {
	campaigns []*model.Campaign
	stats     map[string]int
}

func (m *mockCampaignRepo) ListCampaigns(userID string, offset, limit int, status string) ([]*model.Campaign, int, error) {
	var matched []*model.Campaign
	for _, c := range m.campaigns {
		if c.UserID != userID {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		matched = append(matched, c)
	}
	total := len(matched)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (m *mockCampaignRepo) GetByID(id string) (*model.Campaign, error) {
	for _, c := range m.campaigns {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, appErrors.NewNotFound("campaign", id)
}

func (m *mockCampaignRepo) UpdateStatus(campaignID, status string) error { return nil }

func (m *mockCampaignRepo) Create(c *model.Campaign) error {
	c.ID = "created-id"
	c.CreatedAt = time.Now()
	m.campaigns = append(m.campaigns, c)
	return nil
}

func (m *mockCampaignRepo) GetEngagementStats(campaignID string) (map[string]int, error) {
	if m.stats == nil {
		return map[string]int{}, nil
	}
	return m.stats, nil
}

func seedCampaigns(n int, userID, status string) []*model.Campaign {
	campaigns := make([]*model.Campaign, n)
	for i := 0; i < n; i++ {
		campaigns[i] = &model.Campaign{
			ID:        string(rune('a' + i)),
			UserID:    userID,
			Name:      "Campaign",
			Status:    status,
			CreatedAt: time.Now(),
		}
	}
	return campaigns
}

func newCampaignRouter(repo *mockCampaignRepo) *chi.Mux {
	h := handler.NewCampaignHandler(&service.CampaignService{CampaignRepo: repo})
	r := chi.NewRouter()
	r.Post("/campaigns", h.CreateCampaignHandler)
	r.Get("/campaigns", h.ListCampaignsHandler)
	r.Get("/campaigns/{id}", h.GetCampaignHandler)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, url, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, url, reader)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListCampaignsPagination(t *testing.T) {
	repo := &mockCampaignRepo{campaigns: seedCampaigns(25, "user-1", "active")}
	router := newCampaignRouter(repo)

	w := doRequest(t, router, "GET", "/campaigns?page=2&page_size=10", "user-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data       []model.Campaign `json:"data"`
		Pagination map[string]int   `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))

	assert.Len(t, res.Data, 10)
	assert.Equal(t, 2, res.Pagination["page"])
	assert.Equal(t, 25, res.Pagination["total_count"])
	assert.Equal(t, 3, res.Pagination["total_pages"])
}

func TestListCampaignsStatusFilter(t *testing.T) {
	repo := &mockCampaignRepo{campaigns: append(
		seedCampaigns(3, "user-1", "active"),
		&model.Campaign{ID: "p1", UserID: "user-1", Name: "Paused one", Status: "paused"},
	)}
	router := newCampaignRouter(repo)

	w := doRequest(t, router, "GET", "/campaigns?status=paused", "user-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data []model.Campaign `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	require.Len(t, res.Data, 1)
	assert.Equal(t, "paused", res.Data[0].Status)
}

func TestListCampaignsRequiresUserHeader(t *testing.T) {
	router := newCampaignRouter(&mockCampaignRepo{})

	w := doRequest(t, router, "GET", "/campaigns", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCampaignWithStats(t *testing.T) {
	repo := &mockCampaignRepo{
		campaigns: []*model.Campaign{{ID: "c1", UserID: "user-1", Name: "Outbound Q3", Status: "active"}},
		stats:     map[string]int{"pending": 4, "completed": 7, "failed": 1},
	}
	router := newCampaignRouter(repo)

	w := doRequest(t, router, "GET", "/campaigns/c1", "user-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var details service.CampaignDetails
	require.NoError(t, json.NewDecoder(w.Body).Decode(&details))
	assert.Equal(t, "Outbound Q3", details.Name)
	assert.Equal(t, 12, details.Stats["total"])
	assert.Equal(t, 4, details.Stats["pending"])
}

func TestGetCampaignNotFound(t *testing.T) {
	router := newCampaignRouter(&mockCampaignRepo{})

	w := doRequest(t, router, "GET", "/campaigns/nope", "user-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCampaignOwnedByAnotherUser(t *testing.T) {
	repo := &mockCampaignRepo{
		campaigns: []*model.Campaign{{ID: "c1", UserID: "user-2", Name: "Not yours", Status: "active"}},
	}
	router := newCampaignRouter(repo)

	w := doRequest(t, router, "GET", "/campaigns/c1", "user-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCampaign(t *testing.T) {
	repo := &mockCampaignRepo{}
	router := newCampaignRouter(repo)

	w := doRequest(t, router, "POST", "/campaigns", "user-1", `{"name":"Winter push","status":"active"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Campaign
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, "Winter push", created.Name)
	assert.Equal(t, "user-1", created.UserID)
	require.Len(t, repo.campaigns, 1)
}

func TestCreateCampaignRejectsInvalidStatus(t *testing.T) {
	router := newCampaignRouter(&mockCampaignRepo{})

	w := doRequest(t, router, "POST", "/campaigns", "user-1", `{"name":"Bad","status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
