// internal/handler/campaign_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	appErrors "github.com/linkedlift/engagement-backend/internal/errors"
	"github.com/linkedlift/engagement-backend/internal/service"
)

// CampaignHandler holds the dependencies for campaign-related HTTP handlers
type CampaignHandler struct {
	Service  *service.CampaignService
	Validate *validator.Validate
}

func NewCampaignHandler(svc *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{
		Service:  svc,
		Validate: validator.New(),
	}
}

type createCampaignPayload struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Status string `json:"status" validate:"omitempty,oneof=active paused completed"`
}

// CreateCampaignHandler handles creating a new campaign
func (h *CampaignHandler) CreateCampaignHandler(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	var payload createCampaignPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := h.Validate.Struct(payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	campaign, err := h.Service.CreateCampaign(uid, payload.Name, payload.Status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create campaign: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, campaign)
}

// ListCampaignsHandler returns a paginated list of the user's campaigns
func (h *CampaignHandler) ListCampaignsHandler(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	page := 1
	pageSize := 20
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	if ps, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && ps > 0 {
		pageSize = ps
	}
	status := r.URL.Query().Get("status")

	campaigns, pagination, err := h.Service.ListCampaigns(uid, page, pageSize, status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch campaigns: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":       campaigns,
		"pagination": pagination,
	})
}

// GetCampaignHandler returns a single campaign with engagement stats
func (h *CampaignHandler) GetCampaignHandler(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	details, err := h.Service.GetCampaignDetailsWithStats(chi.URLParam(r, "id"))
	if err != nil {
		var notFound *appErrors.ErrNotFound
		if errors.As(err, &notFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch campaign: "+err.Error())
		return
	}
	if details.UserID != uid {
		writeError(w, http.StatusNotFound, "campaign not found")
		return
	}

	writeJSON(w, http.StatusOK, details)
}
