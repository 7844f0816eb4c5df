// internal/handler/target_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/linkedlift/engagement-backend/internal/model"
	"github.com/linkedlift/engagement-backend/internal/repository"
)

// TargetHandler holds the dependencies for engagement-target HTTP handlers
type TargetHandler struct {
	Repo     repository.TargetRepositoryInterface
	Validate *validator.Validate
}

func NewTargetHandler(repo repository.TargetRepositoryInterface) *TargetHandler {
	return &TargetHandler{
		Repo:     repo,
		Validate: validator.New(),
	}
}

type createTargetPayload struct {
	CampaignID string `json:"campaign_id" validate:"required,uuid4"`
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Company    string `json:"company" validate:"max=200"`
	Industry   string `json:"industry" validate:"max=200"`
	Position   string `json:"position" validate:"max=200"`
	Status     string `json:"status" validate:"omitempty,oneof=pending active connected engaged"`
}

// CreateTargetHandler handles adding a prospect profile to a campaign
func (h *TargetHandler) CreateTargetHandler(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	var payload createTargetPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := h.Validate.Struct(payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	target := &model.EngagementTarget{
		UserID:     uid,
		CampaignID: payload.CampaignID,
		Name:       payload.Name,
		Company:    payload.Company,
		Industry:   payload.Industry,
		Position:   payload.Position,
		Status:     payload.Status,
	}

	if err := h.Repo.Create(target); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create target: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, target)
}

// ListTargetsHandler returns all targets of a campaign
func (h *TargetHandler) ListTargetsHandler(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	targets, err := h.Repo.ListByCampaign(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch targets: "+err.Error())
		return
	}

	// Rows owned by other users never leave the handler
	owned := targets[:0]
	for _, t := range targets {
		if t.UserID == uid {
			owned = append(owned, t)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": owned})
}
