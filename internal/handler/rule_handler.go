// internal/handler/rule_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/linkedlift/engagement-backend/internal/model"
	"github.com/linkedlift/engagement-backend/internal/repository"
)

// RuleHandler holds the dependencies for automation-rule HTTP handlers
type RuleHandler struct {
	Repo     repository.RuleRepositoryInterface
	Validate *validator.Validate
}

func NewRuleHandler(repo repository.RuleRepositoryInterface) *RuleHandler {
	return &RuleHandler{
		Repo:     repo,
		Validate: validator.New(),
	}
}

type createRulePayload struct {
	CampaignID           string   `json:"campaign_id" validate:"required,uuid4"`
	TriggerType          string   `json:"trigger_type" validate:"required,oneof=schedule keyword manual"`
	ScheduleTime         *string  `json:"schedule_time" validate:"omitempty,datetime=15:04"`
	Keywords             []string `json:"keywords" validate:"omitempty,dive,min=1"`
	DailyCommentLimit    int      `json:"daily_comment_limit" validate:"gte=0,lte=100"`
	DailyConnectionLimit int      `json:"daily_connection_limit" validate:"gte=0,lte=100"`
	AutoLike             bool     `json:"auto_like"`
	IsActive             bool     `json:"is_active"`
}

// CreateRuleHandler handles creating a new automation rule
func (h *RuleHandler) CreateRuleHandler(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	var payload createRulePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := h.Validate.Struct(payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.TriggerType == model.TriggerSchedule && payload.ScheduleTime == nil {
		writeError(w, http.StatusBadRequest, "schedule_time is required for schedule rules")
		return
	}

	rule := &model.AutomationRule{
		UserID:               uid,
		CampaignID:           payload.CampaignID,
		TriggerType:          payload.TriggerType,
		ScheduleTime:         payload.ScheduleTime,
		Keywords:             payload.Keywords,
		DailyCommentLimit:    payload.DailyCommentLimit,
		DailyConnectionLimit: payload.DailyConnectionLimit,
		AutoLike:             payload.AutoLike,
		IsActive:             payload.IsActive,
	}

	if err := h.Repo.Create(rule); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create rule: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, rule)
}

// ListRulesHandler returns the user's automation rules
func (h *RuleHandler) ListRulesHandler(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	rules, err := h.Repo.ListByUser(uid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch rules: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": rules})
}

// GetRuleHandler returns a single rule by ID
func (h *RuleHandler) GetRuleHandler(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	rule, err := h.Repo.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch rule: "+err.Error())
		return
	}
	if rule == nil || rule.UserID != uid {
		writeError(w, http.StatusNotFound, "rule not found")
		return
	}

	writeJSON(w, http.StatusOK, rule)
}

// SetRuleActiveHandler toggles is_active on a rule
func (h *RuleHandler) SetRuleActiveHandler(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	id := chi.URLParam(r, "id")
	rule, err := h.Repo.GetByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch rule: "+err.Error())
		return
	}
	if rule == nil || rule.UserID != uid {
		writeError(w, http.StatusNotFound, "rule not found")
		return
	}

	var body struct {
		IsActive bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Repo.SetActive(id, body.IsActive); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update rule: "+err.Error())
		return
	}

	rule.IsActive = body.IsActive
	writeJSON(w, http.StatusOK, rule)
}
