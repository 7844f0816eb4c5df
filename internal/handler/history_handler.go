// internal/handler/history_handler.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/linkedlift/engagement-backend/internal/repository"
)

// HistoryHandler serves the engagement history used for reporting
type HistoryHandler struct {
	Repo repository.HistoryRepositoryInterface
}

func NewHistoryHandler(repo repository.HistoryRepositoryInterface) *HistoryHandler {
	return &HistoryHandler{Repo: repo}
}

// ListHistoryHandler returns the user's most recent executed engagements
func (h *HistoryHandler) ListHistoryHandler(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		writeError(w, http.StatusBadRequest, "missing X-User-ID header")
		return
	}

	limit := 50
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 && l <= 200 {
		limit = l
	}

	history, err := h.Repo.ListRecent(uid, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch history: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": history})
}
