// internal/controller/queue_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	appErrors "github.com/linkedlift/engagement-backend/internal/errors"
	"github.com/linkedlift/engagement-backend/internal/service"
)

type QueueController struct {
	Processor service.QueueProcessor
}

// ProcessQueueItem is the per-item processing entry point, invoked with
// {"queueItemId": "..."}.
func (c *QueueController) ProcessQueueItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		QueueItemID string `json:"queueItemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, appErrors.NewValidation("body", "invalid JSON"))
		return
	}
	if body.QueueItemID == "" {
		writeError(w, http.StatusBadRequest, appErrors.NewValidation("queueItemId", "required"))
		return
	}

	result, err := c.Processor.ProcessQueueItem(r.Context(), body.QueueItemID)
	if err != nil {
		writeError(w, statusForProcessingError(err), err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"result":  result,
	})
}

func statusForProcessingError(err error) int {
	var notFound *appErrors.ErrNotFound
	var notPending *appErrors.ErrQueueItemNotPending
	var unknownType *appErrors.ErrUnknownEngagementType

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &notPending):
		return http.StatusConflict
	case errors.As(err, &unknownType):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
