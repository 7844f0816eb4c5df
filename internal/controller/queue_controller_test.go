package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkedlift/engagement-backend/internal/controller"
	appErrors "github.com/linkedlift/engagement-backend/internal/errors"
	"github.com/linkedlift/engagement-backend/internal/service"
)

// mockProcessor maps queue item IDs to canned outcomes
type mockProcessor struct {
	results map[string]*service.EngagementResult
	errs    map[string]error
}

func (m *mockProcessor) ProcessQueueItem(ctx context.Context, id string) (*service.EngagementResult, error) {
	if err, ok := m.errs[id]; ok {
		return nil, err
	}
	if result, ok := m.results[id]; ok {
		return result, nil
	}
	return nil, fmt.Errorf("unexpected id %s", id)
}

func postQueueProcess(t *testing.T, ctrl *controller.QueueController, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/queue/process", bytes.NewReader(b))
	w := httptest.NewRecorder()
	ctrl.ProcessQueueItem(w, req)
	return w
}

func TestProcessQueueItemSuccess(t *testing.T) {
	ctrl := &controller.QueueController{
		Processor: &mockProcessor{
			results: map[string]*service.EngagementResult{
				"item-1": {
					Type:       "comment",
					Content:    "Nice post!",
					TargetName: "Amina Yusuf",
					Status:     "simulated",
				},
			},
		},
	}

	w := postQueueProcess(t, ctrl, map[string]string{"queueItemId": "item-1"})
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Success bool                     `json:"success"`
		Result  service.EngagementResult `json:"result"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.Equal(t, "comment", res.Result.Type)
	assert.Equal(t, "Nice post!", res.Result.Content)
}

func TestProcessQueueItemValidation(t *testing.T) {
	ctrl := &controller.QueueController{Processor: &mockProcessor{}}

	w := postQueueProcess(t, ctrl, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest("POST", "/queue/process", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	ctrl.ProcessQueueItem(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessQueueItemErrorStatuses(t *testing.T) {
	ctrl := &controller.QueueController{
		Processor: &mockProcessor{
			errs: map[string]error{
				"missing":   appErrors.NewNotFound("queue item", "missing"),
				"claimed":   appErrors.NewQueueItemNotPending("claimed", "completed"),
				"bad-type":  appErrors.NewUnknownEngagementType("follow"),
				"exploding": fmt.Errorf("db on fire"),
			},
		},
	}

	tests := []struct {
		id   string
		want int
	}{
		{"missing", http.StatusNotFound},
		{"claimed", http.StatusConflict},
		{"bad-type", http.StatusUnprocessableEntity},
		{"exploding", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			w := postQueueProcess(t, ctrl, map[string]string{"queueItemId": tt.id})
			assert.Equal(t, tt.want, w.Code)

			var res map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
			assert.NotEmpty(t, res["error"])
		})
	}
}
