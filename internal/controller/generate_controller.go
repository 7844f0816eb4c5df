// internal/controller/generate_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	appErrors "github.com/linkedlift/engagement-backend/internal/errors"
	"github.com/linkedlift/engagement-backend/internal/generator"
	"github.com/linkedlift/engagement-backend/internal/service"
)

type GenerateController struct {
	Generator service.TextGenerator
	Rand      service.Rand
}

type generateRequest struct {
	Action string `json:"action"`

	// generate_comment fields
	PostContent    string `json:"postContent"`
	AuthorName     string `json:"authorName"`
	AuthorPosition string `json:"authorPosition"`
	AuthorCompany  string `json:"authorCompany"`
	AuthorIndustry string `json:"authorIndustry"`

	// generate_connection_message fields
	TargetName     string `json:"targetName"`
	TargetIndustry string `json:"targetIndustry"`
	TargetPosition string `json:"targetPosition"`

	UserContext string `json:"userContext"`
}

// HandleGenerate is the text generation entry point, dispatching on the
// "action" field.
func (c *GenerateController) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, appErrors.NewValidation("body", "invalid JSON"))
		return
	}

	switch body.Action {
	case "generate_comment":
		comment, err := c.Generator.GenerateComment(r.Context(), generator.CommentContext{
			PostContent:    body.PostContent,
			AuthorName:     body.AuthorName,
			AuthorPosition: body.AuthorPosition,
			AuthorCompany:  body.AuthorCompany,
			AuthorIndustry: body.AuthorIndustry,
			UserContext:    body.UserContext,
		})
		if err != nil {
			writeError(w, http.StatusBadGateway, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"comment": comment})

	case "generate_connection_message":
		message, err := c.Generator.GenerateConnectionMessage(r.Context(), generator.ConnectionContext{
			TargetName:     body.TargetName,
			TargetIndustry: body.TargetIndustry,
			TargetPosition: body.TargetPosition,
			UserContext:    body.UserContext,
		})
		if err != nil {
			writeError(w, http.StatusBadGateway, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"connectionMessage": message})

	case "process_daily_engagement":
		writeJSON(w, http.StatusOK, service.SimulateDailyEngagement(c.Rand))

	default:
		writeError(w, http.StatusBadRequest, appErrors.NewValidation("action", "unknown action: "+body.Action))
	}
}
