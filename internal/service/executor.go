package service

import (
	"context"

	"github.com/linkedlift/engagement-backend/internal/generator"
	"github.com/linkedlift/engagement-backend/internal/model"
)

// DefaultCommentFallback is used when comment generation fails or returns
// nothing. The engagement still completes with this text.
const DefaultCommentFallback = "Great insights! Thanks for sharing."

// connectionTemplate is the default note when a connection item carries no
// preset content
const connectionTemplate = "Hi {name}, I came across your profile and was impressed by your work in the {industry} space. I'd love to connect and exchange insights!"

// TextGenerator is the slice of the generation client the executors need
type TextGenerator interface {
	GenerateComment(ctx context.Context, in generator.CommentContext) (string, error)
	GenerateConnectionMessage(ctx context.Context, in generator.ConnectionContext) (string, error)
}

// EngagementResult describes an executed engagement. Status is "simulated"
// until a real platform integration replaces the simulated executors.
type EngagementResult struct {
	Type       string `json:"type"`
	Content    string `json:"content,omitempty"`
	Message    string `json:"message,omitempty"`
	TargetName string `json:"target_name"`
	Status     string `json:"status"`
}

// UsedContent returns the text that was actually sent, regardless of type
func (r *EngagementResult) UsedContent() string {
	if r.Content != "" {
		return r.Content
	}
	return r.Message
}

// EngagementExecutor performs one engagement-type-specific action. A real
// platform integration implements this without touching the queue state
// machine.
type EngagementExecutor interface {
	Execute(ctx context.Context, item *model.EngagementQueueItem, target *model.EngagementTarget) (*EngagementResult, error)
}

// CommentExecutor posts a comment. Delivery is simulated; only the text is
// produced for real.
type CommentExecutor struct {
	Generator TextGenerator
}

func (e *CommentExecutor) Execute(ctx context.Context, item *model.EngagementQueueItem, target *model.EngagementTarget) (*EngagementResult, error) {
	content := item.Content
	if content == "" {
		generated, err := e.Generator.GenerateComment(ctx, generator.CommentContext{
			AuthorName:     target.Name,
			AuthorPosition: target.Position,
			AuthorCompany:  target.Company,
			AuthorIndustry: target.Industry,
		})
		if err != nil || generated == "" {
			content = DefaultCommentFallback
		} else {
			content = generated
		}
	}

	return &EngagementResult{
		Type:       model.EngagementComment,
		Content:    content,
		TargetName: target.Name,
		Status:     "simulated",
	}, nil
}

// ConnectionExecutor sends a connection request. Simulated.
type ConnectionExecutor struct{}

func (e *ConnectionExecutor) Execute(ctx context.Context, item *model.EngagementQueueItem, target *model.EngagementTarget) (*EngagementResult, error) {
	message := item.Content
	if message == "" {
		message = RenderTemplate(connectionTemplate, map[string]string{
			"name":     valueOr(target.Name, "there"),
			"industry": valueOr(target.Industry, "professional"),
		})
	}

	return &EngagementResult{
		Type:       model.EngagementConnection,
		Message:    message,
		TargetName: target.Name,
		Status:     "simulated",
	}, nil
}

// LikeExecutor registers a like. No content. Simulated.
type LikeExecutor struct{}

func (e *LikeExecutor) Execute(ctx context.Context, item *model.EngagementQueueItem, target *model.EngagementTarget) (*EngagementResult, error) {
	return &EngagementResult{
		Type:       model.EngagementLike,
		TargetName: target.Name,
		Status:     "simulated",
	}, nil
}
