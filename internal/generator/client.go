// Package generator wraps the hosted generative-language endpoint used to
// produce comment and connection-message text.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/linkedlift/engagement-backend/internal/config"
	appErrors "github.com/linkedlift/engagement-backend/internal/errors"
)

// Connection messages are requested under 300 characters; responses are
// truncated to that bound since the model is not guaranteed to honor it.
const maxConnectionMessageLen = 300

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(cfg config.GeneratorConfig) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CommentContext carries the target profile fields used to ground a comment
type CommentContext struct {
	PostContent    string
	AuthorName     string
	AuthorPosition string
	AuthorCompany  string
	AuthorIndustry string
	UserContext    string
}

// ConnectionContext carries the fields used to ground a connection message
type ConnectionContext struct {
	TargetName     string
	TargetIndustry string
	TargetPosition string
	UserContext    string
}

// generateContent wire types
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateComment produces a short comment (50-150 words requested) for a
// target's recent activity
func (c *Client) GenerateComment(ctx context.Context, in CommentContext) (string, error) {
	prompt := fmt.Sprintf(`You are writing a thoughtful LinkedIn comment on behalf of a professional.

Author: %s, %s at %s (%s industry).
Post content: %s
Additional context: %s

Write a genuine, specific comment between 50 and 150 words. No hashtags, no emojis, no generic praise. Reply with the comment text only.`,
		in.AuthorName, in.AuthorPosition, in.AuthorCompany, in.AuthorIndustry,
		in.PostContent, in.UserContext)

	return c.generate(ctx, prompt)
}

// GenerateConnectionMessage produces a connection request note, truncated to
// the 300 character platform limit
func (c *Client) GenerateConnectionMessage(ctx context.Context, in ConnectionContext) (string, error) {
	prompt := fmt.Sprintf(`Write a LinkedIn connection request message to %s, a %s in the %s industry.

Additional context: %s

Keep it under 300 characters, warm and specific. Reply with the message text only.`,
		in.TargetName, in.TargetPosition, in.TargetIndustry, in.UserContext)

	msg, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if len(msg) > maxConnectionMessageLen {
		msg = msg[:maxConnectionMessageLen]
	}
	return msg, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", appErrors.NewExternalService("text generator", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", appErrors.NewExternalService("text generator",
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", appErrors.NewExternalService("text generator", err)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", appErrors.NewExternalService("text generator",
			fmt.Errorf("response contains no generated text"))
	}

	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", appErrors.NewExternalService("text generator",
			fmt.Errorf("response contains no generated text"))
	}
	return text, nil
}
