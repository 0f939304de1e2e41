package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"golang.org/x/time/rate"
)

// ContentBlock is one block of model output. Only "text" blocks carry usable
// content; other types (eg, tool use) are ignored.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type ModelResponse struct {
	Content []ContentBlock `json:"content"`
}

// Text concatenates all text-typed content blocks.
func (r *ModelResponse) Text() string {
	var out string
	for _, block := range r.Content {
		if block.Type == "text" {
			out += block.Text
		}
	}
	return out
}

// ModelClient generates a model response for a single-message prompt.
type ModelClient interface {
	Generate(ctx context.Context, prompt string) (*ModelResponse, error)
}

// MessagesAPIClient calls an Anthropic-style messages endpoint. The call is
// single-attempt: retry/backoff for the model belongs to the upstream
// collaborator, not the verification core.
type MessagesAPIClient struct {
	Client    http.Client
	Host      string
	APIToken  string
	Model     string
	MaxTokens int
	// optional client-side throttle on outbound model calls
	Limiter *rate.Limiter
}

var _ ModelClient = (*MessagesAPIClient)(nil)

func NewMessagesAPIClient(host, token, model string) *MessagesAPIClient {
	return &MessagesAPIClient{
		Client: http.Client{
			Timeout: 30 * time.Second,
		},
		Host:      host,
		APIToken:  token,
		Model:     model,
		MaxTokens: 1024,
	}
}

type messagesRequest struct {
	Model     string           `json:"model"`
	MaxTokens int              `json:"max_tokens"`
	Messages  []requestMessage `json:"messages"`
}

type requestMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (c *MessagesAPIClient) Generate(ctx context.Context, prompt string) (*ModelResponse, error) {

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(messagesRequest{
		Model:     c.Model,
		MaxTokens: c.MaxTokens,
		Messages: []requestMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Host+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", c.APIToken)
	req.Header.Set("Anthropic-Version", "2023-06-01")
	req.Header.Set("User-Agent", "jobsignal/"+versioninfo.Short())

	start := time.Now()
	defer func() {
		modelAPIDuration.Observe(time.Since(start).Seconds())
	}()

	res, err := c.Client.Do(req)
	if err != nil {
		modelAPICount.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("model request failed: %w", err)
	}
	defer res.Body.Close()

	modelAPICount.WithLabelValues(fmt.Sprint(res.StatusCode)).Inc()
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("model request failed statusCode=%d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	var out ModelResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parsing model response envelope: %w", err)
	}
	return &out, nil
}
