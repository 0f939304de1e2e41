package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagesAPIClientGenerate(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	var gotBody messagesRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/v1/messages", r.URL.Path)
		assert.Equal("secret-token", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content": [{"type": "text", "text": "{\"answer\":"}, {"type": "tool_use"}, {"type": "text", "text": " 42}"}]}`))
	}))
	defer srv.Close()

	c := NewMessagesAPIClient(srv.URL, "secret-token", "risk-model-1")
	resp, err := c.Generate(ctx, "assess this posting")
	require.NoError(t, err)

	assert.Equal("risk-model-1", gotBody.Model)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal("user", gotBody.Messages[0].Role)
	assert.Equal("assess this posting", gotBody.Messages[0].Content)

	// only text-typed blocks contribute
	assert.Equal(`{"answer": 42}`, resp.Text())
}

func TestMessagesAPIClientErrors(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewMessagesAPIClient(srv.URL, "token", "risk-model-1")
	_, err := c.Generate(ctx, "prompt")
	assert.Error(err)

	// unreachable host
	c = NewMessagesAPIClient("http://127.0.0.1:1", "token", "risk-model-1")
	_, err = c.Generate(ctx, "prompt")
	assert.Error(err)
}

type stubModelClient struct {
	resp *ModelResponse
	err  error
}

func (s *stubModelClient) Generate(ctx context.Context, prompt string) (*ModelResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func TestAnalyzerDegradation(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	// network failure
	a := NewAnalyzer(&stubModelClient{err: errors.New("connection refused")}, DefaultPromptConfig(), nil)
	out, err := a.Analyze(ctx, Posting{Title: "Line Cook"})
	assert.Nil(out)
	assert.True(errors.Is(err, ErrAnalysisUnavailable))

	// non-JSON output
	a = NewAnalyzer(&stubModelClient{resp: &ModelResponse{Content: []ContentBlock{{Type: "text", Text: "cannot help with that"}}}}, DefaultPromptConfig(), nil)
	out, err = a.Analyze(ctx, Posting{Title: "Line Cook"})
	assert.Nil(out)
	assert.True(errors.Is(err, ErrAnalysisUnavailable))

	// happy path
	a = NewAnalyzer(&stubModelClient{resp: &ModelResponse{Content: []ContentBlock{{Type: "text", Text: `{"riskScore": 5, "isScam": false, "isProfessional": true, "isSalaryRealistic": true, "reasoning": "fine"}`}}}}, DefaultPromptConfig(), nil)
	out, err = a.Analyze(ctx, Posting{Title: "Line Cook"})
	assert.NoError(err)
	assert.Equal(5, out.RiskScore)
}
