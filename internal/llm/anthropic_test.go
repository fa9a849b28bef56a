package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		var body struct {
			Model     string `json:"model"`
			MaxTokens int    `json:"max_tokens"`
			System    []struct {
				Text string `json:"text"`
			} `json:"system"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claude-sonnet-4-5", body.Model)
		assert.Equal(t, 4096, body.MaxTokens)
		require.Len(t, body.System, 1)
		assert.Equal(t, "be brief", body.System[0].Text)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_1", "type": "message", "role": "assistant", "model": "claude-sonnet-4-5",
			"content": [{"type": "text", "text": "part one, "}, {"type": "text", "text": "part two"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 3, "output_tokens": 4}
		}`))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Providers[ProviderAnthropic] = ProviderConfig{APIKey: "test-key", BaseURL: srv.URL + "/", Model: "claude-sonnet-4-5"}

	client, err := NewClient(cfg, ProviderAnthropic, NoopObserver{})
	require.NoError(t, err)

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskSummarize,
		SystemPrompt: "be brief",
		UserPrompt:   "summarize",
	})
	require.NoError(t, err)
	assert.Equal(t, "part one, part two", resp.Text)
	assert.Equal(t, ProviderAnthropic, resp.Provider)
}

func TestAnthropicClient_Generate_BadRequestRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"type": "error", "error": {"type": "invalid_request_error", "message": "bad model"}}`))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.MaxRetries = 2
	cfg.Providers[ProviderAnthropic] = ProviderConfig{APIKey: "test-key", BaseURL: srv.URL + "/", Model: "nope"}

	client, err := NewClient(cfg, ProviderAnthropic, NoopObserver{})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), GenerateRequest{Task: TaskGenerate, UserPrompt: "hi"})
	assert.ErrorIs(t, err, ErrRequestRejected)
}
