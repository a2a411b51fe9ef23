package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/resume-studio/internal/config"
	"github.com/khoahotran/resume-studio/pkg/logger"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *chatLLMAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var cfg config.Config
	cfg.LLM.BaseURL = srv.URL + "/v1"
	cfg.LLM.Model = "llama3"

	svc, err := NewChatLLMAdapter(cfg, logger.NewNop())
	require.NoError(t, err)
	return svc.(*chatLLMAdapter)
}

func TestGenerateChatResponse(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "llama3", body.Model)
		assert.Equal(t, "user", body.Messages[0].Role)
		assert.Equal(t, "tell me a joke", body.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"[\"ha\"]"},"finish_reason":"stop"}]}`))
	})

	reply, err := a.GenerateChatResponse(context.Background(), "tell me a joke")
	require.NoError(t, err)
	assert.Equal(t, `["ha"]`, reply)
}

func TestGenerateChatResponseNoChoices(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[]}`))
	})

	_, err := a.GenerateChatResponse(context.Background(), "x")
	assert.Error(t, err)
}

func TestNewChatLLMAdapterRequiresConfig(t *testing.T) {
	_, err := NewChatLLMAdapter(config.Config{}, logger.NewNop())
	assert.Error(t, err)
}
