package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nippou/internal/errors"
	"nippou/internal/report"
)

func testRequest() report.GenerateRequest {
	return report.GenerateRequest{
		Model:       "gpt-4o",
		System:      "system instruction",
		Prompt:      "user prompt",
		Temperature: 0.3,
		MaxTokens:   2000,
	}
}

func TestGenerateSuccess(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "生成された月報"}},
			},
		})
	}))
	defer server.Close()

	c := NewClient("test-key", WithBaseURL(server.URL))
	text, err := c.Generate(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "生成された月報", text)

	assert.Equal(t, "gpt-4o", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, 0.3, captured.Temperature)
	assert.Equal(t, 2000, captured.MaxTokens)
}

func TestGenerateMissingKey(t *testing.T) {
	c := NewClient("")
	_, err := c.Generate(context.Background(), testRequest())
	assert.ErrorIs(t, err, errors.ErrAPIKeyMissing)
}

func TestGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "invalid api key", "type": "auth"},
		})
	}))
	defer server.Close()

	c := NewClient("bad-key", WithBaseURL(server.URL))
	_, err := c.Generate(context.Background(), testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrGenerationFailed)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestGenerateEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	c := NewClient("test-key", WithBaseURL(server.URL))
	_, err := c.Generate(context.Background(), testRequest())
	assert.ErrorIs(t, err, errors.ErrEmptyResponse)
}

func TestGenerateConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse everything

	c := NewClient("test-key", WithBaseURL(server.URL), WithTimeout(2*time.Second))
	_, err := c.Generate(context.Background(), testRequest())
	assert.ErrorIs(t, err, errors.ErrGenerationFailed)
}

func TestGenerateContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient("test-key", WithBaseURL(server.URL))
	_, err := c.Generate(ctx, testRequest())
	assert.Error(t, err)
}
