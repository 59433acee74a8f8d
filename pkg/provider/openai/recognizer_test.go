package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/scriptor-ai/scriptor/pkg/provider"
	"github.com/scriptor-ai/scriptor/pkg/provider/openai"

	"github.com/stretchr/testify/require"
)

type completionRequest struct {
	Model string `json:"model"`

	Messages []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`

			ImageURL struct {
				URL string `json:"url"`
			} `json:"image_url"`
		} `json:"content"`
	} `json:"messages"`

	MaxTokens   *int64   `json:"max_tokens"`
	Temperature *float64 `json:"temperature"`
}

func TestRecognize(t *testing.T) {
	var captured completionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")

		json.NewEncoder(w).Encode(map[string]any{
			"id":    "chatcmpl-123",
			"model": "gpt-4o",
			"choices": []map[string]any{
				{
					"message": map[string]any{
						"role":    "assistant",
						"content": "# Form\n\nSample: 4231",
					},
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     12,
				"completion_tokens": 34,
			},
		})
	}))

	defer server.Close()

	r, err := openai.NewRecognizer(server.URL+"/v1/", "gpt-4o", openai.WithToken("test-key"))
	require.NoError(t, err)

	maxTokens := 8192
	temperature := float32(0)

	result, err := r.Recognize(context.Background(), "transcribe this form", provider.File{
		Name:        "page-1.png",
		Content:     []byte{0x89, 0x50, 0x4e, 0x47},
		ContentType: "image/png",
	}, &provider.RecognizeOptions{
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})

	require.NoError(t, err)

	require.Equal(t, "chatcmpl-123", result.ID)
	require.Equal(t, "gpt-4o", result.Model)
	require.Equal(t, "# Form\n\nSample: 4231", result.Text)

	require.NotNil(t, result.Usage)
	require.Equal(t, 12, result.Usage.InputTokens)
	require.Equal(t, 34, result.Usage.OutputTokens)

	require.Equal(t, "gpt-4o", captured.Model)

	require.NotNil(t, captured.MaxTokens)
	require.EqualValues(t, 8192, *captured.MaxTokens)

	require.NotNil(t, captured.Temperature)
	require.EqualValues(t, 0, *captured.Temperature)

	require.Len(t, captured.Messages, 1)
	require.Equal(t, "user", captured.Messages[0].Role)
	require.Len(t, captured.Messages[0].Content, 2)

	require.Equal(t, "text", captured.Messages[0].Content[0].Type)
	require.Equal(t, "transcribe this form", captured.Messages[0].Content[0].Text)

	require.Equal(t, "image_url", captured.Messages[0].Content[1].Type)
	require.True(t, strings.HasPrefix(captured.Messages[0].Content[1].ImageURL.URL, "data:image/png;base64,"))
}

func TestRecognizeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)

		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"message": "rate limit exceeded",
				"type":    "rate_limit_error",
			},
		})
	}))

	defer server.Close()

	r, err := openai.NewRecognizer(server.URL+"/v1/", "gpt-4o", openai.WithToken("test-key"))
	require.NoError(t, err)

	_, err = r.Recognize(context.Background(), "transcribe this form", provider.File{
		Name:        "page-1.png",
		Content:     []byte{1, 2, 3},
		ContentType: "image/png",
	}, nil)

	require.Error(t, err)
	require.Contains(t, err.Error(), "rate limit exceeded")
}
