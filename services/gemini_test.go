package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func geminiResponse(text string) string {
	resp := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]string{{"text": text}},
				},
			},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestGenerateContent_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req GeminiRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req.Contents[0].Parts[0].Text)

		w.Write([]byte(geminiResponse("generated text")))
	}))
	defer server.Close()

	s := NewGeminiServiceWithClient("test-key", server.URL, server.Client())

	got, err := s.GenerateContent(context.Background(), "hello")
	assert.NoError(t, err)
	assert.Equal(t, "generated text", got)
}

func TestGenerateContent_StripsMarkdownFences(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiResponse("```json\n{\"a\":1}\n```")))
	}))
	defer server.Close()

	s := NewGeminiServiceWithClient("test-key", server.URL, server.Client())

	got, err := s.GenerateContent(context.Background(), "hello")
	assert.NoError(t, err)
	assert.Equal(t, `{"a":1}`, got)
}

func TestGenerateContent_MissingAPIKey(t *testing.T) {
	s := NewGeminiService("")

	_, err := s.GenerateContent(context.Background(), "hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestGenerateContent_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	s := NewGeminiServiceWithClient("test-key", server.URL, server.Client())

	_, err := s.GenerateContent(context.Background(), "hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerateContent_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	s := NewGeminiServiceWithClient("test-key", server.URL, server.Client())

	_, err := s.GenerateContent(context.Background(), "hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}
