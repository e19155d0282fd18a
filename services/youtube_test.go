package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const searchJSON = `{
	"items": [
		{
			"id": {"videoId": "abc123"},
			"snippet": {
				"title": "Go Tutorial",
				"description": "Learn Go",
				"publishedAt": "2024-01-01T00:00:00Z",
				"channelTitle": "GoChannel",
				"thumbnails": {"high": {"url": "http://img/abc123.jpg"}}
			}
		},
		{
			"id": {"videoId": "live99"},
			"snippet": {
				"title": "Live Stream",
				"channelTitle": "GoChannel",
				"thumbnails": {"high": {"url": "http://img/live99.jpg"}}
			}
		}
	]
}`

const videosJSON = `{
	"items": [
		{
			"id": "abc123",
			"contentDetails": {"duration": "PT12M30S"},
			"statistics": {"viewCount": "1000"}
		},
		{
			"id": "live99",
			"contentDetails": {"duration": ""},
			"statistics": {"viewCount": "50"}
		}
	]
}`

func newYouTubeTestServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		switch r.URL.Path {
		case "/search":
			assert.Contains(t, r.URL.Query().Get("q"), "educational explained")
			assert.Equal(t, "27", r.URL.Query().Get("videoCategoryId"))
			w.Write([]byte(searchJSON))
		case "/videos":
			assert.Contains(t, r.URL.Query().Get("id"), "abc123")
			w.Write([]byte(videosJSON))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestSearch_ReturnsVideosWithDetails(t *testing.T) {
	server := newYouTubeTestServer(t)
	defer server.Close()

	s := NewYouTubeServiceWithClient("test-key", server.URL, server.Client())

	videos, err := s.Search(context.Background(), "golang", 12)
	assert.NoError(t, err)

	// The zero-duration entry is dropped.
	if assert.Len(t, videos, 1) {
		v := videos[0]
		assert.Equal(t, "Go Tutorial", v.Title)
		assert.Equal(t, "https://www.youtube.com/watch?v=abc123", v.URL)
		assert.Equal(t, "PT12M30S", v.Duration)
		assert.Equal(t, "1000", v.ViewCount)
		assert.Equal(t, "GoChannel", v.ChannelTitle)
	}
}

func TestSearch_MissingAPIKey(t *testing.T) {
	s := NewYouTubeService("")

	_, err := s.Search(context.Background(), "golang", 12)
	assert.Error(t, err)
}

func TestSearch_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	}))
	defer server.Close()

	s := NewYouTubeServiceWithClient("test-key", server.URL, server.Client())

	videos, err := s.Search(context.Background(), "golang", 12)
	assert.NoError(t, err)
	assert.Empty(t, videos)
}

func TestSearch_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	s := NewYouTubeServiceWithClient("test-key", server.URL, server.Client())

	_, err := s.Search(context.Background(), "golang", 12)
	assert.Error(t, err)
}

func TestParseISO8601Duration(t *testing.T) {
	assert.Equal(t, 750, ParseISO8601Duration("PT12M30S"))
	assert.Equal(t, 3600, ParseISO8601Duration("PT1H"))
	assert.Equal(t, 3930, ParseISO8601Duration("PT1H5M30S"))
	assert.Equal(t, 45, ParseISO8601Duration("PT45S"))
	assert.Equal(t, 0, ParseISO8601Duration(""))
	assert.Equal(t, 0, ParseISO8601Duration("garbage"))
}
