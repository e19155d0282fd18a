package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const defaultYouTubeBaseURL = "https://www.googleapis.com/youtube/v3"

// Video is one learning resource returned by the video search service.
type Video struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	Description  string `json:"description"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channel_title"`
	PublishedAt  string `json:"published_at"`
	Duration     string `json:"duration"` // ISO 8601, e.g. PT12M30S
	ViewCount    string `json:"view_count"`
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			PublishedAt  string `json:"publishedAt"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type youtubeVideosResponse struct {
	Items []struct {
		ID             string `json:"id"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

var iso8601DurationRegex = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// YouTubeService searches the YouTube Data API for educational videos.
// The core pipeline only supplies topic strings; failures surface as an
// empty result, never as a broken analysis.
type YouTubeService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewYouTubeService creates a YouTube Data API client.
func NewYouTubeService(apiKey string) *YouTubeService {
	return &YouTubeService{
		apiKey:     apiKey,
		baseURL:    defaultYouTubeBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewYouTubeServiceWithClient creates a client against a custom endpoint,
// used by tests.
func NewYouTubeServiceWithClient(apiKey, baseURL string, client *http.Client) *YouTubeService {
	return &YouTubeService{apiKey: apiKey, baseURL: baseURL, httpClient: client}
}

// Search returns up to maxResults educational videos for a topic. The
// query is biased towards tutorial content the same way the learning page
// expects.
func (s *YouTubeService) Search(ctx context.Context, topic string, maxResults int) ([]Video, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("youtube API key not configured")
	}
	if maxResults <= 0 {
		maxResults = 12
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", topic+" educational explained")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("type", "video")
	params.Set("videoDuration", "medium")
	params.Set("relevanceLanguage", "en")
	params.Set("order", "relevance")
	params.Set("videoCategoryId", "27") // Education
	params.Set("videoDefinition", "high")
	params.Set("safeSearch", "strict")
	params.Set("key", s.apiKey)

	var searchResp youtubeSearchResponse
	if err := s.get(ctx, "/search", params, &searchResp); err != nil {
		return nil, err
	}
	if len(searchResp.Items) == 0 {
		return []Video{}, nil
	}

	ids := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		ids = append(ids, item.ID.VideoID)
	}

	detailParams := url.Values{}
	detailParams.Set("part", "contentDetails,statistics")
	detailParams.Set("id", strings.Join(ids, ","))
	detailParams.Set("key", s.apiKey)

	var detailsResp youtubeVideosResponse
	if err := s.get(ctx, "/videos", detailParams, &detailsResp); err != nil {
		return nil, err
	}

	type details struct{ duration, viewCount string }
	detailsByID := make(map[string]details, len(detailsResp.Items))
	for _, item := range detailsResp.Items {
		detailsByID[item.ID] = details{item.ContentDetails.Duration, item.Statistics.ViewCount}
	}

	videos := []Video{}
	for _, item := range searchResp.Items {
		d := detailsByID[item.ID.VideoID]
		if ParseISO8601Duration(d.duration) <= 0 {
			continue
		}
		videos = append(videos, Video{
			Title:        item.Snippet.Title,
			URL:          "https://www.youtube.com/watch?v=" + item.ID.VideoID,
			Description:  item.Snippet.Description,
			Thumbnail:    item.Snippet.Thumbnails.High.URL,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
			Duration:     d.duration,
			ViewCount:    d.viewCount,
		})
	}

	return videos, nil
}

func (s *YouTubeService) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube API error: status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// ParseISO8601Duration converts durations like PT1H2M30S to seconds.
func ParseISO8601Duration(duration string) int {
	match := iso8601DurationRegex.FindStringSubmatch(duration)
	if match == nil {
		return 0
	}

	seconds := 0
	units := []int{3600, 60, 1}
	for i, unit := range units {
		if match[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(match[i+1])
		if err != nil {
			continue
		}
		seconds += n * unit
	}
	return seconds
}
