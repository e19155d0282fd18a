package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheEntry holds a cached JSON body.
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// ResponseCache memoizes successful JSON responses for endpoints that
// hit external APIs.
type ResponseCache struct {
	cache map[string]*CacheEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	rc := &ResponseCache{
		cache: make(map[string]*CacheEntry),
		ttl:   ttl,
	}

	go rc.cleanup()

	return rc
}

// Cache replays a stored response when the same request arrives within
// the TTL. GET requests and the generation endpoints are cacheable.
func (rc *ResponseCache) Cache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "GET" && !isGenerationEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		key := rc.generateKey(c)

		rc.mu.RLock()
		entry, exists := rc.cache[key]
		rc.mu.RUnlock()

		if exists && time.Now().Before(entry.ExpiresAt) {
			c.JSON(200, entry.Data)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           []byte{},
		}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == 200 && len(writer.body) > 0 {
			var data interface{}
			if err := json.Unmarshal(writer.body, &data); err == nil {
				rc.mu.Lock()
				rc.cache[key] = &CacheEntry{
					Data:      data,
					ExpiresAt: time.Now().Add(rc.ttl),
				}
				rc.mu.Unlock()
			}
		}
	}
}

func (rc *ResponseCache) generateKey(c *gin.Context) string {
	h := md5.New()
	h.Write([]byte(c.Request.Method))
	h.Write([]byte(c.Request.URL.Path))
	h.Write([]byte(c.Request.URL.RawQuery))

	if c.Request.Method == "POST" {
		body, _ := c.GetRawData()
		h.Write(body)
		c.Request.Body = io.NopCloser(&cachedBody{bytes: body})
	}

	return hex.EncodeToString(h.Sum(nil))
}

func (rc *ResponseCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for {
		<-ticker.C
		rc.mu.Lock()
		now := time.Now()
		for key, entry := range rc.cache {
			if now.After(entry.ExpiresAt) {
				delete(rc.cache, key)
			}
		}
		rc.mu.Unlock()
	}
}

type responseWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

type cachedBody struct {
	bytes []byte
	pos   int
}

func (cb *cachedBody) Read(p []byte) (n int, err error) {
	if cb.pos >= len(cb.bytes) {
		return 0, io.EOF
	}
	n = copy(p, cb.bytes[cb.pos:])
	cb.pos += n
	return n, nil
}

// isGenerationEndpoint reports whether the path calls out to Gemini or
// YouTube, where repeated identical requests waste quota.
func isGenerationEndpoint(path string) bool {
	generationPaths := []string{
		"/api/quiz/generate",
		"/api/quiz/topics",
		"/api/videos/search",
	}

	for _, p := range generationPaths {
		if path == p {
			return true
		}
	}
	return false
}

// CreateCaches builds the per-surface caches.
func CreateCaches() map[string]*ResponseCache {
	return map[string]*ResponseCache{
		"generate": NewResponseCache(15 * time.Minute),
		"general":  NewResponseCache(5 * time.Minute),
	}
}
