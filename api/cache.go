package api

import (
	"bytes"
	"net/http"
	"sync"
	"time"
)

// cachedPage is one whole-response snapshot. Entries are immutable once
// stored; on expiry the page is recomputed wholesale, never patched.
type cachedPage struct {
	status  int
	header  http.Header
	body    []byte
	expires time.Time
}

// pageCache holds rendered pages for the revalidation window. Only successful
// GET responses are cached, keyed by request path, so error pages and the
// contact endpoint always hit the handlers.
type pageCache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	pages map[string]cachedPage
}

func newPageCache(ttl time.Duration) *pageCache {
	return &pageCache{
		ttl:   ttl,
		pages: make(map[string]cachedPage),
	}
}

func (c *pageCache) get(path string) (cachedPage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	page, ok := c.pages[path]
	if !ok || time.Now().After(page.expires) {
		return cachedPage{}, false
	}
	return page, true
}

func (c *pageCache) set(path string, page cachedPage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[path] = page
}

// recordingResponseWriter buffers a response so it can be snapshotted after
// the handler runs.
type recordingResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (w *recordingResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func (w *recordingResponseWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	w.body.Write(p)
	return w.ResponseWriter.Write(p)
}

// Middleware serves cached snapshots and records fresh ones. A TTL of zero or
// less disables caching entirely.
func (c *pageCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c.ttl <= 0 || r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		path := r.URL.Path

		if page, ok := c.get(path); ok {
			for key, values := range page.header {
				for _, value := range values {
					w.Header().Add(key, value)
				}
			}
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(page.status)
			w.Write(page.body)
			return
		}

		w.Header().Set("X-Cache", "MISS")
		recorder := &recordingResponseWriter{ResponseWriter: w, status: 200}
		next.ServeHTTP(recorder, r)

		// Only successful pages become snapshots; failures are retried on
		// the next request.
		if recorder.status == http.StatusOK {
			header := make(http.Header, len(w.Header()))
			for key, values := range w.Header() {
				if key == "X-Cache" || key == "X-Request-Id" {
					continue
				}
				header[key] = append([]string(nil), values...)
			}
			c.set(path, cachedPage{
				status:  recorder.status,
				header:  header,
				body:    append([]byte(nil), recorder.body.Bytes()...),
				expires: time.Now().Add(c.ttl),
			})
		}
	})
}
