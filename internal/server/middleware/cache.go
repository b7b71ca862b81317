// Package middleware holds the gin middlewares shared by the API routes.
package middleware

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/cache"
)

// CacheHeader reports HIT or MISS on cached routes.
const CacheHeader = "X-Cache"

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ResponseCache serves GET responses from store and stores successful ones.
// A nil store disables caching. Cache failures never fail the request.
func ResponseCache(store cache.Store, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := cacheKey(c.Request.URL.RequestURI())

		raw, gen, ok, err := store.Get(ctx, key)
		if err != nil {
			logger.Warn("cache read failed", zap.Error(err))
		} else if ok {
			var cached cachedResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				c.Header(CacheHeader, "HIT")
				c.Data(cached.Status, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
		}

		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Header(CacheHeader, "MISS")
		c.Next()

		// The entry is written under the generation read before the handler
		// ran, so a write that invalidated in between hides it.
		if err != nil || cw.Status() != http.StatusOK {
			return
		}

		raw, err = json.Marshal(cachedResponse{
			Status:      cw.Status(),
			ContentType: cw.Header().Get("Content-Type"),
			Body:        cw.buf.Bytes(),
		})
		if err != nil {
			return
		}
		if err := store.SetAt(ctx, gen, key, raw); err != nil {
			logger.Warn("cache write failed", zap.Error(err))
		}
	}
}

// InvalidateOnWrite drops every cached response after a successful
// non-GET request.
func InvalidateOnWrite(store cache.Store, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		if err := store.Invalidate(c.Request.Context()); err != nil {
			logger.Warn("cache invalidation failed", zap.Error(err))
		}
	}
}

func cacheKey(uri string) string {
	sum := sha1.Sum([]byte(uri))
	return "report:" + hex.EncodeToString(sum[:])
}
