package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/JonnyWalker81/workwell/backend/internal/apierror"
	"github.com/JonnyWalker81/workwell/backend/internal/cache"
	"github.com/JonnyWalker81/workwell/backend/internal/logger"
	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"

	// IdempotencyTTL is how long a stored response can be replayed
	IdempotencyTTL = 24 * time.Hour
)

// idempotencyRecord is the stored form of a replayable response
type idempotencyRecord struct {
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// idempotencyBodyWriter wraps gin.ResponseWriter to capture the response body for idempotency caching
type idempotencyBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *idempotencyBodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func idempotencyStoreKey(userID, route, key string) string {
	return "idempotency:" + userID + ":" + route + ":" + key
}

// Idempotency middleware replays the stored response for a repeated
// Idempotency-Key on the same route and user. Only mutating requests are
// considered and only 2xx responses are stored. Store failures fall through
// to normal processing.
func Idempotency(store cache.Store, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())

		method := c.Request.Method
		if method != http.MethodPost && method != http.MethodPut && method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		userID, ok := UserID(c)
		if !ok {
			log.Warn("idempotency check failed: no user_id in context")
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
			c.Abort()
			return
		}

		route := method + " " + c.FullPath()
		storeKey := idempotencyStoreKey(userID, route, key)

		raw, found, err := store.Get(c.Request.Context(), storeKey)
		if err != nil {
			log.Warn("failed to check idempotency key",
				logger.Err(err),
				logger.String("key", key),
			)
			c.Next()
			return
		}

		if found {
			var rec idempotencyRecord
			if err := json.Unmarshal(raw, &rec); err == nil {
				log.Info("replaying idempotent response",
					logger.String("key", key),
					logger.String("route", route),
					logger.Int("status_code", rec.StatusCode),
				)

				c.Header("X-Idempotency-Replayed", "true")
				c.Data(rec.StatusCode, rec.ContentType, rec.Body)
				c.Abort()
				return
			}
			log.Warn("discarding undecodable idempotency record", logger.String("key", key))
		}

		blw := &idempotencyBodyWriter{
			body:           bytes.NewBuffer(nil),
			ResponseWriter: c.Writer,
		}
		c.Writer = blw

		c.Next()

		statusCode := c.Writer.Status()
		if statusCode < 200 || statusCode >= 300 {
			return
		}

		rec, err := json.Marshal(idempotencyRecord{
			StatusCode:  statusCode,
			ContentType: c.Writer.Header().Get("Content-Type"),
			Body:        blw.body.Bytes(),
		})
		if err == nil {
			err = store.Set(c.Request.Context(), storeKey, rec, ttl)
		}
		if err != nil {
			log.Warn("failed to store idempotency key",
				logger.Err(err),
				logger.String("key", key),
			)
			return
		}

		log.Debug("stored idempotency key",
			logger.String("key", key),
			logger.String("route", route),
			logger.Int("status_code", statusCode),
		)
	}
}
