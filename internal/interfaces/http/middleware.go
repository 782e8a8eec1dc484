package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ninja-api-forge/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
	maxRequestIDLen = 128
)

// queryNames maps bound struct fields back to their query parameter names.
var queryNames = map[string]string{
	"Limit":    "limit",
	"Depth":    "depth",
	"MarketID": "market_id",
}

// requestID propagates X-Request-Id or assigns a fresh one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(log *logger.Log) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		entry := log.WithComponent("http").WithFields(logger.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"query":      c.Request.URL.RawQuery,
			"status":     status,
			"latency_ms": float64(time.Since(start).Nanoseconds()) / 1e6,
			"client_ip":  c.ClientIP(),
			"request_id": c.GetString(requestIDKey),
		})
		switch {
		case status >= 500:
			entry.Error("request served")
		case status >= 400:
			entry.Warn("request served")
		default:
			entry.Info("request served")
		}
	}
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Accept", "Content-Type", "Cache-Control", requestIDHeader}
	cfg.ExposeHeaders = []string{"Content-Length", requestIDHeader}

	allowAll := len(origins) == 0
	for _, origin := range origins {
		if origin == "*" {
			allowAll = true
			break
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func errMissingQuery(name string) error {
	return fmt.Errorf("query.%s: field required", name)
}

// rejectEmptyInts fails when an integer parameter is present with an empty value,
// which the binding would otherwise replace with its default.
func rejectEmptyInts(c *gin.Context, names ...string) error {
	for _, name := range names {
		if v, ok := c.GetQuery(name); ok && strings.TrimSpace(v) == "" {
			return fmt.Errorf("query.%s: input should be a valid integer", name)
		}
	}
	return nil
}

// bindingError turns gin binding failures into a short, client facing message.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid query parameters: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name, ok := queryNames[fe.Field()]
		if !ok {
			name = strings.ToLower(fe.Field())
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, errMissingQuery(name).Error())
		case "min":
			msgs = append(msgs, fmt.Sprintf("query.%s: input should be greater than or equal to %s", name, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("query.%s: input should be less than or equal to %s", name, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("query.%s: failed on %s", name, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
