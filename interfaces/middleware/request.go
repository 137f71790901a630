package middleware

import (
	"net/http"
	"strconv"
	"time"

	"finflix/domain/dto"
	"finflix/infrastructure/logger"
	"finflix/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

// RequestID reuses the caller's X-Request-Id or mints one, and makes it
// available to logger.FromContext for the rest of the request.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Writer.Header().Set(HeaderRequestID, id)
		ctx.Request = ctx.Request.WithContext(logger.WithRequestID(ctx.Request.Context(), id))
		ctx.Next()
	}
}

// AccessLog logs one line per request and feeds the HTTP collectors.
func AccessLog() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := ctx.Writer.Status()
		elapsed := time.Since(start)

		metrics.HTTPRequestsTotal.WithLabelValues(ctx.Request.Method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(ctx.Request.Method, route).Observe(elapsed.Seconds())

		entry := logger.FromContext(ctx.Request.Context()).
			WithField("method", ctx.Request.Method).
			WithField("path", ctx.Request.URL.Path).
			WithField("status", status).
			WithField("latency_ms", elapsed.Milliseconds())
		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request handled")
		}
	}
}

// Recovery turns a panic into a 500 with the generic error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered interface{}) {
		logger.FromContext(ctx.Request.Context()).WithField("panic", recovered).Error("Recovered from panic")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.ResError{Error: "Server error"})
	})
}
