package middleware

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"universal-summarizer/api/trace"
	"universal-summarizer/logger"
	"universal-summarizer/metrics"
)

const (
	headerRequestID = "X-Request-Id"
	// maxRequestIDLength 는 외부에서 받은 Request ID 의 최대 rune 수다.
	maxRequestIDLength = 64
)

// RequestTrace 는 모든 inbound 요청에 Request ID 를 보장하고,
// 컨텍스트/응답 헤더에 저장한 뒤 완료 로그와 HTTP 메트릭을 남긴다.
func RequestTrace(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := truncateRequestID(req.Header.Get(headerRequestID))
		if requestID == "" {
			requestID = trace.GenerateID()
		}
		c.Request = req.WithContext(trace.WithRequestID(req.Context(), requestID))
		c.Writer.Header().Set(headerRequestID, requestID)

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(req.Method, route, status, duration)

		fields := logger.Fields{
			"method":     req.Method,
			"path":       req.URL.Path,
			"status":     status,
			"duration":   duration.String(),
			"request_id": requestID,
		}
		if q := req.URL.RawQuery; q != "" {
			fields["query"] = q
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		logger.InfoWithFields("completed request", fields)
	}
}

func truncateRequestID(id string) string {
	id = strings.TrimSpace(id)
	if utf8.RuneCountInString(id) <= maxRequestIDLength {
		return id
	}
	return string([]rune(id)[:maxRequestIDLength])
}
