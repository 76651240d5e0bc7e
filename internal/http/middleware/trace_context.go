package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/dinocatalog-backend/internal/platform/ctxutil"
)

const (
	headerTraceID   = "X-Trace-Id"
	headerRequestID = "X-Request-Id"

	maxClientIDLen = 128
)

// AttachTraceContext tags every request with a request id and a trace id.
// An active otel span wins over the X-Trace-Id header; client supplied ids
// that are too long or contain control characters are replaced.
func AttachTraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		meta := ctxutil.Request{ID: clientID(c.GetHeader(headerRequestID))}
		if meta.ID == "" {
			meta.ID = uuid.NewString()
		}

		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			meta.TraceID = sc.TraceID().String()
			meta.Sampled = sc.IsSampled()
		} else if meta.TraceID = clientID(c.GetHeader(headerTraceID)); meta.TraceID == "" {
			meta.TraceID = uuid.NewString()
		}

		c.Request = c.Request.WithContext(ctxutil.WithRequest(c.Request.Context(), meta))
		c.Set("request_id", meta.ID)
		c.Set("trace_id", meta.TraceID)
		c.Header(headerRequestID, meta.ID)
		c.Header(headerTraceID, meta.TraceID)
		c.Next()
	}
}

func clientID(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || len(v) > maxClientIDLen {
		return ""
	}
	for i := 0; i < len(v); i++ {
		if v[i] < 0x21 || v[i] > 0x7e {
			return ""
		}
	}
	return v
}
