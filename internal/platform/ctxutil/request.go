package ctxutil

import "context"

type requestKey struct{}

// Request identifies one inbound call for logs and response headers.
type Request struct {
	ID      string
	TraceID string
	// Sampled is true when TraceID came from a recording otel span.
	Sampled bool
}

func WithRequest(ctx context.Context, r Request) context.Context {
	return context.WithValue(ctx, requestKey{}, r)
}

func RequestFrom(ctx context.Context) (Request, bool) {
	if ctx == nil {
		return Request{}, false
	}
	r, ok := ctx.Value(requestKey{}).(Request)
	return r, ok
}

// LogFields returns request_id/trace_id pairs for logger calls, or nil.
func LogFields(ctx context.Context) []interface{} {
	r, ok := RequestFrom(ctx)
	if !ok {
		return nil
	}
	var kv []interface{}
	if r.ID != "" {
		kv = append(kv, "request_id", r.ID)
	}
	if r.TraceID != "" {
		kv = append(kv, "trace_id", r.TraceID)
	}
	return kv
}
