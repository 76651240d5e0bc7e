package ctxutil

import (
	"context"
	"testing"
)

func TestRequestRoundTrip(t *testing.T) {
	if _, ok := RequestFrom(context.Background()); ok {
		t.Fatalf("empty context reported a request")
	}
	if kv := LogFields(context.Background()); kv != nil {
		t.Fatalf("LogFields on empty ctx: %v", kv)
	}

	ctx := WithRequest(context.Background(), Request{ID: "r1", TraceID: "t1"})
	got, ok := RequestFrom(ctx)
	if !ok || got.ID != "r1" || got.TraceID != "t1" {
		t.Fatalf("RequestFrom: got=%+v ok=%v", got, ok)
	}
	kv := LogFields(ctx)
	if len(kv) != 4 || kv[1] != "r1" || kv[3] != "t1" {
		t.Fatalf("LogFields: %v", kv)
	}
}

func TestLogFieldsSkipsEmpty(t *testing.T) {
	ctx := WithRequest(context.Background(), Request{ID: "only"})
	kv := LogFields(ctx)
	if len(kv) != 2 || kv[0] != "request_id" {
		t.Fatalf("LogFields: %v", kv)
	}
}
