package reqctx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"
)

func TestRequestMetaRoundTrip(t *testing.T) {
	if _, ok := RequestMetaFromContext(context.Background()); ok {
		t.Fatal("empty context should have no meta")
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", got)
	}

	ctx := WithRequestMeta(context.Background(), &RequestMeta{RequestID: "abc", RequestedAt: time.Now()})
	if got := RequestIDFromContext(ctx); got != "abc" {
		t.Errorf("RequestIDFromContext() = %q, want abc", got)
	}

	if _, ok := RequestMetaFromContext(WithRequestMeta(context.Background(), nil)); ok {
		t.Error("nil meta should report not found")
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithRequestMeta(context.Background(), &RequestMeta{RequestID: "req-1"})
	Logger(ctx, base).Info("hello")

	if !bytes.Contains(buf.Bytes(), []byte("request_id=req-1")) {
		t.Errorf("log line missing request id: %s", buf.String())
	}
}
