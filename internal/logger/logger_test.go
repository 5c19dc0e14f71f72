package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zap.DebugLevel,
		"warn":    zap.WarnLevel,
		"error":   zap.ErrorLevel,
		"info":    zap.InfoLevel,
		"verbose": zap.InfoLevel,
	}

	for input, want := range tests {
		assert.Equal(t, want, parseLevel(input), input)
	}
}

func TestForRequest(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := NewLogger(zap.New(core))

	log.ForRequest("req-1", "GET", "/api/portfolio/summary").Infow("HTTP Request", "status_code", 200)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "req-1", fields["request_id"])
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "/api/portfolio/summary", fields["path"])
		assert.Equal(t, int64(200), fields["status_code"])
	}
}

func TestWithContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := NewLogger(zap.New(core))

	// No span: logger is returned unchanged
	log.WithContext(context.Background()).Info("plain")

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))
	log.WithContext(ctx).Info("traced")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.NotContains(t, entries[0].ContextMap(), "trace_id")
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", entries[1].ContextMap()["trace_id"])
		assert.Equal(t, "00f067aa0ba902b7", entries[1].ContextMap()["span_id"])
	}
}

func TestNew(t *testing.T) {
	assert.NotNil(t, New("debug", "development"))
	assert.NotNil(t, New("info", "production"))
}
