package log_test

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"gemini-provider/pkg/log"
)

func TestLogger_RequestIDField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := log.NewWithCore(core)

	ctx := log.WithRequestID(context.Background(), "req-123")
	l.Infof(ctx, "hello %s", "world")
	l.Warn(context.Background(), "no id")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "hello world" {
		t.Errorf("unexpected message: %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-123" {
		t.Errorf("request_id = %v, want req-123", got)
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Errorf("request_id should be absent when context has none")
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", entries[1].Level)
	}
}

func TestInit_UnknownLevelFallsBack(t *testing.T) {
	l := log.Init(log.ZapConfig{
		Level:    "not-a-level",
		Mode:     log.ModeProduction,
		Encoding: log.EncodingJSON,
	})
	if l == nil {
		t.Fatal("Init returned nil logger")
	}
	l.Debug(context.Background(), "dropped below info")
}

func TestRequestID_Empty(t *testing.T) {
	if id := log.RequestID(context.Background()); id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
}
