package logger

import (
	"context"
	"testing"

	"github.com/muhammadheryan/watch-storefront/constant"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCtx(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Replace(zap.New(core))
	defer Replace(nil)

	tests := []struct {
		name      string
		ctx       context.Context
		wantField bool
	}{
		{"nil context", nil, false},
		{"no request id", context.Background(), false},
		{"empty request id", context.WithValue(context.Background(), constant.RequestIDKey, ""), false},
		{"request id", context.WithValue(context.Background(), constant.RequestIDKey, "req-1"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Ctx(tt.ctx).Info("hello")
			entries := logs.TakeAll()
			if len(entries) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(entries))
			}
			id, ok := entries[0].ContextMap()["request_id"]
			if ok != tt.wantField {
				t.Fatalf("request_id present = %v, want %v", ok, tt.wantField)
			}
			if tt.wantField && id != "req-1" {
				t.Fatalf("request_id = %v, want req-1", id)
			}
		})
	}
}

func TestInitLevel(t *testing.T) {
	defer Replace(nil)

	tests := []struct {
		name      string
		env       string
		levelName string
		want      zapcore.Level
		wantErr   bool
	}{
		{"development defaults to debug", "development", "", zapcore.DebugLevel, false},
		{"production defaults to info", "production", "", zapcore.InfoLevel, false},
		{"explicit level wins", "production", "warn", zapcore.WarnLevel, false},
		{"unknown level", "development", "loud", zapcore.DebugLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(tt.env, tt.levelName)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Init() error = %v, wantErr %v", err, tt.wantErr)
			}
			if Level() != tt.want {
				t.Fatalf("Level() = %v, want %v", Level(), tt.want)
			}
		})
	}
}

func TestGetFallsBackToNop(t *testing.T) {
	Replace(nil)
	if Get() == nil {
		t.Fatalf("Get() returned nil")
	}
	// must not panic or exit
	Info("quiet")
	Close()
}
