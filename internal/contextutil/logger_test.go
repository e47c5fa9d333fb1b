package contextutil

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, nil))

	tests := []struct {
		name string
		ctx  context.Context
		want *slog.Logger
	}{
		{name: "logger in context", ctx: WithLogger(context.Background(), custom), want: custom},
		{name: "set with exported key", ctx: context.WithValue(context.Background(), LoggerKey(), custom), want: custom},
		{name: "no logger", ctx: context.Background(), want: slog.Default()},
		{name: "wrong type", ctx: context.WithValue(context.Background(), LoggerKey(), "not a logger"), want: slog.Default()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LoggerFromContext(tt.ctx); got != tt.want {
				t.Errorf("LoggerFromContext() = %p, want %p", got, tt.want)
			}
		})
	}
}
