package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"go.trai.ch/courier/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "task accepted", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "site not live", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "deployment failed", goldenName: "handler_error"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "debug message", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
			slog.New(handler).Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*slog.Logger)
		goldenName string
	}{
		{
			name: "record attributes",
			log: func(l *slog.Logger) {
				l.Info("stage transition", "key", "t-1-n", "stage", "deploying")
			},
			goldenName: "handler_attrs_record",
		},
		{
			name: "handler attributes",
			log: func(l *slog.Logger) {
				l.With("worker", 2).Info("run started", "key", "t-1-n")
			},
			goldenName: "handler_attrs_handler",
		},
		{
			name: "group prefix",
			log: func(l *slog.Logger) {
				l.WithGroup("submission").Warn("attempt failed", "attempt", 3)
			},
			goldenName: "handler_attrs_group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			tt.log(slog.New(logger.NewPrettyHandler(buf, nil)))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}
