package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env     string
		enabled slog.Level
		muted   slog.Level
	}{
		{envLocal, slog.LevelDebug, slog.LevelDebug - 1},
		{envDev, slog.LevelInfo, slog.LevelDebug},
		{envProd, slog.LevelWarn, slog.LevelInfo},
		{"unknown", slog.LevelError, slog.LevelWarn},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := setupLogger(tt.env, &buf)

			assert.True(t, logger.Enabled(context.Background(), tt.enabled))
			assert.False(t, logger.Enabled(context.Background(), tt.muted))
		})
	}
}

func TestSetupLogger_ProductionDropsTime(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := setupLogger(envProd, &buf)

	logger.Warn("roster warning")

	assert.Contains(t, buf.String(), "roster warning")
	assert.NotContains(t, buf.String(), `"time"`)
}

func TestSetupLogger_UnknownEnvWarns(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_ = setupLogger("", &buf)

	assert.Contains(t, buf.String(), "The env parameter was not specified")
}
