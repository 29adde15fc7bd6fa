package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/ecommerce-api/internal/config"
	"github.com/phrazzld/ecommerce-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		want   slog.Level
		wantOK bool
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug, wantOK: true},
		{name: "info", input: "info", want: slog.LevelInfo, wantOK: true},
		{name: "warn", input: "warn", want: slog.LevelWarn, wantOK: true},
		{name: "error", input: "error", want: slog.LevelError, wantOK: true},
		{name: "case insensitive", input: "DEBUG", want: slog.LevelDebug, wantOK: true},
		{name: "unknown falls back to info", input: "verbose", want: slog.LevelInfo, wantOK: false},
		{name: "empty", input: "", want: slog.LevelInfo, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := logger.ParseLevel(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestSetup(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	l, err := logger.Setup(config.ServerConfig{LogLevel: "warn", Port: 8080})
	require.NoError(t, err)
	require.NotNil(t, l)

	assert.Same(t, l, slog.Default())
	assert.False(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, l.Enabled(context.Background(), slog.LevelWarn))
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	l := logger.New(buf, slog.LevelInfo)

	l.Debug("debug test message")
	l.Info("info test message", slog.Int64("order_id", 7))

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "info test message", entries[0]["msg"])
	assert.EqualValues(t, 7, entries[0]["order_id"])
}

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.Default()
	customLogger := logger.New(&logger.TestLogBuffer{}, slog.LevelDebug)

	tests := []struct {
		name     string
		ctx      context.Context
		def      *slog.Logger
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			def:      defaultLogger,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			def:      defaultLogger,
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			def:      defaultLogger,
			expected: customLogger,
		},
		{
			name:     "nil_default_uses_slog_default",
			ctx:      context.Background(),
			def:      nil,
			expected: slog.Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.expected, logger.FromContextOrDefault(tt.ctx, tt.def))
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("valid_logger", func(t *testing.T) {
		customLogger := logger.New(&logger.TestLogBuffer{}, slog.LevelDebug)
		ctx := logger.WithLogger(context.Background(), customLogger)
		assert.Same(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}

func TestNewTestContext(t *testing.T) {
	ctx, buf := logger.NewTestContext(t)
	logger.FromContext(ctx).Debug("captured", slog.String("trace_id", "abc"))

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "abc", entries[0]["trace_id"])
}
