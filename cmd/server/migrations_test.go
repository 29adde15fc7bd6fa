package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/ecommerce-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_UnknownCommand(t *testing.T) {
	err := runMigrations(context.Background(), nil, "sideways", slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command: sideways")
}

func TestIsMigrationCommand(t *testing.T) {
	for _, c := range []string{"up", "down", "status", "version", "reset"} {
		assert.True(t, isMigrationCommand(c), c)
	}
	assert.False(t, isMigrationCommand("create"))
	assert.False(t, isMigrationCommand(""))
}

func TestSlogGooseLogger(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	l := &slogGooseLogger{logger: logger.New(buf, slog.LevelDebug)}

	l.Printf("OK   %s\n", "00001_create_users.sql")
	l.Fatalf("failed: %v", "boom")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "OK   00001_create_users.sql", entries[0]["msg"])
	assert.Equal(t, "ERROR", entries[1]["level"])
	assert.Equal(t, "failed: boom", entries[1]["msg"])
}
