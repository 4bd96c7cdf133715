package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logger, logFile := setupLogging(t.TempDir(), false)
	assert.Nil(t, logFile)
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(0), "nop logger should reject every level")
	assert.Equal(t, io.Discard, log.Writer())
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, logFile := setupLogging(dir, true)
	require.NotNil(t, logFile)
	defer logFile.Close()

	logPath := filepath.Join(dir, logFileName)
	_, err := os.Stat(logPath)
	require.NoError(t, err, "log file should be created")

	logger.Info("test log message")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "test log message")
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)

	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	_, logFile := setupLogging(dir, true)
	require.NotNil(t, logFile)
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	assert.True(t, rotatedFound, "expected a rotated log file")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(maxLogSize))
}

func TestSetupLogging_RotationFailureIsLogged(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	// A non-empty directory as the target makes the rename fail
	blocked := filepath.Join(dir, "blocked.log")
	require.NoError(t, os.MkdirAll(filepath.Join(blocked, "keep"), 0755))
	orig := rotatedLogPath
	rotatedLogPath = func(string, time.Time) string { return blocked }
	t.Cleanup(func() { rotatedLogPath = orig })

	logger, logFile := setupLogging(dir, true)
	require.NotNil(t, logFile)
	defer logFile.Close()
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "log rotation failed")
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	_, logFile := setupLogging(t.TempDir(), true)
	require.NotNil(t, logFile)
	defer logFile.Close()

	output := log.Writer()
	assert.NotEqual(t, os.Stdout, output)
	assert.NotEqual(t, os.Stderr, output)
}
