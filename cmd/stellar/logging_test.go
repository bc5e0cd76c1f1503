package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	logFile := setupLogging(false)
	assert.Nil(t, logFile)
	assert.Equal(t, io.Discard, log.Writer())

	_, err := os.Stat(logDir)
	assert.True(t, os.IsNotExist(err), "no logs directory without debug")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	logPath := filepath.Join(logDir, logFileName)
	log.Println("test log message")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.NotEqual(t, os.Stdout, log.Writer())
	assert.NotEqual(t, os.Stderr, log.Writer())
}

func TestSetupLogging_Rotation(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(logDir, 0o755))

	logPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0o644))

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	assert.True(t, rotatedFound, "oversized log is renamed")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(maxLogSize))
}

func TestSetupLogging_SmallLogNotRotated(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(logDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(logDir, logFileName), []byte("old\n"), 0o644))

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
