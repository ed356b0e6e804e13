package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
	_ = Close()
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	assert.Equal(t, "[DEBUG] test message arg\n", buf.String())
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")

	assert.Zero(t, buf.Len(), "expected no output when verbose is disabled")
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name string
		log  func()
		want string
	}{
		{name: "section", log: func() { Section("Configuration") }, want: "\n=== Configuration ===\n"},
		{name: "info", log: func() { Info("matches: %d", 2) }, want: "[INFO] matches: 2\n"},
		{name: "warn", log: func() { Warn("ignoring %q", "extra") }, want: "[WARN] ignoring \"extra\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer reset()

			var buf bytes.Buffer
			SetOutput(&buf)
			SetVerbose(true)

			tt.log()

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestEnableFile_WritesRegardlessOfVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	path := filepath.Join(t.TempDir(), "logs", "minigrep.log")
	require.NoError(t, EnableFile(DefaultFileConfig(path)))

	Info("read %d bytes", 42)
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] read 42 bytes\n", string(data))
	assert.Zero(t, buf.Len(), "stderr stays quiet without --verbose")
}

func TestEnableFile_EmptyPath(t *testing.T) {
	defer reset()

	err := EnableFile(FileConfig{})

	assert.Error(t, err)
}

func TestClose_WithoutFile(t *testing.T) {
	assert.NoError(t, Close())
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/minigrep.log")

	assert.Equal(t, "/tmp/minigrep.log", cfg.Path)
	assert.Equal(t, 10, cfg.MaxSize)
	assert.Equal(t, 3, cfg.MaxBackups)
	assert.Equal(t, 30, cfg.MaxAge)
	assert.True(t, cfg.Compress)
}

func TestConcurrentAccess(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
