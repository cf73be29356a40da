package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":       zapcore.InfoLevel,
		"debug":  zapcore.DebugLevel,
		" WARN ": zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("chatty")
	assert.Error(t, err)
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "vuecrm.log")

	logger, closeFn, err := New(Options{Path: path, Level: "info"})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("contact added")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"contact added"`)
	assert.NotContains(t, out, "hidden")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vuecrm.log")

	logger, closeFn, err := New(Options{Path: path, Level: "error", Verbose: true})
	require.NoError(t, err)
	logger.Debug("details")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "details")
}

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, closeFn, err := New(Options{})
	require.NoError(t, err)
	logger.Info("nowhere")
	closeFn()
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New(Options{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}
