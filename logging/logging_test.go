package logging_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphtrace/config"
	"github.com/katalvlaran/graphtrace/logging"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, logging.Level("debug"))
	assert.Equal(t, zap.WarnLevel, logging.Level("WARN"))
	assert.Equal(t, zap.ErrorLevel, logging.Level("error"))
	assert.Equal(t, zap.InfoLevel, logging.Level("info"))
	assert.Equal(t, zap.InfoLevel, logging.Level("verbose"))
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{config.FormatConsole, config.FormatJSON, config.FormatAuto} {
		log, err := logging.NewLogger(config.Log{Level: "warn", Format: format})
		require.NoError(t, err, format)
		assert.False(t, log.Core().Enabled(zap.InfoLevel), format)
		assert.True(t, log.Core().Enabled(zap.WarnLevel), format)
	}

	log, err := logging.NewLogger(config.Log{Level: "debug", Format: config.FormatConsole})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))
}

func TestConsole(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer f.Close()

	assert.True(t, logging.Console(config.FormatConsole, f.Fd()))
	assert.False(t, logging.Console(config.FormatJSON, f.Fd()))
	assert.False(t, logging.Console(config.FormatAuto, f.Fd()), "a regular file is not a terminal")
}
