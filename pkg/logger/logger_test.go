package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_LevelThreshold(t *testing.T) {
	log, err := New("warn", "production")
	require.NoError(t, err)
	defer log.Sync()

	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := New("loud", "development")
	require.NoError(t, err)
	defer log.Sync()

	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
