package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		enabled zapcore.Level
	}{
		{"server", ServerConfig("", false), false, zapcore.InfoLevel},
		{"server development", ServerConfig("", true), false, zapcore.DebugLevel},
		{"server explicit level", ServerConfig("error", true), false, zapcore.ErrorLevel},
		{"cli quiet", CLIConfig(false), false, zapcore.WarnLevel},
		{"cli verbose", CLIConfig(true), false, zapcore.DebugLevel},
		{"bad level", Config{Level: "loud"}, true, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.enabled-1))
		})
	}
}

func TestNop(t *testing.T) {
	nop := NewNop()
	assert.False(t, nop.Core().Enabled(zapcore.ErrorLevel))
	assert.NotNil(t, nop.Component("server"))
}
