package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LogConfig
		wantErr bool
	}{
		{
			name: "default config",
			cfg:  DefaultLogConfig(),
		},
		{
			name: "console format",
			cfg:  LogConfig{Level: "debug", Format: "console", Output: "stderr"},
		},
		{
			name:    "invalid level",
			cfg:     LogConfig{Level: "verbose"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.cfg)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, logger)

			assert.NotPanics(t, func() {
				logger.Debug("debug message", String("key", "value"))
				logger.Info("info message", Int("count", 1))
				logger.Warn("warn message", Bool("flag", true))
				logger.Error("error message", Any("data", map[string]int{"a": 1}))
			})
		})
	}
}

func TestLogger_With(t *testing.T) {
	logger, err := NewLogger(DefaultLogConfig())
	require.NoError(t, err)

	child := logger.With(String("component", "encoding"))
	require.NotNil(t, child)
	assert.NotPanics(t, func() {
		child.Info("message with fields")
	})
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()
	require.NotNil(t, logger)

	assert.NotPanics(t, func() {
		logger.Debug("discarded")
		logger.Info("discarded")
		logger.Warn("discarded")
		logger.Error("discarded")
	})

	assert.Equal(t, logger, logger.With(String("key", "value")))
	assert.NoError(t, logger.Sync())
}
