package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Defaults(t *testing.T) {
	logger, err := NewLogger(NewDefaultConfig())

	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Enabled(zapcore.DebugLevel))
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Format = "xml"

	_, err := NewLogger(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "format must be")
}

func TestNewLogger_DebugLevel(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Level = zapcore.DebugLevel

	logger, err := NewLogger(cfg)

	require.NoError(t, err)
	assert.True(t, logger.Enabled(zapcore.DebugLevel))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(c *Config) {}, false},
		{"json format", func(c *Config) { c.Format = "json" }, false},
		{"bad format", func(c *Config) { c.Format = "" }, true},
		{"negative caller skip", func(c *Config) {
			c.Caller.Enabled = true
			c.Caller.Skip = -1
		}, true},
		{"empty field key", func(c *Config) { c.Fields = map[string]string{"": "v"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogger_ChildLoggers(t *testing.T) {
	tl := NewTestLogger()

	child := tl.With(zap.String("run_id", "r1")).Named("solve")
	child.Info("started")
	tl.Info("parent untouched")

	entries := tl.FilterMessage("started").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "solve", entries[0].LoggerName)
	assert.Equal(t, "r1", entries[0].ContextMap()["run_id"])

	parent := tl.FilterMessage("parent untouched").All()
	require.Len(t, parent, 1)
	assert.Empty(t, parent[0].LoggerName)
}

func TestTestLogger_Assertions(t *testing.T) {
	tl := NewTestLogger()

	tl.Info("plan found", zap.Int("steps", 2))
	tl.Debug("achieving")

	tl.AssertLogged(t, zapcore.InfoLevel, "plan found")
	tl.AssertLogged(t, zapcore.DebugLevel, "achieving")
	tl.AssertNotLogged(t, zapcore.ErrorLevel, "plan found")
	tl.AssertField(t, "plan found", "steps", int64(2))

	tl.Reset()
	assert.Empty(t, tl.All())
}
