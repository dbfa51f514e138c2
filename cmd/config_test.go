package cmd

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestParseSlogLevel(t *testing.T) {
	cases := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"  info  ", slog.LevelInfo},
		{"-4", slog.LevelDebug},
		{"8", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			assert.Equal(t, tc.want, parseSlogLevel(tc.value, slog.LevelInfo))
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, defaultMaxTurns, viper.GetInt(maxTurnsConfigKey))
	assert.Equal(t, defaultPermissionMode, viper.GetString(permissionConfigKey))
	assert.Equal(t, []string{"Read", "Write"}, viper.GetStringSlice(toolsConfigKey))
	assert.Equal(t, defaultBinary, viper.GetString(binaryConfigKey))
}
