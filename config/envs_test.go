package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Run("Defaults apply when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnvWithDefault("GENMAZE_TEST_UNSET", "fallback"))
		assert.Equal(t, 7, getEnvAsIntWithDefault("GENMAZE_TEST_UNSET", 7))
		assert.Equal(t, int64(9), getEnvAsInt64WithDefault("GENMAZE_TEST_UNSET", 9))
	})

	t.Run("Set values win", func(t *testing.T) {
		t.Setenv("GENMAZE_TEST_STR", "debug")
		t.Setenv("GENMAZE_TEST_INT", "42")
		t.Setenv("GENMAZE_TEST_SEED", "1234567890123")

		assert.Equal(t, "debug", getEnvWithDefault("GENMAZE_TEST_STR", "release"))
		assert.Equal(t, 42, getEnvAsIntWithDefault("GENMAZE_TEST_INT", 7))
		assert.Equal(t, int64(1234567890123), getEnvAsInt64WithDefault("GENMAZE_TEST_SEED", 0))
	})

	t.Run("Loaded config has sane defaults", func(t *testing.T) {
		assert.Greater(t, Envs.MaxMazeDimension, 0)
		assert.NotEmpty(t, Envs.GinMode)
	})
}
