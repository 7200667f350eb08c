package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	assert.Equal(t, "value", getEnvAsString("TEST_STR", "fallback"))
	assert.Equal(t, "fallback", getEnvAsString("TEST_STR_ABSENT", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, getEnvAsInt("TEST_INT", 7))

	t.Setenv("TEST_INT_BAD", "not-a-number")
	assert.Equal(t, 7, getEnvAsInt("TEST_INT_BAD", 7))
}

func TestGetEnvAsTimeDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "30s")
	assert.Equal(t, 30*time.Second, getEnvAsTimeDuration("TEST_DUR", time.Minute))

	// Bare integers read as seconds.
	t.Setenv("TEST_DUR_BARE", "15")
	assert.Equal(t, 15*time.Second, getEnvAsTimeDuration("TEST_DUR_BARE", time.Minute))

	assert.Equal(t, time.Minute, getEnvAsTimeDuration("TEST_DUR_ABSENT", time.Minute))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	assert.True(t, getEnvAsBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL_BAD", "definitely")
	assert.False(t, getEnvAsBool("TEST_BOOL_BAD", false))
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("TEST_SLICE", "Pichau, Terabyte ,Kabum,")
	assert.Equal(t, []string{"Pichau", "Terabyte", "Kabum"}, getEnvAsSlice("TEST_SLICE", nil))

	assert.Equal(t, []string{"x"}, getEnvAsSlice("TEST_SLICE_ABSENT", []string{"x"}))
}
