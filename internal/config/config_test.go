package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("WEATHER_API_KEY", "owm-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.TelegramBotToken)
	assert.Equal(t, "owm-key", cfg.WeatherAPIKey)
}

func TestLoadMissingBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("WEATHER_API_KEY", "owm-key")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMissingWeatherKey(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("WEATHER_API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}
