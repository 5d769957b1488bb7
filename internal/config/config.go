package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config — настройки бота из переменных окружения.
type Config struct {
	TelegramBotToken string
	WeatherAPIKey    string
}

// Load читает .env (если есть) и собирает конфигурацию.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		TelegramBotToken: os.Getenv("BOT_TOKEN"),
		WeatherAPIKey:    os.Getenv("WEATHER_API_KEY"),
	}

	if cfg.TelegramBotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN не найден в переменных окружения")
	}
	if cfg.WeatherAPIKey == "" {
		return nil, fmt.Errorf("WEATHER_API_KEY не найден в переменных окружения")
	}

	return cfg, nil
}
