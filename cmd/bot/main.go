package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/o-avdienko/telegram-calorie-bot/internal/bot"
	"github.com/o-avdienko/telegram-calorie-bot/internal/config"
	"github.com/o-avdienko/telegram-calorie-bot/internal/food"
	"github.com/o-avdienko/telegram-calorie-bot/internal/tracker"
	"github.com/o-avdienko/telegram-calorie-bot/internal/weather"
)

func main() {
	// Загрузка конфигурации из переменных окружения
	log.Println("Загрузка конфигурации...")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}

	weatherClient := weather.NewClient(cfg.WeatherAPIKey)

	foodClient, err := food.NewClient()
	if err != nil {
		log.Fatalf("Не удалось создать клиент поиска продуктов: %v", err)
	}

	trackerService := tracker.New(weatherClient, foodClient)

	b, err := bot.New(cfg.TelegramBotToken, trackerService)
	if err != nil {
		log.Fatalf("Не удалось создать бота: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("🚀 Бот запущен...")
	if err := b.Start(ctx); err != nil {
		log.Fatalf("Ошибка работы бота: %v", err)
	}
}
