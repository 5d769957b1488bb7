// Package tracker — ядро ассистента: хранилище профилей, формулы норм,
// пошаговая настройка, дневной журнал и отчёты. Не знает о транспорте;
// внешние сервисы подключаются через интерфейсы.
package tracker

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/o-avdienko/telegram-calorie-bot/pkg/models"
)

// WeatherAPI — внешний сервис текущей температуры по городу.
type WeatherAPI interface {
	Temperature(ctx context.Context, city string) (float64, error)
}

// FoodAPI — внешняя база калорийности продуктов.
type FoodAPI interface {
	Find(ctx context.Context, query string) (*models.FoodProduct, error)
}

// Service хранит профили и переходные состояния всех пользователей.
// Обновления обрабатываются в отдельных горутинах, поэтому доступ к картам
// и мутации профилей идут под общим мьютексом; сетевые вызовы внешних
// сервисов выполняются вне блокировки.
type Service struct {
	weather WeatherAPI
	food    FoodAPI
	now     func() time.Time

	mu       sync.Mutex
	profiles map[int64]*models.UserProfile
	sessions map[int64]*models.SetupSession
	pending  map[int64]*models.FoodProduct
}

// New создаёт ядро трекера.
func New(weather WeatherAPI, food FoodAPI) *Service {
	return &Service{
		weather:  weather,
		food:     food,
		now:      time.Now,
		profiles: make(map[int64]*models.UserProfile),
		sessions: make(map[int64]*models.SetupSession),
		pending:  make(map[int64]*models.FoodProduct),
	}
}

// timeLabel — метка текущего времени для точек таймлайна.
func (s *Service) timeLabel() string {
	return s.now().Format("15:04")
}

// HasProfile сообщает, настроен ли профиль пользователя.
func (s *Service) HasProfile(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.profiles[userID]
	return ok
}

// parseFloat разбирает число, допуская запятую вместо точки.
// NaN и бесконечности невалидны: они проходят любые сравнения границ.
func parseFloat(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(text), ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseInt разбирает целое; десятичная запись допустима, дробная часть отбрасывается.
func parseInt(text string) (int, bool) {
	v, ok := parseFloat(text)
	return int(v), ok
}

// percentOf — процент выполнения цели, обрезанный до [0,100].
func percentOf(value, target int) int {
	if target <= 0 {
		return 0
	}
	p := value * 100 / target
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
