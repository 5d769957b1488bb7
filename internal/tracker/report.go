package tracker

import (
	"github.com/o-avdienko/telegram-calorie-bot/internal/errvalues"
	"github.com/o-avdienko/telegram-calorie-bot/pkg/models"
)

// DayStatus — срез дневного прогресса для /status.
type DayStatus struct {
	WaterConsumed  int
	WaterTarget    int
	WaterPercent   int
	WaterRemaining int

	CaloriesEaten    int
	CaloriesBurned   int
	Balance          int
	CalorieTarget    int
	CaloriePercent   int
	CalorieRemaining int
}

// Status считает проценты и остатки по текущему состоянию профиля.
// Проценты всегда в пределах [0,100].
func (s *Service) Status(userID int64) (*DayStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, errvalues.ErrNoProfile
	}

	balance := p.CaloriesEaten - p.CaloriesBurned
	return &DayStatus{
		WaterConsumed:  p.WaterConsumed,
		WaterTarget:    p.WaterTarget,
		WaterPercent:   percentOf(p.WaterConsumed, p.WaterTarget),
		WaterRemaining: maxInt(p.WaterTarget-p.WaterConsumed, 0),

		CaloriesEaten:    p.CaloriesEaten,
		CaloriesBurned:   p.CaloriesBurned,
		Balance:          balance,
		CalorieTarget:    p.CalorieTarget,
		CaloriePercent:   percentOf(balance, p.CalorieTarget),
		CalorieRemaining: maxInt(p.CalorieTarget-balance, 0),
	}, nil
}

// WaterAdviceKind — ветка рекомендации по воде.
type WaterAdviceKind int

const (
	WaterDrinkNow WaterAdviceKind = iota // дефицит > 500 мл
	WaterAlmost                          // дефицит в (0, 500]
	WaterDone                            // норма выполнена
)

// CalorieAdviceKind — ветка рекомендации по калориям.
type CalorieAdviceKind int

const (
	CalorieOver    CalorieAdviceKind = iota // баланс выше нормы более чем на 300
	CalorieEatMore                          // дефицит > 300
	CalorieAlmost                           // дефицит в (0, 300]
	CalorieDone                             // цель достигнута
)

// Advice — данные для текстовых рекомендаций /tips. Правила без состояния,
// пересчитываются при каждом вызове.
type Advice struct {
	Water        WaterAdviceKind
	WaterDeficit int
	WaterPortion int // разовая порция при большом дефиците, не более 250 мл

	Calories       CalorieAdviceKind
	CalorieExcess  int
	WalkMinutes    int // прогулка, компенсирующая превышение
	CalorieDeficit int
}

// Tips оценивает три независимых правила по текущему профилю.
func (s *Service) Tips(userID int64) (*Advice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, errvalues.ErrNoProfile
	}

	advice := &Advice{}

	waterDeficit := p.WaterTarget - p.WaterConsumed
	advice.WaterDeficit = waterDeficit
	switch {
	case waterDeficit > 500:
		advice.Water = WaterDrinkNow
		advice.WaterPortion = minInt(250, waterDeficit)
	case waterDeficit > 0:
		advice.Water = WaterAlmost
	default:
		advice.Water = WaterDone
	}

	balance := p.CaloriesEaten - p.CaloriesBurned
	deficit := p.CalorieTarget - balance
	advice.CalorieDeficit = deficit
	switch {
	case balance > p.CalorieTarget+300:
		advice.Calories = CalorieOver
		advice.CalorieExcess = balance - p.CalorieTarget
		advice.WalkMinutes = int(float64(advice.CalorieExcess) / (walkingMET * p.Weight / 60))
	case deficit > 300:
		advice.Calories = CalorieEatMore
	case deficit > 0:
		advice.Calories = CalorieAlmost
	default:
		advice.Calories = CalorieDone
	}

	return advice, nil
}

// SeriesKind — какой таймлайн отдан на отрисовку.
type SeriesKind int

const (
	SeriesWater SeriesKind = iota
	SeriesCalories
	SeriesBurned
)

// Series — таймлайн, готовый к отрисовке: копия точек и целевая линия
// (0 — без неё).
type Series struct {
	Kind   SeriesKind
	Points []models.TimelinePoint
	Target int
}

// ChartSeries возвращает таймлайны минимум с двумя точками в порядке
// вода → калории → тренировки. Если таких нет вовсе —
// errvalues.ErrNotEnoughData.
func (s *Service) ChartSeries(userID int64) ([]Series, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, errvalues.ErrNoProfile
	}

	var series []Series
	if len(p.WaterTimeline) >= 2 {
		series = append(series, Series{Kind: SeriesWater, Points: copyPoints(p.WaterTimeline), Target: p.WaterTarget})
	}
	if len(p.CalorieTimeline) >= 2 {
		series = append(series, Series{Kind: SeriesCalories, Points: copyPoints(p.CalorieTimeline), Target: p.CalorieTarget})
	}
	if len(p.WorkoutTimeline) >= 2 {
		series = append(series, Series{Kind: SeriesBurned, Points: copyPoints(p.WorkoutTimeline)})
	}

	if len(series) == 0 {
		return nil, errvalues.ErrNotEnoughData
	}
	return series, nil
}

// copyPoints копирует точки, чтобы отрисовка шла по снимку вне блокировки.
func copyPoints(points []models.TimelinePoint) []models.TimelinePoint {
	out := make([]models.TimelinePoint, len(points))
	copy(out, points)
	return out
}
