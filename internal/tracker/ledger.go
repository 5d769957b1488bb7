package tracker

import (
	"context"
	"errors"
	"log"

	"github.com/o-avdienko/telegram-calorie-bot/internal/errvalues"
	"github.com/o-avdienko/telegram-calorie-bot/pkg/models"
)

// Границы разовых записей журнала
const (
	maxWaterPerEntry = 3000 // мл
	maxFoodGrams     = 2000 // г
	maxWorkoutMin    = 300  // минуты
)

// WaterResult — итог записи воды.
type WaterResult struct {
	Added     int
	Consumed  int
	Target    int
	Percent   int
	Remaining int
}

// AddWater записывает выпитую воду (1–3000 мл за раз) и добавляет точку
// в таймлайн с новым накопленным итогом.
func (s *Service) AddWater(userID int64, text string) (*WaterResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, errvalues.ErrNoProfile
	}

	amount, okNum := parseInt(text)
	if !okNum || amount <= 0 || amount > maxWaterPerEntry {
		return nil, errvalues.ErrInvalidInput
	}

	p.WaterConsumed += amount
	p.WaterTimeline = append(p.WaterTimeline, models.TimelinePoint{Label: s.timeLabel(), Value: p.WaterConsumed})

	return &WaterResult{
		Added:     amount,
		Consumed:  p.WaterConsumed,
		Target:    p.WaterTarget,
		Percent:   percentOf(p.WaterConsumed, p.WaterTarget),
		Remaining: maxInt(p.WaterTarget-p.WaterConsumed, 0),
	}, nil
}

// StartFood ищет продукт во внешней базе и запоминает его до ввода граммовки.
// Сбой поиска сообщается как «не найден» и ничего не меняет.
func (s *Service) StartFood(ctx context.Context, userID int64, query string) (*models.FoodProduct, error) {
	if !s.HasProfile(userID) {
		return nil, errvalues.ErrNoProfile
	}

	product, err := s.food.Find(ctx, query)
	if err != nil {
		if !errors.Is(err, errvalues.ErrProductNotFound) {
			log.Printf("Ошибка поиска продукта: %v", err)
		}
		return nil, errvalues.ErrProductNotFound
	}

	s.mu.Lock()
	s.pending[userID] = product
	s.mu.Unlock()
	return product, nil
}

// AwaitingGrams сообщает, ждёт ли пользователь ввода граммовки.
func (s *Service) AwaitingGrams(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[userID]
	return ok
}

// FoodResult — итог записи еды.
type FoodResult struct {
	Product   *models.FoodProduct
	Grams     int
	Kcal      int
	Eaten     int
	Balance   int
	Target    int
	Percent   int
	Remaining int
}

// SubmitFoodGrams завершает запись еды: калории = калорийность * граммы / 100,
// с отбрасыванием дробной части. Невалидная граммовка оставляет продукт
// в ожидании, успех — снимает.
func (s *Service) SubmitFoodGrams(userID int64, text string) (*FoodResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		// Профиль пропал, пока ждали граммовку — ожидание снимается.
		delete(s.pending, userID)
		return nil, errvalues.ErrNoProfile
	}

	product, ok := s.pending[userID]
	if !ok {
		return nil, errvalues.ErrNoPendingFood
	}

	grams, okNum := parseInt(text)
	if !okNum || grams <= 0 || grams > maxFoodGrams {
		return nil, errvalues.ErrInvalidInput
	}

	kcal := int(product.KcalPer100g * float64(grams) / 100)
	p.CaloriesEaten += kcal
	p.CalorieTimeline = append(p.CalorieTimeline, models.TimelinePoint{Label: s.timeLabel(), Value: p.CaloriesEaten})
	delete(s.pending, userID)

	balance := p.CaloriesEaten - p.CaloriesBurned
	return &FoodResult{
		Product:   product,
		Grams:     grams,
		Kcal:      kcal,
		Eaten:     p.CaloriesEaten,
		Balance:   balance,
		Target:    p.CalorieTarget,
		Percent:   percentOf(balance, p.CalorieTarget),
		Remaining: maxInt(p.CalorieTarget-balance, 0),
	}, nil
}

// WorkoutResult — итог записи тренировки.
type WorkoutResult struct {
	Kind        string
	Minutes     int
	Burned      int
	WaterBonus  int
	WaterTarget int
	Balance     int
}

// AddWorkout записывает тренировку (1–300 минут): начисляет сожжённые
// калории, добавляет точку в таймлайн тренировок и увеличивает норму воды.
// Норма воды — единственная цель, меняющаяся после настройки.
func (s *Service) AddWorkout(userID int64, kind, minutesText string) (*WorkoutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, errvalues.ErrNoProfile
	}

	minutes, okNum := parseInt(minutesText)
	if !okNum || minutes <= 0 || minutes > maxWorkoutMin {
		return nil, errvalues.ErrInvalidInput
	}

	burned := WorkoutBurn(kind, minutes, p.Weight)
	bonus := WaterBonus(minutes)

	p.CaloriesBurned += burned
	p.WaterTarget += bonus
	p.WorkoutTimeline = append(p.WorkoutTimeline, models.TimelinePoint{Label: s.timeLabel(), Value: p.CaloriesBurned})

	return &WorkoutResult{
		Kind:        kind,
		Minutes:     minutes,
		Burned:      burned,
		WaterBonus:  bonus,
		WaterTarget: p.WaterTarget,
		Balance:     p.CaloriesEaten - p.CaloriesBurned,
	}, nil
}

// ResetResult — нормы, действующие после сброса дня.
type ResetResult struct {
	WaterTarget   int
	CalorieTarget int
}

// ResetDay обнуляет дневные счётчики и возвращает таймлайны к одной
// затравочной точке. Нормы воды и калорий сохраняются.
func (s *Service) ResetDay(userID int64) (*ResetResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, errvalues.ErrNoProfile
	}

	label := s.timeLabel()
	p.WaterConsumed = 0
	p.CaloriesEaten = 0
	p.CaloriesBurned = 0
	p.WaterTimeline = []models.TimelinePoint{{Label: label, Value: 0}}
	p.CalorieTimeline = []models.TimelinePoint{{Label: label, Value: 0}}
	p.WorkoutTimeline = []models.TimelinePoint{{Label: label, Value: 0}}

	return &ResetResult{WaterTarget: p.WaterTarget, CalorieTarget: p.CalorieTarget}, nil
}
