package tracker

import (
	"context"
	"log"
	"strings"

	"github.com/o-avdienko/telegram-calorie-bot/internal/errvalues"
	"github.com/o-avdienko/telegram-calorie-bot/pkg/models"
)

// stateFinalize — внутренняя метка завершения: все поля собраны,
// дальше расчёт норм и установка профиля.
const stateFinalize models.SetupState = "finalize"

// setupTransitions — таблица переходов настройки: текущее состояние и
// введённый текст дают следующее состояние. Невалидный ввод возвращает
// errvalues.ErrInvalidInput, состояние при этом не меняется.
var setupTransitions = map[models.SetupState]func(*models.SetupSession, string) (models.SetupState, error){
	models.StateWeightInput:         stepWeight,
	models.StateHeightInput:         stepHeight,
	models.StateAgeInput:            stepAge,
	models.StateGenderInput:         stepGender,
	models.StateActivityInput:       stepActivity,
	models.StateCityInput:           stepCity,
	models.StateManualCalorieChoice: stepManualChoice,
	models.StateManualCalorieInput:  stepManualValue,
}

func stepWeight(sess *models.SetupSession, text string) (models.SetupState, error) {
	weight, ok := parseFloat(text)
	if !ok || weight < 30 || weight > 300 {
		return "", errvalues.ErrInvalidInput
	}
	sess.Weight = weight
	return models.StateHeightInput, nil
}

func stepHeight(sess *models.SetupSession, text string) (models.SetupState, error) {
	height, ok := parseInt(text)
	if !ok || height < 100 || height > 250 {
		return "", errvalues.ErrInvalidInput
	}
	sess.Height = height
	return models.StateAgeInput, nil
}

func stepAge(sess *models.SetupSession, text string) (models.SetupState, error) {
	age, ok := parseInt(text)
	if !ok || age < 10 || age > 100 {
		return "", errvalues.ErrInvalidInput
	}
	sess.Age = age
	return models.StateGenderInput, nil
}

// stepGender сравнивает с наборами ключевых слов; женский проверяется
// первым, иначе "female" совпадает с подстрокой "male".
func stepGender(sess *models.SetupSession, text string) (models.SetupState, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.Contains(t, "жен") || strings.Contains(t, "female"):
		sess.Gender = models.GenderFemale
	case strings.Contains(t, "муж") || strings.Contains(t, "male"):
		sess.Gender = models.GenderMale
	default:
		return "", errvalues.ErrInvalidInput
	}
	return models.StateActivityInput, nil
}

func stepActivity(sess *models.SetupSession, text string) (models.SetupState, error) {
	activity, ok := parseInt(text)
	if !ok || activity < 0 || activity > 500 {
		return "", errvalues.ErrInvalidInput
	}
	sess.ActivityMinutes = activity
	return models.StateCityInput, nil
}

func stepCity(sess *models.SetupSession, text string) (models.SetupState, error) {
	city := strings.TrimSpace(text)
	if len([]rune(city)) < 2 {
		return "", errvalues.ErrInvalidInput
	}
	sess.City = city
	return models.StateManualCalorieChoice, nil
}

func stepManualChoice(sess *models.SetupSession, text string) (models.SetupState, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.Contains(t, "да") || strings.Contains(t, "yes"):
		return models.StateManualCalorieInput, nil
	case strings.Contains(t, "нет") || strings.Contains(t, "no"):
		return stateFinalize, nil
	}
	return "", errvalues.ErrInvalidInput
}

func stepManualValue(sess *models.SetupSession, text string) (models.SetupState, error) {
	calories, ok := parseInt(text)
	if !ok || calories < 1000 || calories > 5000 {
		return "", errvalues.ErrInvalidInput
	}
	sess.ManualCalories = &calories
	return stateFinalize, nil
}

// StartSetup начинает настройку профиля с первого шага, отбрасывая
// незавершённую настройку и ожидающий граммовки продукт. Уже настроенный
// профиль не трогается до успешной финализации.
func (s *Service) StartSetup(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &models.SetupSession{State: models.StateWeightInput}
	delete(s.pending, userID)
}

// SetupState возвращает текущее состояние настройки и признак её наличия.
func (s *Service) SetupState(userID int64) (models.SetupState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return "", false
	}
	return sess.State, true
}

// SetupStepResult — итог одного шага настройки.
type SetupStepResult struct {
	State   models.SetupState   // следующее ожидаемое состояние, пока не Done
	Done    bool                // профиль собран и установлен
	Profile *models.UserProfile // заполнен при Done
}

// SubmitSetupStep применяет ввод к текущему шагу. При невалидном вводе
// возвращает errvalues.ErrInvalidInput, а состояние остаётся прежним.
// На финализации запрашивается погода (сбой даёт неизвестную температуру,
// не ошибку), считаются нормы и новый профиль заменяет прежний.
func (s *Service) SubmitSetupStep(ctx context.Context, userID int64, text string) (*SetupStepResult, error) {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	if !ok {
		s.mu.Unlock()
		return nil, errvalues.ErrNoSession
	}

	next, err := setupTransitions[sess.State](sess, text)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	if next != stateFinalize {
		sess.State = next
		s.mu.Unlock()
		return &SetupStepResult{State: next}, nil
	}

	// Снимок собранных полей: запрос погоды идёт без блокировки.
	// Сессия снимается до разблокировки, чтобы гонка сообщений не
	// финализировала её дважды, а /cancel в этот момент не имел эффекта.
	data := *sess
	delete(s.sessions, userID)
	s.mu.Unlock()

	profile := s.buildProfile(ctx, &data)

	s.mu.Lock()
	s.profiles[userID] = profile
	s.mu.Unlock()

	return &SetupStepResult{Done: true, Profile: profile}, nil
}

// buildProfile собирает новый профиль: погода, нормы, нулевые счётчики
// и затравочные точки таймлайнов.
func (s *Service) buildProfile(ctx context.Context, data *models.SetupSession) *models.UserProfile {
	var temp *float64
	t, err := s.weather.Temperature(ctx, data.City)
	if err != nil {
		log.Printf("Ошибка погоды: %v", err)
	} else {
		temp = &t
	}

	label := s.timeLabel()
	return &models.UserProfile{
		Weight:          data.Weight,
		Height:          data.Height,
		Age:             data.Age,
		Gender:          data.Gender,
		ActivityMinutes: data.ActivityMinutes,
		City:            data.City,
		Temperature:     temp,

		WaterTarget:   WaterNorm(data.Weight, data.ActivityMinutes, temp),
		CalorieTarget: CalorieNorm(data.Weight, data.Height, data.Age, data.Gender, data.ActivityMinutes, data.ManualCalories),

		WaterTimeline:   []models.TimelinePoint{{Label: label, Value: 0}},
		CalorieTimeline: []models.TimelinePoint{{Label: label, Value: 0}},
		WorkoutTimeline: []models.TimelinePoint{{Label: label, Value: 0}},
	}
}

// Cancel снимает активную настройку и ожидание граммовки.
func (s *Service) Cancel(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, hasSession := s.sessions[userID]
	_, hasPending := s.pending[userID]
	if !hasSession && !hasPending {
		return errvalues.ErrNothingToCancel
	}
	delete(s.sessions, userID)
	delete(s.pending, userID)
	return nil
}
