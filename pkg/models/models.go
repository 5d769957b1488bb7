package models

// Gender — пол пользователя, влияет на формулу базового метаболизма.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// TimelinePoint — одна точка таймлайна: метка времени HH:MM и накопленное
// значение метрики на этот момент.
type TimelinePoint struct {
	Label string
	Value int
}

// UserProfile представляет профиль пользователя с метриками здоровья.
// Один профиль на пользователя; повторная настройка заменяет его целиком.
type UserProfile struct {
	Weight          float64
	Height          int
	Age             int
	Gender          Gender
	ActivityMinutes int
	City            string
	Temperature     *float64 // nil — температуру определить не удалось

	// Текущие метрики за день
	WaterConsumed  int
	CaloriesEaten  int
	CaloriesBurned int

	// Целевые значения
	WaterTarget   int
	CalorieTarget int

	// История для графиков, только накопленные итоги
	WaterTimeline   []TimelinePoint
	CalorieTimeline []TimelinePoint
	WorkoutTimeline []TimelinePoint
}

// Константы состояний настройки профиля (FSM)
type SetupState string

const (
	StateWeightInput         SetupState = "weight_input"
	StateHeightInput         SetupState = "height_input"
	StateAgeInput            SetupState = "age_input"
	StateGenderInput         SetupState = "gender_input"
	StateActivityInput       SetupState = "activity_input"
	StateCityInput           SetupState = "city_input"
	StateManualCalorieChoice SetupState = "manual_calories_choice"
	StateManualCalorieInput  SetupState = "manual_calories_input"
)

// SetupSession — промежуточные данные пошаговой настройки профиля.
// Живёт от /setup до финализации или отмены.
type SetupSession struct {
	State           SetupState
	Weight          float64
	Height          int
	Age             int
	Gender          Gender
	ActivityMinutes int
	City            string
	ManualCalories  *int
}

// FoodProduct — продукт из внешней базы: название и калорийность на 100 г.
// Используется и как результат поиска, и как запись, ожидающая ввода граммовки.
type FoodProduct struct {
	Name        string
	KcalPer100g float64
}
