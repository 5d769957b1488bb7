package tracker

import (
	"strings"

	"github.com/o-avdienko/telegram-calorie-bot/pkg/models"
)

// Коэффициенты активности для нормы калорий
const (
	activityLow      = 1.20  // < 30 минут в день
	activityModerate = 1.375 // 30–59 минут
	activityHigh     = 1.55  // >= 60 минут
)

// metValues — метаболические эквиваленты по видам нагрузки.
var metValues = map[string]float64{
	"бег":       10.0,
	"run":       10.0,
	"ходьба":    4.5,
	"walk":      4.5,
	"велосипед": 8.0,
	"cycling":   8.0,
	"плавание":  9.5,
	"swimming":  9.5,
	"зал":       6.5,
	"gym":       6.5,
	"йога":      3.5,
	"yoga":      3.5,
}

// defaultMET применяется для неизвестных видов нагрузки.
const defaultMET = 7.0

// walkingMET используется в рекомендациях для расчёта компенсирующей прогулки.
const walkingMET = 4.5

// WaterNorm — дневная норма воды, мл:
// вес*30, +500 за каждые полные 30 минут активности, +500 при температуре >25°C.
func WaterNorm(weight float64, activityMinutes int, temp *float64) int {
	base := weight * 30
	activityBonus := float64(activityMinutes/30) * 500
	heatBonus := 0.0
	if temp != nil && *temp > 25 {
		heatBonus = 500
	}
	return int(base + activityBonus + heatBonus)
}

// CalorieNorm — дневная норма калорий по формуле Миффлина-Сан Жеора:
// BMR = 10*вес + 6.25*рост - 5*возраст, +5 мужчинам / -161 женщинам,
// умноженный на коэффициент активности. Ручное значение возвращается как есть.
func CalorieNorm(weight float64, height, age int, gender models.Gender, activityMinutes int, manual *int) int {
	if manual != nil {
		return *manual
	}

	bmr := 10*weight + 6.25*float64(height) - 5*float64(age)
	if gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier := activityLow
	switch {
	case activityMinutes >= 60:
		multiplier = activityHigh
	case activityMinutes >= 30:
		multiplier = activityModerate
	}

	return int(bmr * multiplier)
}

// WorkoutBurn — сожжённые калории: MET * вес(кг) * время(часы).
func WorkoutBurn(kind string, minutes int, weightKg float64) int {
	met, ok := metValues[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		met = defaultMET
	}
	return int(met * weightKg * float64(minutes) / 60)
}

// WaterBonus — дополнительная вода после тренировки:
// 200 мл за каждые полные 30 минут.
func WaterBonus(minutes int) int {
	return minutes / 30 * 200
}
