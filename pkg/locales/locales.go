package locales

import (
	_ "embed"
	"encoding/json"
	"log"
)

//go:embed locales.json
var localesJSON []byte

// Locales содержит все текстовые строки из locales.json
type Locales struct {
	Welcome struct {
		Text string `json:"text"`
	} `json:"welcome"`

	Common struct {
		NeedProfile    string `json:"need_profile"`
		Hint           string `json:"hint"`
		UnknownCommand string `json:"unknown_command"`
	} `json:"common"`

	Cancel struct {
		Done    string `json:"done"`
		Nothing string `json:"nothing"`
	} `json:"cancel"`

	Setup struct {
		Prompts  StepTexts `json:"prompts"`
		Warnings StepTexts `json:"warnings"`
		Buttons  struct {
			Male   string `json:"male"`
			Female string `json:"female"`
			Yes    string `json:"yes"`
			No     string `json:"no"`
		} `json:"buttons"`
		TempUnknown string `json:"temp_unknown"`
		TempFormat  string `json:"temp_format"`
		Done        string `json:"done"`
	} `json:"setup"`

	Water struct {
		Usage   string `json:"usage"`
		Invalid string `json:"invalid"`
		Logged  string `json:"logged"`
	} `json:"water"`

	Food struct {
		Usage        string `json:"usage"`
		NotFound     string `json:"not_found"`
		Found        string `json:"found"`
		InvalidGrams string `json:"invalid_grams"`
		Logged       string `json:"logged"`
	} `json:"food"`

	Workout struct {
		Usage          string `json:"usage"`
		InvalidMinutes string `json:"invalid_minutes"`
		Logged         string `json:"logged"`
	} `json:"workout"`

	Status struct {
		Text string `json:"text"`
	} `json:"status"`

	Charts struct {
		NoData   string    `json:"no_data"`
		Water    ChartMeta `json:"water"`
		Calories ChartMeta `json:"calories"`
		Burned   ChartMeta `json:"burned"`
	} `json:"charts"`

	Tips struct {
		WaterDrinkNow  string `json:"water_drink_now"`
		WaterAlmost    string `json:"water_almost"`
		WaterDone      string `json:"water_done"`
		CalorieOver    string `json:"calorie_over"`
		CalorieEatMore string `json:"calorie_eat_more"`
		CalorieAlmost  string `json:"calorie_almost"`
		CalorieDone    string `json:"calorie_done"`
		Foods          string `json:"foods"`
		Activities     string `json:"activities"`
	} `json:"tips"`

	Reset struct {
		Done string `json:"done"`
	} `json:"reset"`
}

// StepTexts — тексты по шагам настройки профиля.
type StepTexts struct {
	Weight       string `json:"weight"`
	Height       string `json:"height"`
	Age          string `json:"age"`
	Gender       string `json:"gender"`
	Activity     string `json:"activity"`
	City         string `json:"city"`
	ManualChoice string `json:"manual_choice"`
	ManualValue  string `json:"manual_value"`
}

// ChartMeta — подписи одного графика.
type ChartMeta struct {
	Title    string `json:"title"`
	YLabel   string `json:"y_label"`
	Caption  string `json:"caption"`
	Filename string `json:"filename"`
}

var L *Locales

func init() {
	L = &Locales{}
	if err := json.Unmarshal(localesJSON, L); err != nil {
		log.Fatalf("Не удалось распарсить locales.json: %v", err)
	}
}

// Get возвращает указатель на локали
func Get() *Locales {
	return L
}
