package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/o-avdienko/telegram-calorie-bot/internal/chart"
	"github.com/o-avdienko/telegram-calorie-bot/internal/errvalues"
	"github.com/o-avdienko/telegram-calorie-bot/internal/tracker"
	"github.com/o-avdienko/telegram-calorie-bot/pkg/locales"
	"github.com/o-avdienko/telegram-calorie-bot/pkg/models"
)

// Bot представляет Telegram бота
type Bot struct {
	api     *tgbotapi.BotAPI
	tracker *tracker.Service
}

// New создает нового бота
func New(token string, trackerService *tracker.Service) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания бота: %w", err)
	}

	log.Printf("Авторизован как @%s", api.Self.UserName)

	return &Bot{
		api:     api,
		tracker: trackerService,
	}, nil
}

// Start запускает обработку обновлений
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-updates:
			go b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate обрабатывает входящее обновление
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message != nil && update.Message.Text != "" {
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage обрабатывает текстовые сообщения
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID
	l := locales.Get()

	log.Printf("Пользователь %d (@%s): %s", userID, msg.From.UserName, msg.Text)

	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "help":
			b.send(chatID, l.Welcome.Text)
		case "setup":
			b.handleSetupStart(chatID, userID)
		case "cancel":
			b.handleCancel(chatID, userID)
		case "drink":
			b.handleDrink(chatID, userID, msg.CommandArguments())
		case "eat":
			b.handleEat(ctx, chatID, userID, msg.CommandArguments())
		case "train":
			b.handleTrain(chatID, userID, msg.CommandArguments())
		case "status":
			b.handleStatus(chatID, userID)
		case "charts":
			b.handleCharts(chatID, userID)
		case "tips":
			b.handleTips(chatID, userID)
		case "reset":
			b.handleReset(chatID, userID)
		default:
			b.send(chatID, l.Common.UnknownCommand)
		}
		return
	}

	// Обычный текст: сначала шаг настройки, затем ожидание граммовки
	if _, inSetup := b.tracker.SetupState(userID); inSetup {
		b.handleSetupStep(ctx, chatID, userID, msg.Text)
		return
	}
	if b.tracker.AwaitingGrams(userID) {
		b.handleFoodGrams(chatID, userID, msg.Text)
		return
	}
	b.send(chatID, l.Common.Hint)
}

// handleSetupStart начинает настройку профиля с первого шага
func (b *Bot) handleSetupStart(chatID, userID int64) {
	b.tracker.StartSetup(userID)
	b.send(chatID, locales.Get().Setup.Prompts.Weight)
}

// handleSetupStep применяет ввод к текущему шагу настройки
func (b *Bot) handleSetupStep(ctx context.Context, chatID, userID int64, text string) {
	l := locales.Get()

	res, err := b.tracker.SubmitSetupStep(ctx, userID, text)
	if err != nil {
		if errors.Is(err, errvalues.ErrNoSession) {
			b.send(chatID, l.Common.Hint)
			return
		}
		// Невалидный ввод: то же состояние, тот же вопрос
		if state, ok := b.tracker.SetupState(userID); ok {
			b.send(chatID, setupWarning(state))
		}
		return
	}

	if !res.Done {
		prompt, markup := setupPrompt(res.State)
		b.sendMarkup(chatID, prompt, markup)
		return
	}

	p := res.Profile
	tempText := l.Setup.TempUnknown
	if p.Temperature != nil {
		tempText = fmt.Sprintf(l.Setup.TempFormat, *p.Temperature)
	}
	text = fmt.Sprintf(l.Setup.Done, p.City, tempText, p.WaterTarget, p.CalorieTarget)
	b.sendMarkup(chatID, text, tgbotapi.NewRemoveKeyboard(true))
}

// setupPrompt возвращает вопрос следующего шага и клавиатуру к нему
func setupPrompt(state models.SetupState) (string, interface{}) {
	l := locales.Get()
	switch state {
	case models.StateWeightInput:
		return l.Setup.Prompts.Weight, nil
	case models.StateHeightInput:
		return l.Setup.Prompts.Height, nil
	case models.StateAgeInput:
		return l.Setup.Prompts.Age, nil
	case models.StateGenderInput:
		return l.Setup.Prompts.Gender, choiceKeyboard(l.Setup.Buttons.Male, l.Setup.Buttons.Female)
	case models.StateActivityInput:
		return l.Setup.Prompts.Activity, tgbotapi.NewRemoveKeyboard(true)
	case models.StateCityInput:
		return l.Setup.Prompts.City, nil
	case models.StateManualCalorieChoice:
		return l.Setup.Prompts.ManualChoice, choiceKeyboard(l.Setup.Buttons.Yes, l.Setup.Buttons.No)
	case models.StateManualCalorieInput:
		return l.Setup.Prompts.ManualValue, tgbotapi.NewRemoveKeyboard(true)
	}
	return l.Common.Hint, nil
}

// setupWarning возвращает предупреждение для невалидного ввода на шаге
func setupWarning(state models.SetupState) string {
	l := locales.Get()
	switch state {
	case models.StateWeightInput:
		return l.Setup.Warnings.Weight
	case models.StateHeightInput:
		return l.Setup.Warnings.Height
	case models.StateAgeInput:
		return l.Setup.Warnings.Age
	case models.StateGenderInput:
		return l.Setup.Warnings.Gender
	case models.StateActivityInput:
		return l.Setup.Warnings.Activity
	case models.StateCityInput:
		return l.Setup.Warnings.City
	case models.StateManualCalorieChoice:
		return l.Setup.Warnings.ManualChoice
	case models.StateManualCalorieInput:
		return l.Setup.Warnings.ManualValue
	}
	return l.Common.Hint
}

// choiceKeyboard — клавиатура из двух кнопок в один ряд, скрывается после нажатия
func choiceKeyboard(left, right string) tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(left),
			tgbotapi.NewKeyboardButton(right),
		),
	)
	keyboard.OneTimeKeyboard = true
	return keyboard
}

// handleCancel снимает активную настройку или ожидание граммовки
func (b *Bot) handleCancel(chatID, userID int64) {
	l := locales.Get()
	if err := b.tracker.Cancel(userID); err != nil {
		b.sendMarkup(chatID, l.Cancel.Nothing, tgbotapi.NewRemoveKeyboard(true))
		return
	}
	b.sendMarkup(chatID, l.Cancel.Done, tgbotapi.NewRemoveKeyboard(true))
}

// handleDrink записывает выпитую воду
func (b *Bot) handleDrink(chatID, userID int64, args string) {
	l := locales.Get()
	if strings.TrimSpace(args) == "" {
		b.send(chatID, l.Water.Usage)
		return
	}

	res, err := b.tracker.AddWater(userID, args)
	if err != nil {
		switch {
		case errors.Is(err, errvalues.ErrNoProfile):
			b.send(chatID, l.Common.NeedProfile)
		default:
			b.send(chatID, l.Water.Invalid)
		}
		return
	}

	b.send(chatID, fmt.Sprintf(l.Water.Logged, res.Added, res.Consumed, res.Target, res.Percent, res.Remaining))
}

// handleEat ищет продукт и запрашивает граммовку
func (b *Bot) handleEat(ctx context.Context, chatID, userID int64, args string) {
	l := locales.Get()
	query := strings.TrimSpace(args)
	if query == "" {
		b.send(chatID, l.Food.Usage)
		return
	}

	product, err := b.tracker.StartFood(ctx, userID, query)
	if err != nil {
		switch {
		case errors.Is(err, errvalues.ErrNoProfile):
			b.send(chatID, l.Common.NeedProfile)
		default:
			b.send(chatID, fmt.Sprintf(l.Food.NotFound, query))
		}
		return
	}

	b.send(chatID, fmt.Sprintf(l.Food.Found, product.Name, product.KcalPer100g))
}

// handleFoodGrams завершает запись еды введённой граммовкой
func (b *Bot) handleFoodGrams(chatID, userID int64, text string) {
	l := locales.Get()

	res, err := b.tracker.SubmitFoodGrams(userID, text)
	if err != nil {
		switch {
		case errors.Is(err, errvalues.ErrNoProfile):
			b.send(chatID, l.Common.NeedProfile)
		case errors.Is(err, errvalues.ErrNoPendingFood):
			b.send(chatID, l.Food.Usage)
		default:
			b.send(chatID, l.Food.InvalidGrams)
		}
		return
	}

	b.send(chatID, fmt.Sprintf(l.Food.Logged,
		res.Product.Name, res.Grams, res.Kcal,
		res.Eaten, res.Balance, res.Target, res.Percent, res.Remaining))
}

// handleTrain записывает тренировку: /train <тип> <минуты>
func (b *Bot) handleTrain(chatID, userID int64, args string) {
	l := locales.Get()
	parts := strings.Fields(args)
	if len(parts) < 2 {
		b.send(chatID, l.Workout.Usage)
		return
	}

	res, err := b.tracker.AddWorkout(userID, parts[0], parts[1])
	if err != nil {
		switch {
		case errors.Is(err, errvalues.ErrNoProfile):
			b.send(chatID, l.Common.NeedProfile)
		default:
			b.send(chatID, l.Workout.InvalidMinutes)
		}
		return
	}

	b.send(chatID, fmt.Sprintf(l.Workout.Logged,
		res.Kind, res.Minutes, res.Burned, res.WaterBonus, res.WaterTarget, res.Balance))
}

// handleStatus показывает дневной прогресс с эмодзи-шкалами
func (b *Bot) handleStatus(chatID, userID int64) {
	l := locales.Get()

	st, err := b.tracker.Status(userID)
	if err != nil {
		b.send(chatID, l.Common.NeedProfile)
		return
	}

	b.send(chatID, fmt.Sprintf(l.Status.Text,
		progressBar(st.WaterPercent), st.WaterPercent, st.WaterConsumed, st.WaterTarget, st.WaterRemaining,
		progressBar(st.CaloriePercent), st.CaloriePercent, st.CaloriesEaten, st.CaloriesBurned,
		st.Balance, st.CalorieTarget, st.CalorieRemaining))
}

// handleCharts отрисовывает и отправляет графики таймлайнов
func (b *Bot) handleCharts(chatID, userID int64) {
	l := locales.Get()

	series, err := b.tracker.ChartSeries(userID)
	if err != nil {
		switch {
		case errors.Is(err, errvalues.ErrNoProfile):
			b.send(chatID, l.Common.NeedProfile)
		default:
			b.send(chatID, l.Charts.NoData)
		}
		return
	}

	for _, s := range series {
		meta := chartMeta(s.Kind)
		png, err := chart.Render(s.Points, meta.Title, meta.YLabel, s.Target)
		if err != nil {
			log.Printf("Ошибка отрисовки графика: %v", err)
			continue
		}

		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: meta.Filename, Bytes: png})
		photo.Caption = meta.Caption
		if _, err := b.api.Send(photo); err != nil {
			log.Printf("Ошибка отправки графика: %v", err)
		}
	}
}

// chartMeta возвращает подписи графика по виду таймлайна
func chartMeta(kind tracker.SeriesKind) locales.ChartMeta {
	l := locales.Get()
	switch kind {
	case tracker.SeriesCalories:
		return l.Charts.Calories
	case tracker.SeriesBurned:
		return l.Charts.Burned
	default:
		return l.Charts.Water
	}
}

// handleTips отправляет рекомендации по воде, калориям и активности
func (b *Bot) handleTips(chatID, userID int64) {
	l := locales.Get()

	advice, err := b.tracker.Tips(userID)
	if err != nil {
		b.send(chatID, l.Common.NeedProfile)
		return
	}

	var blocks []string

	switch advice.Water {
	case tracker.WaterDrinkNow:
		blocks = append(blocks, fmt.Sprintf(l.Tips.WaterDrinkNow, advice.WaterDeficit, advice.WaterPortion, advice.WaterPortion))
	case tracker.WaterAlmost:
		blocks = append(blocks, fmt.Sprintf(l.Tips.WaterAlmost, advice.WaterDeficit))
	default:
		blocks = append(blocks, l.Tips.WaterDone)
	}

	switch advice.Calories {
	case tracker.CalorieOver:
		blocks = append(blocks, fmt.Sprintf(l.Tips.CalorieOver, advice.CalorieExcess, advice.WalkMinutes))
	case tracker.CalorieEatMore:
		blocks = append(blocks, fmt.Sprintf(l.Tips.CalorieEatMore, advice.CalorieDeficit))
	case tracker.CalorieAlmost:
		blocks = append(blocks, fmt.Sprintf(l.Tips.CalorieAlmost, advice.CalorieDeficit))
	default:
		blocks = append(blocks, l.Tips.CalorieDone)
	}

	blocks = append(blocks, l.Tips.Foods, l.Tips.Activities)

	b.send(chatID, strings.Join(blocks, "\n\n"))
}

// handleReset сбрасывает дневные метрики, нормы сохраняются
func (b *Bot) handleReset(chatID, userID int64) {
	l := locales.Get()

	res, err := b.tracker.ResetDay(userID)
	if err != nil {
		b.send(chatID, l.Common.NeedProfile)
		return
	}

	b.send(chatID, fmt.Sprintf(l.Reset.Done, res.WaterTarget, res.CalorieTarget))
}

// send отправляет текстовое сообщение
func (b *Bot) send(chatID int64, text string) {
	b.sendMarkup(chatID, text, nil)
}

// sendMarkup отправляет сообщение с клавиатурой
func (b *Bot) sendMarkup(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Ошибка отправки сообщения: %v", err)
	}
}

// progressBar — десятисегментная шкала прогресса
func progressBar(percent int) string {
	filled := percent / 10
	return strings.Repeat("🟩", filled) + strings.Repeat("⬜", 10-filled)
}
