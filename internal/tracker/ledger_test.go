package tracker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o-avdienko/telegram-calorie-bot/internal/errvalues"
	"github.com/o-avdienko/telegram-calorie-bot/internal/tracker"
)

func TestAddWater(t *testing.T) {
	svc := newService()
	defaultSetup(t, svc, testUser)

	res, err := svc.AddWater(testUser, "300")
	require.NoError(t, err)
	assert.Equal(t, 300, res.Added)
	assert.Equal(t, 300, res.Consumed)
	assert.Equal(t, 2250, res.Target)
	assert.Equal(t, 13, res.Percent) // 300/2250 = 13.3%
	assert.Equal(t, 1950, res.Remaining)

	res, err = svc.AddWater(testUser, "200")
	require.NoError(t, err)
	assert.Equal(t, 500, res.Consumed)

	series, err := svc.ChartSeries(testUser)
	require.NoError(t, err)
	require.Len(t, series, 1)
	require.Len(t, series[0].Points, 3) // затравка + две записи
	assert.Equal(t, 300, series[0].Points[1].Value)
	assert.Equal(t, 500, series[0].Points[2].Value)
}

func TestAddWaterInvalid(t *testing.T) {
	svc := newService()
	defaultSetup(t, svc, testUser)

	for _, input := range []string{"0", "-5", "3001", "abc", ""} {
		_, err := svc.AddWater(testUser, input)
		assert.ErrorIs(t, err, errvalues.ErrInvalidInput, "input %q", input)
	}

	// Ничего не записано
	st, err := svc.Status(testUser)
	require.NoError(t, err)
	assert.Equal(t, 0, st.WaterConsumed)
}

func TestAddWaterNoProfile(t *testing.T) {
	svc := newService()
	_, err := svc.AddWater(testUser, "300")
	assert.ErrorIs(t, err, errvalues.ErrNoProfile)
}

func TestFoodFlow(t *testing.T) {
	svc := newService()
	defaultSetup(t, svc, testUser)

	product, err := svc.StartFood(context.Background(), testUser, "banana")
	require.NoError(t, err)
	assert.Equal(t, "Banana", product.Name)
	assert.True(t, svc.AwaitingGrams(testUser))

	res, err := svc.SubmitFoodGrams(testUser, "150")
	require.NoError(t, err)
	assert.Equal(t, 133, res.Kcal) // 89*150/100 = 133.5 → 133
	assert.Equal(t, 133, res.Eaten)
	assert.Equal(t, 133, res.Balance)
	assert.False(t, svc.AwaitingGrams(testUser))

	st, err := svc.Status(testUser)
	require.NoError(t, err)
	assert.Equal(t, 133, st.CaloriesEaten)
}

func TestFoodNotFound(t *testing.T) {
	svc := tracker.New(&weatherStub{temp: 20}, &foodStub{err: errvalues.ErrProductNotFound})
	defaultSetup(t, svc, testUser)

	_, err := svc.StartFood(context.Background(), testUser, "неведомое")
	assert.ErrorIs(t, err, errvalues.ErrProductNotFound)
	assert.False(t, svc.AwaitingGrams(testUser))
}

func TestFoodLookupFailureReportedAsNotFound(t *testing.T) {
	svc := tracker.New(&weatherStub{temp: 20}, &foodStub{err: errors.New("timeout")})
	defaultSetup(t, svc, testUser)

	_, err := svc.StartFood(context.Background(), testUser, "banana")
	assert.ErrorIs(t, err, errvalues.ErrProductNotFound)
}

func TestFoodNoProfile(t *testing.T) {
	svc := newService()
	_, err := svc.StartFood(context.Background(), testUser, "banana")
	assert.ErrorIs(t, err, errvalues.ErrNoProfile)
}

func TestSubmitGramsWithoutPending(t *testing.T) {
	svc := newService()
	defaultSetup(t, svc, testUser)

	_, err := svc.SubmitFoodGrams(testUser, "150")
	assert.ErrorIs(t, err, errvalues.ErrNoPendingFood)
}

func TestSubmitGramsInvalidKeepsPending(t *testing.T) {
	svc := newService()
	defaultSetup(t, svc, testUser)

	_, err := svc.StartFood(context.Background(), testUser, "banana")
	require.NoError(t, err)

	for _, input := range []string{"0", "2001", "abc"} {
		_, err := svc.SubmitFoodGrams(testUser, input)
		assert.ErrorIs(t, err, errvalues.ErrInvalidInput, "input %q", input)
		assert.True(t, svc.AwaitingGrams(testUser))
	}

	res, err := svc.SubmitFoodGrams(testUser, "100")
	require.NoError(t, err)
	assert.Equal(t, 89, res.Kcal)
}

func TestCancelClearsPendingFood(t *testing.T) {
	svc := newService()
	defaultSetup(t, svc, testUser)

	_, err := svc.StartFood(context.Background(), testUser, "banana")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(testUser))
	assert.False(t, svc.AwaitingGrams(testUser))
}

func TestAddWorkout(t *testing.T) {
	svc := newService()
	defaultSetup(t, svc, testUser)

	res, err := svc.AddWorkout(testUser, "бег", "30")
	require.NoError(t, err)
	assert.Equal(t, 375, res.Burned) // 10 * 75 кг * 0.5 ч
	assert.Equal(t, 200, res.WaterBonus)
	assert.Equal(t, 2450, res.WaterTarget)
	assert.Equal(t, -375, res.Balance)

	series, err := svc.ChartSeries(testUser)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, tracker.SeriesBurned, series[0].Kind)
	require.Len(t, series[0].Points, 2)
	assert.Equal(t, 375, series[0].Points[1].Value)
}

func TestAddWorkoutShortSessionKeepsTarget(t *testing.T) {
	svc := newService()
	defaultSetup(t, svc, testUser)

	res, err := svc.AddWorkout(testUser, "йога", "29")
	require.NoError(t, err)
	assert.Equal(t, 0, res.WaterBonus)
	assert.Equal(t, 2250, res.WaterTarget)
}

func TestAddWorkoutInvalidMinutes(t *testing.T) {
	svc := newService()
	defaultSetup(t, svc, testUser)

	for _, input := range []string{"0", "-10", "301", "час"} {
		_, err := svc.AddWorkout(testUser, "бег", input)
		assert.ErrorIs(t, err, errvalues.ErrInvalidInput, "input %q", input)
	}
}

func TestResetDay(t *testing.T) {
	svc := newService()
	defaultSetup(t, svc, testUser)

	_, err := svc.AddWater(testUser, "500")
	require.NoError(t, err)
	_, err = svc.StartFood(context.Background(), testUser, "banana")
	require.NoError(t, err)
	_, err = svc.SubmitFoodGrams(testUser, "150")
	require.NoError(t, err)
	_, err = svc.AddWorkout(testUser, "бег", "30")
	require.NoError(t, err)

	res, err := svc.ResetDay(testUser)
	require.NoError(t, err)
	// Нормы сохраняются, включая заработанный бонус воды
	assert.Equal(t, 2450, res.WaterTarget)
	assert.Equal(t, 2068, res.CalorieTarget)

	st, err := svc.Status(testUser)
	require.NoError(t, err)
	assert.Equal(t, 0, st.WaterConsumed)
	assert.Equal(t, 0, st.CaloriesEaten)
	assert.Equal(t, 0, st.CaloriesBurned)

	// Каждый таймлайн — одна затравочная точка, графиков нет
	_, err = svc.ChartSeries(testUser)
	assert.ErrorIs(t, err, errvalues.ErrNotEnoughData)
}

func TestResetDayNoProfile(t *testing.T) {
	svc := newService()
	_, err := svc.ResetDay(testUser)
	assert.ErrorIs(t, err, errvalues.ErrNoProfile)
}

func TestTimelinesAreCumulative(t *testing.T) {
	svc := newService()
	defaultSetup(t, svc, testUser)

	inputs := []string{"300", "250", "400"}
	totals := []int{300, 550, 950}
	for _, in := range inputs {
		_, err := svc.AddWater(testUser, in)
		require.NoError(t, err)
	}

	series, err := svc.ChartSeries(testUser)
	require.NoError(t, err)
	points := series[0].Points
	require.Len(t, points, len(totals)+1)
	assert.Equal(t, 0, points[0].Value)
	for i, total := range totals {
		assert.Equal(t, total, points[i+1].Value)
	}
}
