// Package chart строит PNG-графики дневных таймлайнов.
package chart

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/o-avdienko/telegram-calorie-bot/pkg/models"
)

var (
	lineColor   = drawing.ColorFromHex("2E86AB")
	targetColor = drawing.ColorFromHex("A23B72")
)

// Render рисует график накопленного значения по точкам таймлайна.
// target > 0 добавляет пунктирную целевую линию. Нужно минимум две точки.
func Render(points []models.TimelinePoint, title, yLabel string, target int) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("для графика нужно минимум две точки, есть %d", len(points))
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	ticks := make([]chart.Tick, len(points))
	for i, p := range points {
		xs[i] = float64(i)
		ys[i] = float64(p.Value)
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Label}
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Фактическое значение",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: lineColor,
				StrokeWidth: 2.5,
				DotColor:    lineColor,
				DotWidth:    4,
			},
		},
	}
	if target > 0 {
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("Цель: %d", target),
			XValues: []float64{xs[0], xs[len(xs)-1]},
			YValues: []float64{float64(target), float64(target)},
			Style: chart.Style{
				StrokeColor:     targetColor,
				StrokeWidth:     2,
				StrokeDashArray: []float64{5, 5},
			},
		})
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1000,
		Height: 600,
		XAxis:  chart.XAxis{Ticks: ticks},
		YAxis:  chart.YAxis{Name: yLabel},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("ошибка построения графика: %w", err)
	}
	return buf.Bytes(), nil
}
