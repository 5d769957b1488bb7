// Package weather предоставляет клиент OpenWeatherMap для получения текущей температуры.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultAPIURL = "https://api.openweathermap.org/data/2.5/weather"

// Client — клиент OpenWeatherMap.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient создаёт клиент с ключом API.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		apiURL: defaultAPIURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// weatherResponse — нужная часть ответа /data/2.5/weather.
type weatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// Temperature возвращает текущую температуру в городе, °C.
func (c *Client) Temperature(ctx context.Context, city string) (float64, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	params.Set("lang", "ru")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания запроса погоды: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("ошибка HTTP запроса погоды: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("ошибка чтения ответа погоды: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("сервис погоды вернул статус %d: %s", resp.StatusCode, string(body))
	}

	var wr weatherResponse
	if err := json.Unmarshal(body, &wr); err != nil {
		return 0, fmt.Errorf("ошибка разбора ответа погоды: %w", err)
	}

	return wr.Main.Temp, nil
}
