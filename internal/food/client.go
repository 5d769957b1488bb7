// Package food предоставляет поиск калорийности продуктов через OpenFoodFacts API.
package food

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/o-avdienko/telegram-calorie-bot/internal/errvalues"
	"github.com/o-avdienko/telegram-calorie-bot/pkg/models"
)

const defaultAPIURL = "https://world.openfoodfacts.org/cgi/search.pl"

// kJ → ккал
const kcalPerKJ = 4.184

const cacheSize = 128

// Client — клиент поиска продуктов с LRU-кэшем по строке запроса.
// Кэшируются только удачные ответы, чтобы повторный запрос мог найти
// продукт после временного сбоя.
type Client struct {
	apiURL     string
	httpClient *http.Client
	cache      *lru.Cache[string, *models.FoodProduct]
}

// NewClient создаёт клиент поиска продуктов.
func NewClient() (*Client, error) {
	cache, err := lru.New[string, *models.FoodProduct](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания кэша продуктов: %w", err)
	}
	return &Client{
		apiURL: defaultAPIURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: cache,
	}, nil
}

// searchResponse — нужная часть ответа search.pl.
type searchResponse struct {
	Products []struct {
		ProductName string `json:"product_name"`
		Nutriments  struct {
			EnergyKcal100g float64 `json:"energy-kcal_100g"`
			Energy100g     float64 `json:"energy_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

// Find ищет продукт по свободному тексту и возвращает название с калорийностью
// на 100 г. Берётся первый продукт с энергией в ккал, иначе первый с энергией
// в кДж (пересчитанной в ккал). Если ни у одного продукта нет энергии —
// errvalues.ErrProductNotFound.
func (c *Client) Find(ctx context.Context, query string) (*models.FoodProduct, error) {
	if product, ok := c.cache.Get(query); ok {
		return product, nil
	}

	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("json", "1")
	params.Set("page_size", "8")
	params.Set("fields", "product_name,nutriments")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса продукта: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка HTTP запроса продукта: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа поиска: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("сервис продуктов вернул статус %d: %s", resp.StatusCode, string(body))
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("ошибка разбора ответа поиска: %w", err)
	}

	for _, p := range sr.Products {
		var kcal float64
		switch {
		case p.Nutriments.EnergyKcal100g > 0:
			kcal = p.Nutriments.EnergyKcal100g
		case p.Nutriments.Energy100g > 0:
			kcal = p.Nutriments.Energy100g / kcalPerKJ
		default:
			continue
		}

		name := p.ProductName
		if name == "" {
			name = query
		}

		product := &models.FoodProduct{Name: name, KcalPer100g: kcal}
		c.cache.Add(query, product)
		return product, nil
	}

	return nil, errvalues.ErrProductNotFound
}
