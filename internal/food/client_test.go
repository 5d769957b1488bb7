package food

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o-avdienko/telegram-calorie-bot/internal/errvalues"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient()
	require.NoError(t, err)
	client.apiURL = srv.URL
	return client, srv
}

func TestFindDirectKcal(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "banana", r.URL.Query().Get("search_terms"))
		assert.Equal(t, "8", r.URL.Query().Get("page_size"))
		w.Write([]byte(`{"products":[{"product_name":"Banana","nutriments":{"energy-kcal_100g":89}}]}`))
	})

	product, err := client.Find(context.Background(), "banana")
	require.NoError(t, err)
	assert.Equal(t, "Banana", product.Name)
	assert.Equal(t, 89.0, product.KcalPer100g)

	// Повторный запрос идёт из кэша
	product, err = client.Find(context.Background(), "banana")
	require.NoError(t, err)
	assert.Equal(t, "Banana", product.Name)
	assert.Equal(t, 1, calls)
}

func TestFindConvertsKJ(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[{"product_name":"Oats","nutriments":{"energy_100g":1000}}]}`))
	})

	product, err := client.Find(context.Background(), "oats")
	require.NoError(t, err)
	assert.InDelta(t, 239.0, product.KcalPer100g, 0.1) // 1000 / 4.184
}

func TestFindSkipsProductsWithoutEnergy(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[
			{"product_name":"Пустышка","nutriments":{}},
			{"product_name":"","nutriments":{"energy-kcal_100g":52}}
		]}`))
	})

	product, err := client.Find(context.Background(), "apple")
	require.NoError(t, err)
	// Пустое имя подменяется исходным запросом
	assert.Equal(t, "apple", product.Name)
	assert.Equal(t, 52.0, product.KcalPer100g)
}

func TestFindNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[]}`))
	})

	_, err := client.Find(context.Background(), "nothing")
	assert.ErrorIs(t, err, errvalues.ErrProductNotFound)
}

func TestFindServerErrorNotCached(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"products":[{"product_name":"Rice","nutriments":{"energy-kcal_100g":130}}]}`))
	})

	_, err := client.Find(context.Background(), "rice")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errvalues.ErrProductNotFound)

	// Сбой не закэширован: повторный запрос доходит до сервера
	product, err := client.Find(context.Background(), "rice")
	require.NoError(t, err)
	assert.Equal(t, "Rice", product.Name)
	assert.Equal(t, 2, calls)
}
