package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemperature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Moscow", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(`{"main":{"temp":21.5}}`))
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.apiURL = srv.URL

	temp, err := client.Temperature(context.Background(), "Moscow")
	require.NoError(t, err)
	assert.Equal(t, 21.5, temp)
}

func TestTemperatureBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.apiURL = srv.URL

	_, err := client.Temperature(context.Background(), "Nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
