package restcountries

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/countrypulse/pkg/config"
	"github.com/amirasaad/countrypulse/pkg/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSource(url string) *Source {
	return New(&config.Sources{CountriesUrl: url, HTTPTimeout: 2 * time.Second}, slog.New(slog.DiscardHandler))
}

func TestFetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"Wakanda","capital":"Birnin Zana","region":"Africa","population":1000,"flag":"f.png","currencies":[{"code":"WKD"}]},
			{"name":"Atlantis","population":500,"flag":"a.png","currencies":[{}]}
		]`))
	}))
	defer srv.Close()

	countries, err := newSource(srv.URL).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)

	assert.Equal(t, "Wakanda", countries[0].Name)
	require.NotNil(t, countries[0].Capital)
	assert.Equal(t, "Birnin Zana", *countries[0].Capital)
	assert.EqualValues(t, 1000, countries[0].Population)
	require.Len(t, countries[0].Currencies, 1)
	require.NotNil(t, countries[0].Currencies[0].Code)
	assert.Equal(t, "WKD", *countries[0].Currencies[0].Code)

	assert.Nil(t, countries[1].Capital)
	require.Len(t, countries[1].Currencies, 1)
	assert.Nil(t, countries[1].Currencies[0].Code)
}

func TestFetchAllNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newSource(srv.URL).FetchAll(context.Background())
	var srcErr *provider.SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, SourceName, srcErr.Source)
	assert.Contains(t, srcErr.Error(), "500")
}

func TestFetchAllDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	_, err := newSource(srv.URL).FetchAll(context.Background())
	var srcErr *provider.SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, SourceName, srcErr.Source)
}

func TestFetchAllTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newSource(srv.URL).FetchAll(context.Background())
	var srcErr *provider.SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, SourceName, srcErr.Source)
}
