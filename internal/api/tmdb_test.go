package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickmoura/gomovie/internal/config"
)

func newTestTMDB(t *testing.T, handler http.HandlerFunc) *TMDBClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewTMDBClient(config.MetadataConfig{
		BaseURL:          server.URL,
		ImageBaseURL:     "https://image.example.org/t/p",
		APIKey:           "test-key",
		PrimaryLanguage:  "es-ES",
		FallbackLanguage: "en-US",
	}, server.Client())
}

func TestGetAppendsKeyAndDefaultLanguage(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	client := newTestTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":7,"title":"Seven"}]}`))
	})

	list, err := client.PopularMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Results, 1)
	assert.Equal(t, 7, list.Results[0].ID)
	assert.Equal(t, "test-key", gotQuery.Get("api_key"))
	assert.Equal(t, "es-ES", gotQuery.Get("language"))
}

func TestMovieDetailsUsesExplicitLanguage(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	client := newTestTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"id":42,"title":"Answer","overview":"plot"}`))
	})

	detail, err := client.MovieDetails(context.Background(), 42, "en-US")
	require.NoError(t, err)
	assert.Equal(t, 42, detail.ID)
	assert.Equal(t, "en-US", gotQuery.Get("language"))
}

func TestSearchMoviesEncodesQuery(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotQuery url.Values
	client := newTestTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"page":1,"results":[]}`))
	})

	_, err := client.SearchMovies(context.Background(), "el laberinto")
	require.NoError(t, err)
	assert.Equal(t, "/search/movie", gotPath)
	assert.Equal(t, "el laberinto", gotQuery.Get("query"))
	assert.Equal(t, "false", gotQuery.Get("include_adult"))
}

func TestDiscoverMoviesFilters(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	client := newTestTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"page":1,"results":[]}`))
	})

	genre := 28
	year := 1999
	rating := 7.5
	_, err := client.DiscoverMovies(context.Background(), &genre, &year, &rating)
	require.NoError(t, err)
	assert.Equal(t, "28", gotQuery.Get("with_genres"))
	assert.Equal(t, "1999", gotQuery.Get("primary_release_year"))
	assert.Equal(t, "7.5", gotQuery.Get("vote_average.gte"))
	assert.Equal(t, "popularity.desc", gotQuery.Get("sort_by"))
}

func TestGetRejectsNonOKStatus(t *testing.T) {
	t.Parallel()

	client := newTestTMDB(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status_message":"Invalid API key"}`))
	})

	_, err := client.Genres(context.Background())
	assert.Error(t, err)
}

func TestImageURL(t *testing.T) {
	t.Parallel()

	client := NewTMDBClient(config.MetadataConfig{
		ImageBaseURL: "https://image.example.org/t/p",
	}, http.DefaultClient)
	assert.Equal(t, "https://image.example.org/t/p/w500/poster.jpg", client.ImageURL("/poster.jpg", "w500"))
	assert.Empty(t, client.ImageURL("", "w500"))
}
