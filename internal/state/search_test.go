package state

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickmoura/gomovie/internal/api"
	"github.com/patrickmoura/gomovie/internal/config"
	"github.com/patrickmoura/gomovie/internal/repository"
)

type searchBackend struct {
	mu      sync.Mutex
	queries []string
}

func (b *searchBackend) record(q string) {
	b.mu.Lock()
	b.queries = append(b.queries, q)
	b.mu.Unlock()
}

func (b *searchBackend) seen() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.queries...)
}

func newSearchHolder(t *testing.T) (*SearchHolder, *searchBackend) {
	t.Helper()
	backend := &searchBackend{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/genre/movie/list":
			_, _ = w.Write([]byte(`{"genres":[{"id":28,"name":"Action"}]}`))
		case "/search/movie":
			backend.record(r.URL.Query().Get("query"))
			_, _ = w.Write([]byte(`{"page":1,"results":[{"id":603,"title":"The Matrix"}]}`))
		case "/discover/movie":
			_, _ = w.Write([]byte(`{"page":1,"results":[{"id":604,"title":"Reloaded"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	tmdb := api.NewTMDBClient(config.MetadataConfig{
		BaseURL:         server.URL,
		APIKey:          "test-key",
		PrimaryLanguage: "es-ES",
	}, server.Client())
	holder := NewSearchHolder(context.Background(), repository.NewMovieRepository(tmdb))
	t.Cleanup(holder.Close)
	return holder, backend
}

func TestSearchHolderLoadsGenresOnConstruction(t *testing.T) {
	t.Parallel()

	holder, _ := newSearchHolder(t)
	r := awaitTerminal(t, holder.Genres)
	require.True(t, r.IsSuccess())
	require.Len(t, r.Data, 1)
	assert.Equal(t, "Action", r.Data[0].Name)
}

func TestSetQueryDebouncesKeystrokes(t *testing.T) {
	t.Parallel()

	holder, backend := newSearchHolder(t)

	// Rapid keystrokes: only the final query should reach the provider.
	holder.SetQuery("ma")
	holder.SetQuery("mat")
	holder.SetQuery("matrix")

	r := awaitTerminal(t, holder.Results)
	require.True(t, r.IsSuccess())
	require.Len(t, r.Data, 1)
	assert.Equal(t, []string{"matrix"}, backend.seen())
}

func TestSetQueryIgnoresShortQueries(t *testing.T) {
	t.Parallel()

	holder, backend := newSearchHolder(t)
	holder.SetQuery("m")
	holder.SetQuery("  a  ")

	time.Sleep(600 * time.Millisecond)
	assert.Empty(t, backend.seen())
	_, ok := holder.Results.Current()
	assert.False(t, ok)
}

func TestShortQueryCancelsPendingSearch(t *testing.T) {
	t.Parallel()

	holder, backend := newSearchHolder(t)
	holder.SetQuery("matrix")
	holder.SetQuery("m")

	time.Sleep(600 * time.Millisecond)
	assert.Empty(t, backend.seen())
}

func TestDiscoverBypassesDebounce(t *testing.T) {
	t.Parallel()

	holder, _ := newSearchHolder(t)
	genre := 28
	holder.Discover(&genre, nil, nil)

	r := awaitTerminal(t, holder.Results)
	require.True(t, r.IsSuccess())
	require.Len(t, r.Data, 1)
	assert.Equal(t, 604, r.Data[0].ID)
}

func TestClearResultsEmptiesSlot(t *testing.T) {
	t.Parallel()

	holder, _ := newSearchHolder(t)
	holder.Search("matrix")
	awaitTerminal(t, holder.Results)

	holder.ClearResults()
	_, ok := holder.Results.Current()
	assert.False(t, ok)
}
