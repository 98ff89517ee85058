package cli

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickmoura/gomovie/internal/api"
	"github.com/patrickmoura/gomovie/internal/config"
	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/repository"
	"github.com/patrickmoura/gomovie/internal/session"
)

type commandBackend struct {
	listCalls    atomic.Int64
	statsCalls   atomic.Int64
	ratingsCalls atomic.Int64
	failAdds     bool
}

func (b *commandBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/favorites":
			if b.failAdds {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(`{"status":409,"message":"Movie already in favorites"}`))
				return
			}
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":1,"movieId":603,"movieTitle":"The Matrix","addedAt":"2026-08-01"}}`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/favorites":
			b.listCalls.Add(1)
			_, _ = w.Write([]byte(`{"success":true,"data":{"content":[],"page":0,"size":20,"totalElements":1,"totalPages":1,"isLast":true}}`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/favorites/stats":
			b.statsCalls.Add(1)
			_, _ = w.Write([]byte(`{"success":true,"data":{"totalFavorites":1,"maxFavorites":50,"canAddMore":true,"isPremium":false}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/ratings":
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":1,"movieId":603,"rating":4.5,"watchedAt":"2026-08-01"}}`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/ratings":
			b.ratingsCalls.Add(1)
			_, _ = w.Write([]byte(`{"success":true,"data":{"content":[],"page":0,"size":20,"totalElements":3,"totalPages":1,"isLast":true}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status":404,"message":"Not found"}`))
		}
	}
}

func newTestApp(t *testing.T, backend *commandBackend) *App {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	store, err := session.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.SaveTokens("token", "refresh"))

	client := api.NewBackendClient(config.BackendConfig{BaseURL: server.URL}, server.Client())
	tmdb := api.NewTMDBClient(config.MetadataConfig{
		BaseURL:         server.URL,
		PrimaryLanguage: "es-ES",
	}, server.Client())

	return &App{
		Store:     store,
		Favorites: repository.NewFavoriteRepository(client, store),
		Ratings:   repository.NewRatingRepository(client, store),
		Details:   repository.NewMovieDetailsRepository(tmdb),
	}
}

func TestRunFavoriteAddRefetchesThroughHolder(t *testing.T) {
	t.Parallel()

	backend := &commandBackend{}
	app := newTestApp(t, backend)

	err := runFavoriteAdd(app, models.AddFavoriteRequest{MovieID: 603})
	require.NoError(t, err)

	// The command finishes only after the holder's stats refetch landed;
	// the list refetch runs alongside it.
	assert.EqualValues(t, 1, backend.statsCalls.Load())
	waitForCount(t, &backend.listCalls, 1)
}

func waitForCount(t *testing.T, counter *atomic.Int64, want int64) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if counter.Load() >= want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d calls, saw %d", want, counter.Load())
}

func TestRunFavoriteAddFailureSkipsRefetch(t *testing.T) {
	t.Parallel()

	backend := &commandBackend{failAdds: true}
	app := newTestApp(t, backend)

	err := runFavoriteAdd(app, models.AddFavoriteRequest{MovieID: 603})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Movie already in favorites")
	assert.Zero(t, backend.statsCalls.Load())
	assert.Zero(t, backend.listCalls.Load())
}

func TestRunRatingSaveRefetchesThroughHolder(t *testing.T) {
	t.Parallel()

	backend := &commandBackend{}
	app := newTestApp(t, backend)

	err := runRatingSave(app, models.AddRatingRequest{MovieID: 603, Rating: 4.5})
	require.NoError(t, err)
	assert.EqualValues(t, 1, backend.ratingsCalls.Load())
}
