package state

import (
	"context"
	"fmt"
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
	"github.com/patrickmoura/gomovie/internal/result"
	"github.com/patrickmoura/gomovie/internal/session"
)

// awaitLoading returns the slot's next emission of any kind.
func awaitLoading[T any](t *testing.T, slot *Slot[T]) result.Result[T] {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	select {
	case r := <-slot.Subscribe(ctx):
		return r
	case <-ctx.Done():
		t.Fatal("slot never emitted")
		return result.Result[T]{}
	}
}

type favoritesBackend struct {
	listCalls  atomic.Int64
	statsCalls atomic.Int64
}

func (b *favoritesBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/favorites":
			b.listCalls.Add(1)
			_, _ = w.Write([]byte(`{"success":true,"data":{"content":[{"id":1,"movieId":603,"movieTitle":"The Matrix","addedAt":"2026-08-01"}],"page":0,"size":20,"totalElements":1,"totalPages":1,"isLast":true}}`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/favorites/ids":
			_, _ = w.Write([]byte(`{"success":true,"data":[603,604]}`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/favorites/stats":
			b.statsCalls.Add(1)
			_, _ = w.Write([]byte(`{"success":true,"data":{"totalFavorites":1,"maxFavorites":50,"canAddMore":true,"isPremium":false}}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/favorites":
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":2,"movieId":604,"movieTitle":"Reloaded","addedAt":"2026-08-02"}}`))
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status":404,"message":"Not found"}`))
		}
	}
}

func newFavoritesHolder(t *testing.T) (*FavoritesHolder, *favoritesBackend) {
	t.Helper()
	backend := &favoritesBackend{}
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	store, err := session.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.SaveTokens("token", "refresh"))

	client := api.NewBackendClient(config.BackendConfig{BaseURL: server.URL}, server.Client())
	holder := NewFavoritesHolder(context.Background(), repository.NewFavoriteRepository(client, store))
	t.Cleanup(holder.Close)
	return holder, backend
}

func TestFavoritesHolderLoadsPage(t *testing.T) {
	t.Parallel()

	holder, _ := newFavoritesHolder(t)
	holder.Load(0, 20)
	r := awaitTerminal(t, holder.Favorites)
	require.True(t, r.IsSuccess())
	require.Len(t, r.Data.Content, 1)
	assert.Equal(t, 603, r.Data.Content[0].MovieID)
}

func TestFavoritesHolderLoadsIDSet(t *testing.T) {
	t.Parallel()

	holder, _ := newFavoritesHolder(t)
	holder.LoadIDs()
	r := awaitTerminal(t, holder.IDs)
	require.True(t, r.IsSuccess())
	assert.Equal(t, []int{603, 604}, r.Data)
}

func TestAddRefetchesListAndStats(t *testing.T) {
	t.Parallel()

	holder, backend := newFavoritesHolder(t)
	holder.Add(models.AddFavoriteRequest{MovieID: 604})
	added := awaitTerminal(t, holder.AddResult)
	require.True(t, added.IsSuccess())
	assert.Equal(t, 604, added.Data.MovieID)

	waitForCalls(t, &backend.listCalls, 1)
	waitForCalls(t, &backend.statsCalls, 1)
}

func TestRemoveRefetchesListAndStats(t *testing.T) {
	t.Parallel()

	holder, backend := newFavoritesHolder(t)
	holder.Remove(603)
	removed := awaitTerminal(t, holder.RemoveResult)
	require.True(t, removed.IsSuccess())

	waitForCalls(t, &backend.listCalls, 1)
	waitForCalls(t, &backend.statsCalls, 1)
}

func TestCloseCancelsInFlightLoads(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		fmt.Fprint(w, `{"success":true,"data":[603]}`)
	}))
	t.Cleanup(server.Close)
	t.Cleanup(func() { close(release) })

	store, err := session.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	client := api.NewBackendClient(config.BackendConfig{BaseURL: server.URL}, server.Client())
	holder := NewFavoritesHolder(context.Background(), repository.NewFavoriteRepository(client, store))

	holder.LoadIDs()
	loading := awaitLoading(t, holder.IDs)
	assert.True(t, loading.IsLoading())

	holder.Close()

	// The cancelled invocation must not surface a terminal result.
	r, ok := holder.IDs.Current()
	if ok {
		assert.True(t, r.IsLoading())
	}
}
