package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickmoura/gomovie/internal/api"
	"github.com/patrickmoura/gomovie/internal/config"
	"github.com/patrickmoura/gomovie/internal/session"
)

const authOKBody = `{
	"success": true,
	"data": {
		"accessToken": "access-abc",
		"refreshToken": "refresh-abc",
		"tokenType": "Bearer",
		"expiresIn": 3600,
		"user": {"id": 12, "email": "ana@example.org"}
	}
}`

func newAuthFixture(t *testing.T, handler http.HandlerFunc) (*AuthRepository, *session.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := session.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	backend := api.NewBackendClient(config.BackendConfig{BaseURL: server.URL}, server.Client())
	return NewAuthRepository(backend, store), store
}

func TestLoginPersistsCredentialBeforeSuccess(t *testing.T) {
	t.Parallel()

	repo, store := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		_, _ = w.Write([]byte(authOKBody))
	})

	ch := repo.Login(context.Background(), "ana@example.org", "hunter2")
	loading := <-ch
	require.True(t, loading.IsLoading())

	terminal := <-ch
	require.True(t, terminal.IsSuccess())

	// An observer of the Success emission must already see the stored
	// credential.
	cred := store.Current()
	assert.Equal(t, "access-abc", cred.AccessToken)
	assert.Equal(t, "refresh-abc", cred.RefreshToken)
	assert.Equal(t, int64(12), cred.UserID)
	assert.Equal(t, "ana@example.org", cred.UserEmail)
	assert.True(t, store.IsLoggedIn())
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Parallel()

	repo, store := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":401,"message":"Bad email or password"}`))
	})

	results := collect(t, repo.Login(context.Background(), "ana@example.org", "wrong"))
	require.Len(t, results, 2)
	require.True(t, results[1].IsError())
	assert.Equal(t, "Bad email or password", results[1].Message)
	assert.False(t, store.IsLoggedIn())
}

func TestRegisterPersistsCredential(t *testing.T) {
	t.Parallel()

	repo, store := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		_, _ = w.Write([]byte(authOKBody))
	})

	name := "Ana"
	results := collect(t, repo.Register(context.Background(), "ana@example.org", "hunter2", &name))
	require.True(t, results[1].IsSuccess())
	assert.True(t, store.IsLoggedIn())
}

func TestLogoutClearsCredential(t *testing.T) {
	t.Parallel()

	repo, store := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(authOKBody))
	})

	results := collect(t, repo.Login(context.Background(), "ana@example.org", "hunter2"))
	require.True(t, results[1].IsSuccess())

	require.NoError(t, repo.Logout(context.Background()))
	assert.False(t, store.IsLoggedIn())
	assert.Empty(t, store.Current().RefreshToken)
}

func TestLoggedInObservableFollowsAuth(t *testing.T) {
	t.Parallel()

	repo, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(authOKBody))
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loggedIn := repo.LoggedIn(ctx)
	first, ok := session.First(ctx, loggedIn)
	require.True(t, ok)
	assert.False(t, first)

	results := collect(t, repo.Login(context.Background(), "ana@example.org", "hunter2"))
	require.True(t, results[1].IsSuccess())

	next, ok := session.First(ctx, loggedIn)
	require.True(t, ok)
	assert.True(t, next)
}
