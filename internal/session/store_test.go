package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveTokensThenLoggedIn(t *testing.T) {
	store := openTestStore(t)

	assert.False(t, store.IsLoggedIn())
	require.NoError(t, store.SaveTokens("access-1", "refresh-1"))
	assert.True(t, store.IsLoggedIn())

	cred := store.Current()
	assert.Equal(t, "access-1", cred.AccessToken)
	assert.Equal(t, "refresh-1", cred.RefreshToken)
}

func TestClearResetsEverything(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SaveTokens("access", "refresh"))
	require.NoError(t, store.SaveUserInfo(7, "a@b.com"))
	require.NoError(t, store.Clear())

	assert.False(t, store.IsLoggedIn())
	assert.Equal(t, Credential{}, store.Current())
}

func TestTokenPairNeverHalfWritten(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveTokens("a1", "r1"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			assert.NoError(t, store.SaveTokens("a2", "r2"))
			assert.NoError(t, store.SaveTokens("a1", "r1"))
		}
	}()

	for i := 0; i < 200; i++ {
		cred := store.Current()
		// Tokens are written in one transaction: a read observes a
		// matched pair, never a mix of generations.
		if cred.AccessToken == "a1" {
			assert.Equal(t, "r1", cred.RefreshToken)
		} else {
			assert.Equal(t, "a2", cred.AccessToken)
			assert.Equal(t, "r2", cred.RefreshToken)
		}
	}
	<-done
}

func TestWatchReplaysCurrentThenChanges(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveTokens("initial", "r"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ch := store.Watch(ctx)
	first, ok := First(ctx, ch)
	require.True(t, ok)
	assert.Equal(t, "initial", first.AccessToken)

	require.NoError(t, store.SaveTokens("updated", "r2"))
	for cred := range ch {
		if cred.AccessToken == "updated" {
			return
		}
	}
	t.Fatal("never observed the updated credential")
}

func TestLoggedInObservable(t *testing.T) {
	store := openTestStore(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ch := store.LoggedIn(ctx)
	loggedIn, ok := First(ctx, ch)
	require.True(t, ok)
	assert.False(t, loggedIn)

	require.NoError(t, store.SaveTokens("T", "R"))
	for v := range ch {
		if v {
			return
		}
	}
	t.Fatal("never observed logged-in state")
}

func TestAccessTokensFirstValue(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveTokens("tok", "ref"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token, ok := First(ctx, store.AccessTokens(ctx))
	require.True(t, ok)
	assert.Equal(t, "tok", token)
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.SaveTokens("durable", "refresh"))
	require.NoError(t, store.SaveUserInfo(42, "x@y.com"))
	require.NoError(t, store.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	cred := reopened.Current()
	assert.Equal(t, "durable", cred.AccessToken)
	assert.Equal(t, int64(42), cred.UserID)
	assert.Equal(t, "x@y.com", cred.UserEmail)
}

func TestFirstHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blocked := make(chan string)
	_, ok := First(ctx, blocked)
	assert.False(t, ok)
}
