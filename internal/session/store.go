// Package session owns the durable credential of the current login session.
// Tokens are persisted in a local Badger store; the access and refresh token
// pair is written in a single transaction so a concurrent reader never
// observes half of an update. Reads are exposed both as point accessors and
// as push-based observables that replay the current value first.
package session

import (
	"context"
	"strconv"
	"sync"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUserID       = "user_id"
	keyUserEmail    = "user_email"
)

// Credential is the full persisted session identity.
type Credential struct {
	AccessToken  string
	RefreshToken string
	UserID       int64
	UserEmail    string
}

// Store persists the session credential and notifies subscribers on change.
type Store struct {
	db *badger.DB

	mu      sync.Mutex
	current Credential
	subs    map[int]chan Credential
	nextSub int
}

// Open opens (or creates) the credential store in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening credential store")
	}
	s := &Store{
		db:   db,
		subs: make(map[int]chan Credential),
	}
	if err := s.loadSnapshot(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying store. Subscriber channels stay open; their
// owning contexts are expected to be cancelled alongside.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) loadSnapshot() error {
	return s.db.View(func(txn *badger.Txn) error {
		read := func(key string) (string, error) {
			item, err := txn.Get([]byte(key))
			if errors.Is(err, badger.ErrKeyNotFound) {
				return "", nil
			}
			if err != nil {
				return "", err
			}
			var val string
			err = item.Value(func(v []byte) error {
				val = string(v)
				return nil
			})
			return val, err
		}

		var err error
		if s.current.AccessToken, err = read(keyAccessToken); err != nil {
			return errors.Wrap(err, "reading access token")
		}
		if s.current.RefreshToken, err = read(keyRefreshToken); err != nil {
			return errors.Wrap(err, "reading refresh token")
		}
		if s.current.UserEmail, err = read(keyUserEmail); err != nil {
			return errors.Wrap(err, "reading user email")
		}
		rawID, err := read(keyUserID)
		if err != nil {
			return errors.Wrap(err, "reading user id")
		}
		if rawID != "" {
			s.current.UserID, _ = strconv.ParseInt(rawID, 10, 64)
		}
		return nil
	})
}

// SaveTokens persists the access/refresh token pair atomically.
func (s *Store) SaveTokens(accessToken, refreshToken string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyAccessToken), []byte(accessToken)); err != nil {
			return err
		}
		return txn.Set([]byte(keyRefreshToken), []byte(refreshToken))
	})
	if err != nil {
		return errors.Wrap(err, "saving tokens")
	}
	s.mutate(func(c *Credential) {
		c.AccessToken = accessToken
		c.RefreshToken = refreshToken
	})
	return nil
}

// SaveUserInfo persists the identity fields, independent of the tokens.
func (s *Store) SaveUserInfo(userID int64, email string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(keyUserID), []byte(strconv.FormatInt(userID, 10))); err != nil {
			return err
		}
		return txn.Set([]byte(keyUserEmail), []byte(email))
	})
	if err != nil {
		return errors.Wrap(err, "saving user info")
	}
	s.mutate(func(c *Credential) {
		c.UserID = userID
		c.UserEmail = email
	})
	return nil
}

// Clear erases the whole credential, typically on logout.
func (s *Store) Clear() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		for _, key := range []string{keyAccessToken, keyRefreshToken, keyUserID, keyUserEmail} {
			if err := txn.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "clearing credentials")
	}
	s.mutate(func(c *Credential) {
		*c = Credential{}
	})
	return nil
}

// Current returns a snapshot of the stored credential.
func (s *Store) Current() Credential {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Watch returns a channel that delivers the current credential immediately
// and every subsequent change, conflated to the latest value. The channel
// closes when ctx is done.
func (s *Store) Watch(ctx context.Context) <-chan Credential {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan Credential, 1)
	ch <- s.current
	s.subs[id] = ch
	s.mu.Unlock()

	out := make(chan Credential, 1)
	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(out)
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case c := <-ch:
				select {
				case out <- c:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// AccessTokens derives an observable of just the access token.
func (s *Store) AccessTokens(ctx context.Context) <-chan string {
	return mapWatch(ctx, s, func(c Credential) string { return c.AccessToken })
}

// RefreshTokens derives an observable of just the refresh token.
func (s *Store) RefreshTokens(ctx context.Context) <-chan string {
	return mapWatch(ctx, s, func(c Credential) string { return c.RefreshToken })
}

// LoggedIn derives an observable boolean from access token presence.
func (s *Store) LoggedIn(ctx context.Context) <-chan bool {
	return mapWatch(ctx, s, func(c Credential) bool { return c.AccessToken != "" })
}

// IsLoggedIn is the point-read form of LoggedIn.
func (s *Store) IsLoggedIn() bool {
	return s.Current().AccessToken != ""
}

func mapWatch[T any](ctx context.Context, s *Store, fn func(Credential) T) <-chan T {
	in := s.Watch(ctx)
	out := make(chan T, 1)
	go func() {
		defer close(out)
		for c := range in {
			select {
			case out <- fn(c):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// First returns the first value delivered by an observable channel, or the
// zero value if ctx expires first.
func First[T any](ctx context.Context, ch <-chan T) (T, bool) {
	select {
	case v, ok := <-ch:
		return v, ok
	case <-ctx.Done():
		var zero T
		return zero, false
	}
}

func (s *Store) mutate(apply func(*Credential)) {
	s.mu.Lock()
	apply(&s.current)
	cur := s.current
	for _, ch := range s.subs {
		// Conflate: drop the stale value if the subscriber has not
		// consumed it yet, then deliver the latest.
		select {
		case <-ch:
		default:
		}
		ch <- cur
	}
	s.mu.Unlock()
}
