package repository

import (
	"context"

	"github.com/patrickmoura/gomovie/internal/api"
	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/result"
	"github.com/patrickmoura/gomovie/internal/session"
	"github.com/patrickmoura/gomovie/internal/util"
)

// AuthRepository handles registration, login and logout. Successful auth
// calls persist the credential pair and the user identity before the
// terminal Result is emitted, so an observer of Success can rely on the
// store already being consistent.
type AuthRepository struct {
	base
}

func NewAuthRepository(backend *api.BackendClient, store *session.Store) *AuthRepository {
	return &AuthRepository{base{backend: backend, store: store}}
}

// Register creates an account and logs the new user in.
func (r *AuthRepository) Register(ctx context.Context, email, password string, fullName *string) <-chan result.Result[models.AuthResponse] {
	return run(ctx, func(ctx context.Context) result.Result[models.AuthResponse] {
		reply, err := r.backend.Post(ctx, "/api/auth/register", "", models.RegisterRequest{
			Email:    email,
			Password: password,
			FullName: fullName,
		})
		res := classify[models.AuthResponse](reply, err, "Could not create your account")
		return r.persistOnSuccess(res)
	})
}

// Login authenticates an existing user.
func (r *AuthRepository) Login(ctx context.Context, email, password string) <-chan result.Result[models.AuthResponse] {
	return run(ctx, func(ctx context.Context) result.Result[models.AuthResponse] {
		reply, err := r.backend.Post(ctx, "/api/auth/login", "", models.LoginRequest{
			Email:    email,
			Password: password,
		})
		res := classify[models.AuthResponse](reply, err, "Invalid credentials")
		return r.persistOnSuccess(res)
	})
}

func (r *AuthRepository) persistOnSuccess(res result.Result[models.AuthResponse]) result.Result[models.AuthResponse] {
	if !res.IsSuccess() {
		return res
	}
	if err := r.store.SaveTokens(res.Data.AccessToken, res.Data.RefreshToken); err != nil {
		util.Error("persisting tokens", "error", err)
		return result.Error[models.AuthResponse]("Could not store your session")
	}
	if err := r.store.SaveUserInfo(res.Data.User.ID, res.Data.User.Email); err != nil {
		util.Error("persisting user info", "error", err)
		return result.Error[models.AuthResponse]("Could not store your session")
	}
	return res
}

// Logout clears the stored credential. The backend session is stateless on
// the client side, so this never fails against the network.
func (r *AuthRepository) Logout(ctx context.Context) error {
	_ = ctx
	return r.store.Clear()
}

// LoggedIn exposes the store's derived login observable.
func (r *AuthRepository) LoggedIn(ctx context.Context) <-chan bool {
	return r.store.LoggedIn(ctx)
}
