package repository

import (
	"context"
	"net/http"

	"github.com/patrickmoura/gomovie/internal/api"
	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/result"
	"github.com/patrickmoura/gomovie/internal/session"
)

// UserRepository covers the profile endpoints.
type UserRepository struct {
	base
}

func NewUserRepository(backend *api.BackendClient, store *session.Store) *UserRepository {
	return &UserRepository{base{backend: backend, store: store}}
}

// CurrentUser fetches the authenticated user's profile.
func (r *UserRepository) CurrentUser(ctx context.Context) <-chan result.Result[models.User] {
	return run(ctx, func(ctx context.Context) result.Result[models.User] {
		reply, err := r.backend.Get(ctx, "/api/user/me", r.bearer(ctx))
		return classify[models.User](reply, err, "Could not load your profile")
	})
}

// UserStats fetches the aggregate collection counters.
func (r *UserRepository) UserStats(ctx context.Context) <-chan result.Result[models.UserStats] {
	return run(ctx, func(ctx context.Context) result.Result[models.UserStats] {
		reply, err := r.backend.Get(ctx, "/api/user/stats", r.bearer(ctx))
		return classify[models.UserStats](reply, err, "Could not load your stats")
	})
}

// UpdateProfile changes the display name.
func (r *UserRepository) UpdateProfile(ctx context.Context, fullName *string) <-chan result.Result[models.User] {
	return run(ctx, func(ctx context.Context) result.Result[models.User] {
		reply, err := r.backend.Put(ctx, "/api/user/profile", r.bearer(ctx), models.UpdateProfileRequest{FullName: fullName})
		return classify[models.User](reply, err, "Could not update your profile")
	})
}

// ChangePassword swaps the account password.
func (r *UserRepository) ChangePassword(ctx context.Context, current, updated string) <-chan result.Result[Unit] {
	return run(ctx, func(ctx context.Context) result.Result[Unit] {
		reply, err := r.backend.Do(ctx, http.MethodPut, "/api/user/password", r.bearer(ctx), models.ChangePasswordRequest{
			CurrentPassword: current,
			NewPassword:     updated,
		})
		return classifyEmpty(reply, err, "Could not change your password")
	})
}
