package repository

import (
	"context"
	"fmt"

	"github.com/patrickmoura/gomovie/internal/api"
	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/result"
	"github.com/patrickmoura/gomovie/internal/session"
)

// FavoriteRepository covers the favorites endpoints.
type FavoriteRepository struct {
	base
}

func NewFavoriteRepository(backend *api.BackendClient, store *session.Store) *FavoriteRepository {
	return &FavoriteRepository{base{backend: backend, store: store}}
}

// Add marks a movie as a favorite.
func (r *FavoriteRepository) Add(ctx context.Context, req models.AddFavoriteRequest) <-chan result.Result[models.Favorite] {
	return run(ctx, func(ctx context.Context) result.Result[models.Favorite] {
		reply, err := r.backend.Post(ctx, "/api/favorites", r.bearer(ctx), req)
		return classify[models.Favorite](reply, err, "Could not add favorite")
	})
}

// List fetches a page of the user's favorites.
func (r *FavoriteRepository) List(ctx context.Context, page, size int) <-chan result.Result[models.Page[models.Favorite]] {
	return run(ctx, func(ctx context.Context) result.Result[models.Page[models.Favorite]] {
		path := fmt.Sprintf("/api/favorites?page=%d&size=%d", page, size)
		reply, err := r.backend.Get(ctx, path, r.bearer(ctx))
		return classify[models.Page[models.Favorite]](reply, err, "Could not load favorites")
	})
}

// Remove deletes a favorite by movie id.
func (r *FavoriteRepository) Remove(ctx context.Context, movieID int) <-chan result.Result[Unit] {
	return run(ctx, func(ctx context.Context) result.Result[Unit] {
		reply, err := r.backend.Delete(ctx, fmt.Sprintf("/api/favorites/%d", movieID), r.bearer(ctx))
		return classifyEmpty(reply, err, "Could not remove favorite")
	})
}

// IsFavorite reports membership. Failures degrade to Success(false).
func (r *FavoriteRepository) IsFavorite(ctx context.Context, movieID int) <-chan result.Result[bool] {
	return run(ctx, func(ctx context.Context) result.Result[bool] {
		reply, err := r.backend.Get(ctx, fmt.Sprintf("/api/favorites/check/%d", movieID), r.bearer(ctx))
		return classifyBool(reply, err)
	})
}

// IDs fetches every favorited movie id, unpaginated.
func (r *FavoriteRepository) IDs(ctx context.Context) <-chan result.Result[[]int] {
	return run(ctx, func(ctx context.Context) result.Result[[]int] {
		reply, err := r.backend.Get(ctx, "/api/favorites/ids", r.bearer(ctx))
		return classify[[]int](reply, err, "Could not load favorite ids")
	})
}

// Stats fetches the favorites quota counters.
func (r *FavoriteRepository) Stats(ctx context.Context) <-chan result.Result[models.FavoritesStats] {
	return run(ctx, func(ctx context.Context) result.Result[models.FavoritesStats] {
		reply, err := r.backend.Get(ctx, "/api/favorites/stats", r.bearer(ctx))
		return classify[models.FavoritesStats](reply, err, "Could not load favorite stats")
	})
}
