package repository

import (
	"context"
	"fmt"

	"github.com/patrickmoura/gomovie/internal/api"
	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/result"
	"github.com/patrickmoura/gomovie/internal/session"
)

// RatingRepository covers the ratings endpoints.
type RatingRepository struct {
	base
}

func NewRatingRepository(backend *api.BackendClient, store *session.Store) *RatingRepository {
	return &RatingRepository{base{backend: backend, store: store}}
}

// AddOrUpdate creates a rating, or replaces it if the movie is already
// rated; the backend decides which.
func (r *RatingRepository) AddOrUpdate(ctx context.Context, req models.AddRatingRequest) <-chan result.Result[models.Rating] {
	return run(ctx, func(ctx context.Context) result.Result[models.Rating] {
		reply, err := r.backend.Post(ctx, "/api/ratings", r.bearer(ctx), req)
		return classify[models.Rating](reply, err, "Could not save rating")
	})
}

// List fetches a page of the user's ratings.
func (r *RatingRepository) List(ctx context.Context, page, size int) <-chan result.Result[models.Page[models.Rating]] {
	return run(ctx, func(ctx context.Context) result.Result[models.Page[models.Rating]] {
		path := fmt.Sprintf("/api/ratings?page=%d&size=%d", page, size)
		reply, err := r.backend.Get(ctx, path, r.bearer(ctx))
		return classify[models.Page[models.Rating]](reply, err, "Could not load ratings")
	})
}

// ByMovie fetches the user's rating of one movie.
func (r *RatingRepository) ByMovie(ctx context.Context, movieID int) <-chan result.Result[models.Rating] {
	return run(ctx, func(ctx context.Context) result.Result[models.Rating] {
		reply, err := r.backend.Get(ctx, fmt.Sprintf("/api/ratings/movie/%d", movieID), r.bearer(ctx))
		return classify[models.Rating](reply, err, "Could not load rating")
	})
}

// Update replaces the rating value and review for a movie.
func (r *RatingRepository) Update(ctx context.Context, movieID int, req models.UpdateRatingRequest) <-chan result.Result[models.Rating] {
	return run(ctx, func(ctx context.Context) result.Result[models.Rating] {
		reply, err := r.backend.Put(ctx, fmt.Sprintf("/api/ratings/%d", movieID), r.bearer(ctx), req)
		return classify[models.Rating](reply, err, "Could not update rating")
	})
}

// Delete removes the rating for a movie.
func (r *RatingRepository) Delete(ctx context.Context, movieID int) <-chan result.Result[Unit] {
	return run(ctx, func(ctx context.Context) result.Result[Unit] {
		reply, err := r.backend.Delete(ctx, fmt.Sprintf("/api/ratings/%d", movieID), r.bearer(ctx))
		return classifyEmpty(reply, err, "Could not delete rating")
	})
}

// HasRated reports whether the movie is rated. Failures degrade to
// Success(false).
func (r *RatingRepository) HasRated(ctx context.Context, movieID int) <-chan result.Result[bool] {
	return run(ctx, func(ctx context.Context) result.Result[bool] {
		reply, err := r.backend.Get(ctx, fmt.Sprintf("/api/ratings/check/%d", movieID), r.bearer(ctx))
		return classifyBool(reply, err)
	})
}

// RatedIDs fetches every rated movie id, unpaginated.
func (r *RatingRepository) RatedIDs(ctx context.Context) <-chan result.Result[[]int] {
	return run(ctx, func(ctx context.Context) result.Result[[]int] {
		reply, err := r.backend.Get(ctx, "/api/ratings/ids", r.bearer(ctx))
		return classify[[]int](reply, err, "Could not load rated ids")
	})
}
