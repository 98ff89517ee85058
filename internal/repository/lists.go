package repository

import (
	"context"
	"fmt"

	"github.com/patrickmoura/gomovie/internal/api"
	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/result"
	"github.com/patrickmoura/gomovie/internal/session"
)

// ListRepository covers the custom list endpoints.
type ListRepository struct {
	base
}

func NewListRepository(backend *api.BackendClient, store *session.Store) *ListRepository {
	return &ListRepository{base{backend: backend, store: store}}
}

// Create makes a new custom list.
func (r *ListRepository) Create(ctx context.Context, req models.CreateListRequest) <-chan result.Result[models.CustomList] {
	return run(ctx, func(ctx context.Context) result.Result[models.CustomList] {
		reply, err := r.backend.Post(ctx, "/api/lists", r.bearer(ctx), req)
		return classify[models.CustomList](reply, err, "Could not create list")
	})
}

// UserLists fetches a page of the user's lists.
func (r *ListRepository) UserLists(ctx context.Context, page, size int) <-chan result.Result[models.Page[models.CustomList]] {
	return run(ctx, func(ctx context.Context) result.Result[models.Page[models.CustomList]] {
		path := fmt.Sprintf("/api/lists?page=%d&size=%d", page, size)
		reply, err := r.backend.Get(ctx, path, r.bearer(ctx))
		return classify[models.Page[models.CustomList]](reply, err, "Could not load lists")
	})
}

// Details fetches one list with its movies.
func (r *ListRepository) Details(ctx context.Context, listID int64) <-chan result.Result[models.CustomListDetail] {
	return run(ctx, func(ctx context.Context) result.Result[models.CustomListDetail] {
		reply, err := r.backend.Get(ctx, fmt.Sprintf("/api/lists/%d", listID), r.bearer(ctx))
		return classify[models.CustomListDetail](reply, err, "Could not load list details")
	})
}

// Update edits a list's name, description or visibility.
func (r *ListRepository) Update(ctx context.Context, listID int64, req models.UpdateListRequest) <-chan result.Result[models.CustomList] {
	return run(ctx, func(ctx context.Context) result.Result[models.CustomList] {
		reply, err := r.backend.Put(ctx, fmt.Sprintf("/api/lists/%d", listID), r.bearer(ctx), req)
		return classify[models.CustomList](reply, err, "Could not update list")
	})
}

// Delete removes a list.
func (r *ListRepository) Delete(ctx context.Context, listID int64) <-chan result.Result[Unit] {
	return run(ctx, func(ctx context.Context) result.Result[Unit] {
		reply, err := r.backend.Delete(ctx, fmt.Sprintf("/api/lists/%d", listID), r.bearer(ctx))
		return classifyEmpty(reply, err, "Could not delete list")
	})
}

// AddMovie appends a movie to a list.
func (r *ListRepository) AddMovie(ctx context.Context, listID int64, req models.AddMovieToListRequest) <-chan result.Result[Unit] {
	return run(ctx, func(ctx context.Context) result.Result[Unit] {
		reply, err := r.backend.Post(ctx, fmt.Sprintf("/api/lists/%d/movies", listID), r.bearer(ctx), req)
		return classifyEmpty(reply, err, "Could not add movie to list")
	})
}

// RemoveMovie removes a movie from a list.
func (r *ListRepository) RemoveMovie(ctx context.Context, listID int64, movieID int) <-chan result.Result[Unit] {
	return run(ctx, func(ctx context.Context) result.Result[Unit] {
		reply, err := r.backend.Delete(ctx, fmt.Sprintf("/api/lists/%d/movies/%d", listID, movieID), r.bearer(ctx))
		return classifyEmpty(reply, err, "Could not remove movie from list")
	})
}

// PublicLists fetches a page of everyone's public lists.
func (r *ListRepository) PublicLists(ctx context.Context, page, size int) <-chan result.Result[models.Page[models.CustomList]] {
	return run(ctx, func(ctx context.Context) result.Result[models.Page[models.CustomList]] {
		path := fmt.Sprintf("/api/lists/public?page=%d&size=%d", page, size)
		reply, err := r.backend.Get(ctx, path, r.bearer(ctx))
		return classify[models.Page[models.CustomList]](reply, err, "Could not load public lists")
	})
}
