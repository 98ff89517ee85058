package state

import (
	"context"

	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/repository"
	"github.com/patrickmoura/gomovie/internal/result"
)

// ListsHolder owns the custom lists screens. Every successful mutation
// refetches the state it invalidated: list mutations reload the user's
// lists, membership mutations additionally reload the open list's details.
type ListsHolder struct {
	scope
	repo *repository.ListRepository

	UserLists   *Slot[models.Page[models.CustomList]]
	PublicLists *Slot[models.Page[models.CustomList]]
	ListDetails *Slot[models.CustomListDetail]

	CreateResult      *Slot[models.CustomList]
	UpdateResult      *Slot[models.CustomList]
	DeleteResult      *Slot[repository.Unit]
	AddMovieResult    *Slot[repository.Unit]
	RemoveMovieResult *Slot[repository.Unit]
}

func NewListsHolder(parent context.Context, repo *repository.ListRepository) *ListsHolder {
	h := &ListsHolder{
		scope:             newScope(parent),
		repo:              repo,
		UserLists:         NewSlot[models.Page[models.CustomList]](),
		PublicLists:       NewSlot[models.Page[models.CustomList]](),
		ListDetails:       NewSlot[models.CustomListDetail](),
		CreateResult:      NewSlot[models.CustomList](),
		UpdateResult:      NewSlot[models.CustomList](),
		DeleteResult:      NewSlot[repository.Unit](),
		AddMovieResult:    NewSlot[repository.Unit](),
		RemoveMovieResult: NewSlot[repository.Unit](),
	}
	h.LoadUserLists(0, defaultPageSize)
	return h
}

// LoadUserLists fetches a page of the user's lists.
func (h *ListsHolder) LoadUserLists(page, size int) {
	bind(h.UserLists, h.repo.UserLists(h.ctx, page, size), nil)
}

// LoadPublicLists fetches a page of public lists.
func (h *ListsHolder) LoadPublicLists(page, size int) {
	bind(h.PublicLists, h.repo.PublicLists(h.ctx, page, size), nil)
}

// LoadListDetails fetches one list's movies.
func (h *ListsHolder) LoadListDetails(listID int64) {
	bind(h.ListDetails, h.repo.Details(h.ctx, listID), nil)
}

// Create makes a list and reloads the user's lists on success.
func (h *ListsHolder) Create(req models.CreateListRequest) {
	bind(h.CreateResult, h.repo.Create(h.ctx, req), func(r result.Result[models.CustomList]) {
		if r.IsSuccess() {
			h.LoadUserLists(0, defaultPageSize)
		}
	})
}

// Update edits a list and reloads its details and the user's lists.
func (h *ListsHolder) Update(listID int64, req models.UpdateListRequest) {
	bind(h.UpdateResult, h.repo.Update(h.ctx, listID, req), func(r result.Result[models.CustomList]) {
		if r.IsSuccess() {
			h.LoadListDetails(listID)
			h.LoadUserLists(0, defaultPageSize)
		}
	})
}

// Delete removes a list and reloads the user's lists on success.
func (h *ListsHolder) Delete(listID int64) {
	bind(h.DeleteResult, h.repo.Delete(h.ctx, listID), func(r result.Result[repository.Unit]) {
		if r.IsSuccess() {
			h.LoadUserLists(0, defaultPageSize)
		}
	})
}

// AddMovie appends a movie and reloads the open list on success.
func (h *ListsHolder) AddMovie(listID int64, req models.AddMovieToListRequest) {
	bind(h.AddMovieResult, h.repo.AddMovie(h.ctx, listID, req), func(r result.Result[repository.Unit]) {
		if r.IsSuccess() {
			h.LoadListDetails(listID)
			h.LoadUserLists(0, defaultPageSize)
		}
	})
}

// RemoveMovie drops a movie and reloads the open list on success.
func (h *ListsHolder) RemoveMovie(listID int64, movieID int) {
	bind(h.RemoveMovieResult, h.repo.RemoveMovie(h.ctx, listID, movieID), func(r result.Result[repository.Unit]) {
		if r.IsSuccess() {
			h.LoadListDetails(listID)
			h.LoadUserLists(0, defaultPageSize)
		}
	})
}

func (h *ListsHolder) ResetCreateResult()      { h.CreateResult.Reset() }
func (h *ListsHolder) ResetUpdateResult()      { h.UpdateResult.Reset() }
func (h *ListsHolder) ResetDeleteResult()      { h.DeleteResult.Reset() }
func (h *ListsHolder) ResetAddMovieResult()    { h.AddMovieResult.Reset() }
func (h *ListsHolder) ResetRemoveMovieResult() { h.RemoveMovieResult.Reset() }
