package state

import (
	"context"

	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/repository"
	"github.com/patrickmoura/gomovie/internal/result"
)

const defaultPageSize = 20

// FavoritesHolder owns the favorites screen. Successful mutations refetch
// the list and the quota stats; a full refetch is the consistency mechanism,
// there is no local cache patching.
type FavoritesHolder struct {
	scope
	repo *repository.FavoriteRepository

	Favorites    *Slot[models.Page[models.Favorite]]
	IDs          *Slot[[]int]
	Stats        *Slot[models.FavoritesStats]
	AddResult    *Slot[models.Favorite]
	RemoveResult *Slot[repository.Unit]
}

func NewFavoritesHolder(parent context.Context, repo *repository.FavoriteRepository) *FavoritesHolder {
	return &FavoritesHolder{
		scope:        newScope(parent),
		repo:         repo,
		Favorites:    NewSlot[models.Page[models.Favorite]](),
		IDs:          NewSlot[[]int](),
		Stats:        NewSlot[models.FavoritesStats](),
		AddResult:    NewSlot[models.Favorite](),
		RemoveResult: NewSlot[repository.Unit](),
	}
}

// Load fetches one page of favorites.
func (h *FavoritesHolder) Load(page, size int) {
	bind(h.Favorites, h.repo.List(h.ctx, page, size), nil)
}

// LoadIDs fetches the id set used to mark already-favorited movies.
func (h *FavoritesHolder) LoadIDs() {
	bind(h.IDs, h.repo.IDs(h.ctx), nil)
}

// LoadStats fetches the quota counters.
func (h *FavoritesHolder) LoadStats() {
	bind(h.Stats, h.repo.Stats(h.ctx), nil)
}

// Add favorites a movie and reloads the list and stats on success.
func (h *FavoritesHolder) Add(req models.AddFavoriteRequest) {
	bind(h.AddResult, h.repo.Add(h.ctx, req), func(r result.Result[models.Favorite]) {
		if r.IsSuccess() {
			h.Load(0, defaultPageSize)
			h.LoadStats()
		}
	})
}

// Remove unfavorites a movie and reloads the list and stats on success.
func (h *FavoritesHolder) Remove(movieID int) {
	bind(h.RemoveResult, h.repo.Remove(h.ctx, movieID), func(r result.Result[repository.Unit]) {
		if r.IsSuccess() {
			h.Load(0, defaultPageSize)
			h.LoadStats()
		}
	})
}

func (h *FavoritesHolder) ResetAddResult()    { h.AddResult.Reset() }
func (h *FavoritesHolder) ResetRemoveResult() { h.RemoveResult.Reset() }
