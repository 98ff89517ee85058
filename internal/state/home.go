package state

import (
	"context"

	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/repository"
)

// HomeHolder owns the four browse shelves. Construction triggers the
// initial load, mirroring the home screen opening.
type HomeHolder struct {
	scope
	repo *repository.MovieRepository

	Trending *Slot[[]models.Movie]
	Popular  *Slot[[]models.Movie]
	Upcoming *Slot[[]models.Movie]
	TopRated *Slot[[]models.Movie]
}

func NewHomeHolder(parent context.Context, repo *repository.MovieRepository) *HomeHolder {
	h := &HomeHolder{
		scope:    newScope(parent),
		repo:     repo,
		Trending: NewSlot[[]models.Movie](),
		Popular:  NewSlot[[]models.Movie](),
		Upcoming: NewSlot[[]models.Movie](),
		TopRated: NewSlot[[]models.Movie](),
	}
	h.Load()
	return h
}

// Load triggers all four shelves.
func (h *HomeHolder) Load() {
	bind(h.Trending, h.repo.Trending(h.ctx), nil)
	bind(h.Popular, h.repo.Popular(h.ctx), nil)
	bind(h.Upcoming, h.repo.Upcoming(h.ctx), nil)
	bind(h.TopRated, h.repo.TopRated(h.ctx), nil)
}
