package state

import (
	"context"

	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/repository"
	"github.com/patrickmoura/gomovie/internal/result"
)

// RatingsHolder owns the ratings screen, including the best-effort metadata
// enrichment of rating rows.
type RatingsHolder struct {
	scope
	repo    *repository.RatingRepository
	details *repository.MovieDetailsRepository

	Ratings      *Slot[models.Page[models.Rating]]
	RatedIDs     *Slot[[]int]
	SaveResult   *Slot[models.Rating]
	DeleteResult *Slot[repository.Unit]
	Enrichment   *Slot[*repository.EnrichReport]
}

func NewRatingsHolder(parent context.Context, repo *repository.RatingRepository, details *repository.MovieDetailsRepository) *RatingsHolder {
	return &RatingsHolder{
		scope:        newScope(parent),
		repo:         repo,
		details:      details,
		Ratings:      NewSlot[models.Page[models.Rating]](),
		RatedIDs:     NewSlot[[]int](),
		SaveResult:   NewSlot[models.Rating](),
		DeleteResult: NewSlot[repository.Unit](),
		Enrichment:   NewSlot[*repository.EnrichReport](),
	}
}

// Load fetches one page of ratings.
func (h *RatingsHolder) Load(page, size int) {
	bind(h.Ratings, h.repo.List(h.ctx, page, size), nil)
}

// LoadRatedIDs fetches the id set used to mark already-rated movies.
func (h *RatingsHolder) LoadRatedIDs() {
	bind(h.RatedIDs, h.repo.RatedIDs(h.ctx), nil)
}

// Save adds or updates a rating and reloads the list on success.
func (h *RatingsHolder) Save(req models.AddRatingRequest) {
	bind(h.SaveResult, h.repo.AddOrUpdate(h.ctx, req), func(r result.Result[models.Rating]) {
		if r.IsSuccess() {
			h.Load(0, defaultPageSize)
		}
	})
}

// Delete removes a rating and reloads the list on success.
func (h *RatingsHolder) Delete(movieID int) {
	bind(h.DeleteResult, h.repo.Delete(h.ctx, movieID), func(r result.Result[repository.Unit]) {
		if r.IsSuccess() {
			h.Load(0, defaultPageSize)
		}
	})
}

// Enrich decorates the given movie ids with metadata details. The report is
// always a Success: individual lookup failures are aggregated, not raised.
func (h *RatingsHolder) Enrich(movieIDs []int) {
	seq := h.Enrichment.begin()
	go func() {
		if !h.Enrichment.deliver(seq, result.Loading[*repository.EnrichReport]()) {
			return
		}
		report := h.details.EnrichMovies(h.ctx, movieIDs)
		if h.ctx.Err() != nil {
			return
		}
		h.Enrichment.deliver(seq, result.Success(report))
	}()
}

func (h *RatingsHolder) ResetSaveResult()   { h.SaveResult.Reset() }
func (h *RatingsHolder) ResetDeleteResult() { h.DeleteResult.Reset() }
