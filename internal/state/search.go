package state

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/repository"
)

const (
	searchDebounce = 400 * time.Millisecond
	minQueryLength = 2
)

// SearchHolder owns the search screen: debounced text search, filtered
// discovery and the genre catalog. Construction loads the genres.
type SearchHolder struct {
	scope
	repo *repository.MovieRepository

	Results *Slot[[]models.Movie]
	Genres  *Slot[[]models.Genre]

	mu      sync.Mutex
	pending *time.Timer
}

func NewSearchHolder(parent context.Context, repo *repository.MovieRepository) *SearchHolder {
	h := &SearchHolder{
		scope:   newScope(parent),
		repo:    repo,
		Results: NewSlot[[]models.Movie](),
		Genres:  NewSlot[[]models.Genre](),
	}
	bind(h.Genres, repo.Genres(h.ctx), nil)
	return h
}

// SetQuery feeds debounced user input. Each keystroke restarts the timer;
// only a query that survives the debounce window and meets the minimum
// length issues a call.
func (h *SearchHolder) SetQuery(query string) {
	query = strings.TrimSpace(query)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pending != nil {
		h.pending.Stop()
	}
	if len([]rune(query)) < minQueryLength {
		h.pending = nil
		return
	}
	h.pending = time.AfterFunc(searchDebounce, func() {
		if h.ctx.Err() != nil {
			return
		}
		h.Search(query)
	})
}

// Search issues an immediate text search, bypassing the debounce.
func (h *SearchHolder) Search(query string) {
	bind(h.Results, h.repo.Search(h.ctx, query), nil)
}

// Discover searches with the optional genre/year/rating filters.
func (h *SearchHolder) Discover(genreID *int, year *int, minRating *float64) {
	bind(h.Results, h.repo.Discover(h.ctx, genreID, year, minRating), nil)
}

// ClearResults empties the result slot.
func (h *SearchHolder) ClearResults() {
	h.Results.Reset()
}

// Close stops any pending debounce timer along with the scope.
func (h *SearchHolder) Close() {
	h.mu.Lock()
	if h.pending != nil {
		h.pending.Stop()
		h.pending = nil
	}
	h.mu.Unlock()
	h.scope.Close()
}
