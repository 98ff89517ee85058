package state

import (
	"context"

	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/repository"
)

// DetailsHolder owns the movie detail screen: the detail payload itself,
// trailers, cast, similar movies, and the user's relationship to the movie.
type DetailsHolder struct {
	scope
	details   *repository.MovieDetailsRepository
	favorites *repository.FavoriteRepository
	ratings   *repository.RatingRepository

	Detail     *Slot[models.MovieDetail]
	Videos     *Slot[[]models.Video]
	Cast       *Slot[[]models.CastMember]
	Similar    *Slot[[]models.Movie]
	IsFavorite *Slot[bool]
	HasRated   *Slot[bool]
	UserRating *Slot[models.Rating]
}

func NewDetailsHolder(
	parent context.Context,
	details *repository.MovieDetailsRepository,
	favorites *repository.FavoriteRepository,
	ratings *repository.RatingRepository,
) *DetailsHolder {
	return &DetailsHolder{
		scope:      newScope(parent),
		details:    details,
		favorites:  favorites,
		ratings:    ratings,
		Detail:     NewSlot[models.MovieDetail](),
		Videos:     NewSlot[[]models.Video](),
		Cast:       NewSlot[[]models.CastMember](),
		Similar:    NewSlot[[]models.Movie](),
		IsFavorite: NewSlot[bool](),
		HasRated:   NewSlot[bool](),
		UserRating: NewSlot[models.Rating](),
	}
}

// Load triggers the metadata fetches for one movie.
func (h *DetailsHolder) Load(movieID int) {
	bind(h.Detail, h.details.Details(h.ctx, movieID), nil)
	bind(h.Videos, h.details.Videos(h.ctx, movieID), nil)
	bind(h.Cast, h.details.Credits(h.ctx, movieID), nil)
	bind(h.Similar, h.details.Similar(h.ctx, movieID), nil)
}

// CheckUserState triggers the membership checks and the user's own rating.
func (h *DetailsHolder) CheckUserState(movieID int) {
	bind(h.IsFavorite, h.favorites.IsFavorite(h.ctx, movieID), nil)
	bind(h.HasRated, h.ratings.HasRated(h.ctx, movieID), nil)
	bind(h.UserRating, h.ratings.ByMovie(h.ctx, movieID), nil)
}
