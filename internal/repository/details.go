package repository

import (
	"context"
	"strings"

	"github.com/patrickmoura/gomovie/internal/api"
	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/result"
	"github.com/patrickmoura/gomovie/internal/util"
)

// maxCastMembers caps the cast returned to the details screen.
const maxCastMembers = 10

// MovieDetailsRepository serves the detail surface: full detail, videos,
// credits and similar movies. Detail and video fetches carry the locale
// fallback: when the preferred locale comes back with a blank synopsis or an
// empty video list, the same call is retried once in the fallback locale
// before the pipeline terminates.
type MovieDetailsRepository struct {
	tmdb *api.TMDBClient
}

func NewMovieDetailsRepository(tmdb *api.TMDBClient) *MovieDetailsRepository {
	return &MovieDetailsRepository{tmdb: tmdb}
}

// Details fetches the movie detail in the preferred locale, retrying in the
// fallback locale when the synopsis comes back blank. If the fallback fetch
// fails, the original payload is still a Success.
func (r *MovieDetailsRepository) Details(ctx context.Context, movieID int) <-chan result.Result[models.MovieDetail] {
	return run(ctx, func(ctx context.Context) result.Result[models.MovieDetail] {
		detail, err := r.tmdb.MovieDetails(ctx, movieID, r.tmdb.PrimaryLanguage())
		if err != nil {
			return result.Error[models.MovieDetail]("Could not load movie details")
		}
		if strings.TrimSpace(detail.Overview) == "" {
			util.Debug("blank synopsis, retrying in fallback locale", "movie_id", movieID)
			fallback, err := r.tmdb.MovieDetails(ctx, movieID, r.tmdb.FallbackLanguage())
			if err == nil {
				return result.Success(*fallback)
			}
		}
		return result.Success(*detail)
	})
}

// Videos fetches trailers in the preferred locale, retrying in the fallback
// locale when the list is empty. A failed fallback yields the empty list as
// Success, not Error.
func (r *MovieDetailsRepository) Videos(ctx context.Context, movieID int) <-chan result.Result[[]models.Video] {
	return run(ctx, func(ctx context.Context) result.Result[[]models.Video] {
		videos, err := r.tmdb.MovieVideos(ctx, movieID, r.tmdb.PrimaryLanguage())
		if err == nil && len(videos.Results) > 0 {
			return result.Success(videos.Results)
		}
		util.Debug("no videos in preferred locale, retrying in fallback locale", "movie_id", movieID)
		fallback, fbErr := r.tmdb.MovieVideos(ctx, movieID, r.tmdb.FallbackLanguage())
		if fbErr == nil {
			return result.Success(fallback.Results)
		}
		if err != nil {
			return result.Error[[]models.Video]("Could not load trailers")
		}
		return result.Success([]models.Video{})
	})
}

// Credits fetches the cast, truncated to the first entries.
func (r *MovieDetailsRepository) Credits(ctx context.Context, movieID int) <-chan result.Result[[]models.CastMember] {
	return run(ctx, func(ctx context.Context) result.Result[[]models.CastMember] {
		credits, err := r.tmdb.MovieCredits(ctx, movieID)
		if err != nil {
			return result.Error[[]models.CastMember]("Could not load cast")
		}
		cast := credits.Cast
		if len(cast) > maxCastMembers {
			cast = cast[:maxCastMembers]
		}
		return result.Success(cast)
	})
}

// Similar lists movies similar to movieID.
func (r *MovieDetailsRepository) Similar(ctx context.Context, movieID int) <-chan result.Result[[]models.Movie] {
	return run(ctx, func(ctx context.Context) result.Result[[]models.Movie] {
		list, err := r.tmdb.SimilarMovies(ctx, movieID)
		if err != nil {
			return result.Error[[]models.Movie]("Could not load similar movies")
		}
		return result.Success(list.Results)
	})
}
