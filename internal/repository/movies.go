package repository

import (
	"context"

	"github.com/patrickmoura/gomovie/internal/api"
	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/result"
)

// MovieRepository serves the browse and search surfaces from the metadata
// provider. No credential is involved; the provider authenticates with the
// api_key query parameter the client carries.
type MovieRepository struct {
	tmdb *api.TMDBClient
}

func NewMovieRepository(tmdb *api.TMDBClient) *MovieRepository {
	return &MovieRepository{tmdb: tmdb}
}

// Trending lists this week's trending movies.
func (r *MovieRepository) Trending(ctx context.Context) <-chan result.Result[[]models.Movie] {
	return r.shelf(ctx, r.tmdb.TrendingMovies, "Could not load trending movies")
}

// Popular lists the popular shelf.
func (r *MovieRepository) Popular(ctx context.Context) <-chan result.Result[[]models.Movie] {
	return r.shelf(ctx, r.tmdb.PopularMovies, "Could not load popular movies")
}

// Upcoming lists upcoming releases.
func (r *MovieRepository) Upcoming(ctx context.Context) <-chan result.Result[[]models.Movie] {
	return r.shelf(ctx, r.tmdb.UpcomingMovies, "Could not load upcoming movies")
}

// TopRated lists the top rated shelf.
func (r *MovieRepository) TopRated(ctx context.Context) <-chan result.Result[[]models.Movie] {
	return r.shelf(ctx, r.tmdb.TopRatedMovies, "Could not load top rated movies")
}

func (r *MovieRepository) shelf(ctx context.Context, fetch func(context.Context) (*models.MovieList, error), fallback string) <-chan result.Result[[]models.Movie] {
	return run(ctx, func(ctx context.Context) result.Result[[]models.Movie] {
		list, err := fetch(ctx)
		if err != nil {
			return result.Error[[]models.Movie](fallback)
		}
		return result.Success(list.Results)
	})
}

// Search looks up movies by free-text query.
func (r *MovieRepository) Search(ctx context.Context, query string) <-chan result.Result[[]models.Movie] {
	return run(ctx, func(ctx context.Context) result.Result[[]models.Movie] {
		list, err := r.tmdb.SearchMovies(ctx, query)
		if err != nil {
			return result.Error[[]models.Movie]("Could not search movies")
		}
		return result.Success(list.Results)
	})
}

// Discover lists movies matching the optional filters.
func (r *MovieRepository) Discover(ctx context.Context, genreID *int, year *int, minRating *float64) <-chan result.Result[[]models.Movie] {
	return run(ctx, func(ctx context.Context) result.Result[[]models.Movie] {
		list, err := r.tmdb.DiscoverMovies(ctx, genreID, year, minRating)
		if err != nil {
			return result.Error[[]models.Movie]("Could not discover movies")
		}
		return result.Success(list.Results)
	})
}

// Genres fetches the genre catalog.
func (r *MovieRepository) Genres(ctx context.Context) <-chan result.Result[[]models.Genre] {
	return run(ctx, func(ctx context.Context) result.Result[[]models.Genre] {
		genres, err := r.tmdb.Genres(ctx)
		return classifyValue(&genres, err, "Could not load genres")
	})
}
