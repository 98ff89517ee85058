package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/patrickmoura/gomovie/internal/config"
	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/util"
)

// TMDBClient handles interactions with the movie metadata provider.
type TMDBClient struct {
	client    *http.Client
	apiKey    string
	baseURL   string
	imageBase string
	language  string
	fallback  string
}

// NewTMDBClient creates a metadata client from config.
func NewTMDBClient(cfg config.MetadataConfig, client *http.Client) *TMDBClient {
	if cfg.APIKey == "" {
		util.Debug("metadata api_key not set, metadata requests will be rejected upstream")
	}
	return &TMDBClient{
		client:    client,
		apiKey:    cfg.APIKey,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		imageBase: strings.TrimRight(cfg.ImageBaseURL, "/"),
		language:  cfg.PrimaryLanguage,
		fallback:  cfg.FallbackLanguage,
	}
}

// IsConfigured returns true if the API key is configured.
func (c *TMDBClient) IsConfigured() bool {
	return c.apiKey != ""
}

// PrimaryLanguage returns the preferred locale for detail fetches.
func (c *TMDBClient) PrimaryLanguage() string { return c.language }

// FallbackLanguage returns the locale retried when the primary yields a
// blank synopsis or an empty video list.
func (c *TMDBClient) FallbackLanguage() string { return c.fallback }

// ImageURL builds a full image URL for a poster or backdrop path.
func (c *TMDBClient) ImageURL(path, size string) string {
	return models.ImageURL(c.imageBase, path, size)
}

func (c *TMDBClient) get(ctx context.Context, path string, query url.Values, out any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	if query.Get("language") == "" {
		query.Set("language", c.language)
	}
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "building metadata request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", path)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading metadata response")
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("metadata API returned status %d for %s", resp.StatusCode, path)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "parsing metadata response for %s", path)
	}
	return nil
}

func (c *TMDBClient) movieList(ctx context.Context, path string, query url.Values) (*models.MovieList, error) {
	var list models.MovieList
	if err := c.get(ctx, path, query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// PopularMovies fetches the current popular list.
func (c *TMDBClient) PopularMovies(ctx context.Context) (*models.MovieList, error) {
	return c.movieList(ctx, "/movie/popular", nil)
}

// TrendingMovies fetches this week's trending list.
func (c *TMDBClient) TrendingMovies(ctx context.Context) (*models.MovieList, error) {
	return c.movieList(ctx, "/trending/movie/week", nil)
}

// UpcomingMovies fetches upcoming releases.
func (c *TMDBClient) UpcomingMovies(ctx context.Context) (*models.MovieList, error) {
	return c.movieList(ctx, "/movie/upcoming", nil)
}

// TopRatedMovies fetches the all-time top rated list.
func (c *TMDBClient) TopRatedMovies(ctx context.Context) (*models.MovieList, error) {
	return c.movieList(ctx, "/movie/top_rated", nil)
}

// SimilarMovies fetches movies similar to movieID.
func (c *TMDBClient) SimilarMovies(ctx context.Context, movieID int) (*models.MovieList, error) {
	return c.movieList(ctx, fmt.Sprintf("/movie/%d/similar", movieID), nil)
}

// SearchMovies searches movies by free-text query.
func (c *TMDBClient) SearchMovies(ctx context.Context, query string) (*models.MovieList, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("include_adult", "false")
	return c.movieList(ctx, "/search/movie", q)
}

// DiscoverMovies lists movies matching the optional genre/year/rating
// filters.
func (c *TMDBClient) DiscoverMovies(ctx context.Context, genreID *int, year *int, minRating *float64) (*models.MovieList, error) {
	q := url.Values{}
	q.Set("sort_by", "popularity.desc")
	if genreID != nil {
		q.Set("with_genres", fmt.Sprintf("%d", *genreID))
	}
	if year != nil {
		q.Set("primary_release_year", fmt.Sprintf("%d", *year))
	}
	if minRating != nil {
		q.Set("vote_average.gte", fmt.Sprintf("%.1f", *minRating))
	}
	return c.movieList(ctx, "/discover/movie", q)
}

// Genres fetches the full movie genre catalog.
func (c *TMDBClient) Genres(ctx context.Context) ([]models.Genre, error) {
	var list models.GenreList
	if err := c.get(ctx, "/genre/movie/list", nil, &list); err != nil {
		return nil, err
	}
	return list.Genres, nil
}

// MovieDetails fetches the detail payload for movieID in the given locale.
func (c *TMDBClient) MovieDetails(ctx context.Context, movieID int, language string) (*models.MovieDetail, error) {
	q := url.Values{}
	q.Set("language", language)
	var detail models.MovieDetail
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), q, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// MovieVideos fetches trailers/teasers for movieID in the given locale.
func (c *TMDBClient) MovieVideos(ctx context.Context, movieID int, language string) (*models.VideoList, error) {
	q := url.Values{}
	q.Set("language", language)
	var videos models.VideoList
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/videos", movieID), q, &videos); err != nil {
		return nil, err
	}
	return &videos, nil
}

// MovieCredits fetches the cast for movieID.
func (c *TMDBClient) MovieCredits(ctx context.Context, movieID int) (*models.Credits, error) {
	var credits models.Credits
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/credits", movieID), nil, &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}
