package models

import "fmt"

// Movie is a single entry from the metadata provider's list endpoints.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
}

// ReleaseYear extracts the year portion of the release date.
func (m *Movie) ReleaseYear() string {
	if len(m.ReleaseDate) >= 4 {
		return m.ReleaseDate[:4]
	}
	return ""
}

// MovieList is the provider's pagination wrapper.
type MovieList struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// MovieDetail is the full detail payload for one movie.
type MovieDetail struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	Runtime      *int    `json:"runtime"`
	Genres       []Genre `json:"genres"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type GenreList struct {
	Genres []Genre `json:"genres"`
}

// VideoList wraps the trailers/teasers attached to a movie.
type VideoList struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}

type Video struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Site        string `json:"site"`
	Type        string `json:"type"`
	PublishedAt string `json:"published_at"`
}

// Credits holds the cast returned by the credits endpoint.
type Credits struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
}

type CastMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
}

// ImageURL builds a full image URL from a poster/backdrop path.
// Size is a provider size class such as "w500" or "original".
func ImageURL(base, path, size string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s%s", base, size, path)
}
