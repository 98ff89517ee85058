// Package models defines the wire-level types exchanged with the collection
// backend and the movie metadata provider.
package models

// Envelope is the backend's uniform wrapper around every JSON response.
type Envelope[T any] struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      *T     `json:"data"`
	Timestamp string `json:"timestamp"`
}

// ErrorBody is the structured error payload returned with non-2xx statuses.
type ErrorBody struct {
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
}

// Page is the backend's pagination wrapper.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	IsLast        bool  `json:"isLast"`
}

// Auth

type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"fullName,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
	User         User   `json:"user"`
}

// User

type User struct {
	ID              int64   `json:"id"`
	Email           string  `json:"email"`
	FullName        *string `json:"fullName"`
	Plan            string  `json:"plan"`
	AIRequestsToday int     `json:"aiRequestsToday"`
	MaxFavorites    int     `json:"maxFavorites"`
	PremiumUntil    *string `json:"premiumUntil"`
	EmailVerified   bool    `json:"emailVerified"`
	CreatedAt       string  `json:"createdAt"`
}

type UserStats struct {
	TotalFavorites  int     `json:"totalFavorites"`
	TotalRatings    int     `json:"totalRatings"`
	TotalLists      int     `json:"totalLists"`
	AverageRating   float64 `json:"averageRating"`
	TotalAIRequests int     `json:"totalAIRequests"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"fullName"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Favorites

type AddFavoriteRequest struct {
	MovieID       int      `json:"movieId"`
	MovieTitle    *string  `json:"movieTitle,omitempty"`
	MoviePoster   *string  `json:"moviePoster,omitempty"`
	MovieOverview *string  `json:"movieOverview,omitempty"`
	ReleaseDate   *string  `json:"releaseDate,omitempty"`
	VoteAverage   *float64 `json:"voteAverage,omitempty"`
}

type Favorite struct {
	ID            int64    `json:"id"`
	MovieID       int      `json:"movieId"`
	MovieTitle    *string  `json:"movieTitle"`
	MoviePoster   *string  `json:"moviePoster"`
	MovieOverview *string  `json:"movieOverview"`
	ReleaseDate   *string  `json:"releaseDate"`
	VoteAverage   *float64 `json:"voteAverage"`
	AddedAt       string   `json:"addedAt"`
}

type FavoritesStats struct {
	TotalFavorites int  `json:"totalFavorites"`
	MaxFavorites   int  `json:"maxFavorites"`
	CanAddMore     bool `json:"canAddMore"`
	IsPremium      bool `json:"isPremium"`
}

// Ratings

type AddRatingRequest struct {
	MovieID int     `json:"movieId"`
	Rating  float64 `json:"rating"` // 1.0 to 5.0
	Review  *string `json:"review,omitempty"`
}

type UpdateRatingRequest struct {
	Rating float64 `json:"rating"`
	Review *string `json:"review,omitempty"`
}

type Rating struct {
	ID        int64   `json:"id"`
	MovieID   int     `json:"movieId"`
	Rating    float64 `json:"rating"`
	Review    *string `json:"review"`
	WatchedAt string  `json:"watchedAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// Custom lists

type CreateListRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsPublic    bool    `json:"isPublic"`
}

type UpdateListRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
}

type AddMovieToListRequest struct {
	MovieID     int     `json:"movieId"`
	MovieTitle  *string `json:"movieTitle,omitempty"`
	MoviePoster *string `json:"moviePoster,omitempty"`
}

type CustomList struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsPublic    bool    `json:"isPublic"`
	MovieCount  int     `json:"movieCount"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type CustomListDetail struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	IsPublic    bool        `json:"isPublic"`
	Movies      []ListMovie `json:"movies"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
}

type ListMovie struct {
	MovieID     int     `json:"movieId"`
	MovieTitle  *string `json:"movieTitle"`
	MoviePoster *string `json:"moviePoster"`
	AddedAt     string  `json:"addedAt"`
}

// AI recommendations

type AIRecommendationRequest struct {
	Prompt             string `json:"prompt"`
	IncludeUserHistory bool   `json:"includeUserHistory"`
	MaxRecommendations int    `json:"maxRecommendations"`
}

type AIRecommendation struct {
	Recommendations        []MovieRecommendation `json:"recommendations"`
	Explanation            string                `json:"explanation"`
	RequestsRemainingToday *int                  `json:"requestsRemainingToday"`
}

type MovieRecommendation struct {
	MovieID    int     `json:"movieId"`
	Title      string  `json:"title"`
	PosterPath *string `json:"posterPath"`
	Reason     string  `json:"reason"`
}

type AILimit struct {
	CanRequest             bool    `json:"canRequest"`
	RequestsRemainingToday *int    `json:"requestsRemainingToday"`
	IsPremium              bool    `json:"isPremium"`
	Message                *string `json:"message"`
}
