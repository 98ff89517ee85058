// Package cli wires the gomovie command tree. Each command builds the
// application once from config, runs its repositories synchronously and
// renders the terminal Result.
package cli

import (
	"context"

	"github.com/patrickmoura/gomovie/internal/api"
	"github.com/patrickmoura/gomovie/internal/config"
	"github.com/patrickmoura/gomovie/internal/repository"
	"github.com/patrickmoura/gomovie/internal/result"
	"github.com/patrickmoura/gomovie/internal/session"
	"github.com/patrickmoura/gomovie/internal/util"
)

// App bundles the configured clients and repositories behind the commands.
type App struct {
	Config *config.Config
	Store  *session.Store

	Auth      *repository.AuthRepository
	User      *repository.UserRepository
	Favorites *repository.FavoriteRepository
	Ratings   *repository.RatingRepository
	Lists     *repository.ListRepository
	AI        *repository.AIRepository
	Movies    *repository.MovieRepository
	Details   *repository.MovieDetailsRepository
}

// NewApp loads config, opens the credential store and constructs every
// repository on shared pooled HTTP clients.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		util.SetDebugMode(true)
	}

	store, err := session.Open(cfg.Store.Dir)
	if err != nil {
		return nil, err
	}

	backendHTTP := util.DefaultHTTPClientConfig()
	backendHTTP.Timeout = cfg.Backend.Timeout
	backend := api.NewBackendClient(cfg.Backend, util.NewHTTPClient(backendHTTP))

	metadataHTTP := util.FastHTTPClientConfig()
	metadataHTTP.Timeout = cfg.Metadata.Timeout
	tmdb := api.NewTMDBClient(cfg.Metadata, util.NewHTTPClient(metadataHTTP))

	return &App{
		Config:    cfg,
		Store:     store,
		Auth:      repository.NewAuthRepository(backend, store),
		User:      repository.NewUserRepository(backend, store),
		Favorites: repository.NewFavoriteRepository(backend, store),
		Ratings:   repository.NewRatingRepository(backend, store),
		Lists:     repository.NewListRepository(backend, store),
		AI:        repository.NewAIRepository(backend, store),
		Movies:    repository.NewMovieRepository(tmdb),
		Details:   repository.NewMovieDetailsRepository(tmdb),
	}, nil
}

// Close releases the credential store.
func (a *App) Close() {
	if err := a.Store.Close(); err != nil {
		util.Error("closing credential store", "error", err)
	}
}

// await drains one pipeline invocation and returns its terminal Result.
func await[T any](ch <-chan result.Result[T]) result.Result[T] {
	var last result.Result[T]
	for r := range ch {
		last = r
	}
	return last
}

// ctx returns the context commands run under.
func (a *App) ctx() context.Context {
	return context.Background()
}
