package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/repository"
	"github.com/patrickmoura/gomovie/internal/state"
)

func newFavoritesCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{Use: "favorites", Short: "Manage your favorites"}

	var page, size int

	list := &cobra.Command{
		Use:   "list",
		Short: "List your favorites",
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			res := await(app.Favorites.List(app.ctx(), page, size))
			return render(res, func(p models.Page[models.Favorite]) {
				printHeading(fmt.Sprintf("Favorites (page %d of %d)", p.Page+1, p.TotalPages))
				for _, f := range p.Content {
					fmt.Printf("  %6d  %s %s\n", f.MovieID, strOrDash(f.MovieTitle), strOrDash(f.ReleaseDate))
				}
			})
		}),
	}
	list.Flags().IntVar(&page, "page", 0, "page number")
	list.Flags().IntVar(&size, "size", 20, "page size")
	cmd.AddCommand(list)

	cmd.AddCommand(&cobra.Command{
		Use:   "add <movie-id>",
		Short: "Add a movie to your favorites",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			movieID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[0])
			}
			// Pull the metadata so the backend stores a display row, the
			// same decoration the details screen sends.
			req := models.AddFavoriteRequest{MovieID: movieID}
			if detail := await(app.Details.Details(app.ctx(), movieID)); detail.IsSuccess() {
				req.MovieTitle = &detail.Data.Title
				req.MoviePoster = detail.Data.PosterPath
				req.MovieOverview = &detail.Data.Overview
				req.ReleaseDate = &detail.Data.ReleaseDate
				req.VoteAverage = &detail.Data.VoteAverage
			}
			return runFavoriteAdd(app, req)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <movie-id>",
		Short: "Remove a movie from your favorites",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			movieID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[0])
			}
			return runFavoriteRemove(app, movieID)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check <movie-id>",
		Short: "Check whether a movie is a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			movieID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[0])
			}
			res := await(app.Favorites.IsFavorite(app.ctx(), movieID))
			return render(res, func(fav bool) {
				if fav {
					printOK("Yes, it's a favorite")
				} else {
					fmt.Println("Not a favorite")
				}
			})
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show your favorites quota",
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			res := await(app.Favorites.Stats(app.ctx()))
			return render(res, func(s models.FavoritesStats) {
				fmt.Printf("%d of %d favorites used", s.TotalFavorites, s.MaxFavorites)
				if s.IsPremium {
					fmt.Print(" (premium)")
				}
				fmt.Println()
			})
		}),
	})

	return cmd
}

// runFavoriteAdd drives the mutation through the favorites holder: the
// successful add refetches the list and the quota stats, and the refreshed
// quota is what gets printed.
func runFavoriteAdd(app *App, req models.AddFavoriteRequest) error {
	ctx, cancel := context.WithTimeout(app.ctx(), 60*time.Second)
	defer cancel()

	holder := state.NewFavoritesHolder(ctx, app.Favorites)
	defer holder.Close()

	holder.Add(req)
	added := awaitSlot(ctx, holder.AddResult)
	if err := render(added, func(f models.Favorite) {
		printOK(fmt.Sprintf("Added %s to favorites", strOrDash(f.MovieTitle)))
	}); err != nil {
		return err
	}

	stats := awaitSlot(ctx, holder.Stats)
	return render(stats, func(s models.FavoritesStats) {
		fmt.Printf("%d of %d favorites used\n", s.TotalFavorites, s.MaxFavorites)
	})
}

// runFavoriteRemove mirrors runFavoriteAdd for removal.
func runFavoriteRemove(app *App, movieID int) error {
	ctx, cancel := context.WithTimeout(app.ctx(), 60*time.Second)
	defer cancel()

	holder := state.NewFavoritesHolder(ctx, app.Favorites)
	defer holder.Close()

	holder.Remove(movieID)
	removed := awaitSlot(ctx, holder.RemoveResult)
	if err := render(removed, func(repository.Unit) { printOK("Removed from favorites") }); err != nil {
		return err
	}

	stats := awaitSlot(ctx, holder.Stats)
	return render(stats, func(s models.FavoritesStats) {
		fmt.Printf("%d of %d favorites used\n", s.TotalFavorites, s.MaxFavorites)
	})
}
