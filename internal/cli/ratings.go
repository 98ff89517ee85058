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

func newRatingsCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{Use: "ratings", Short: "Manage your ratings"}

	var page, size int
	var enrich bool

	list := &cobra.Command{
		Use:   "list",
		Short: "List your ratings",
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			res := await(app.Ratings.List(app.ctx(), page, size))
			return render(res, func(p models.Page[models.Rating]) {
				printHeading(fmt.Sprintf("Ratings (page %d of %d)", p.Page+1, p.TotalPages))

				titles := map[int]string{}
				if enrich && len(p.Content) > 0 {
					ids := make([]int, 0, len(p.Content))
					for _, r := range p.Content {
						ids = append(ids, r.MovieID)
					}
					report := app.Details.EnrichMovies(app.ctx(), ids)
					for id, d := range report.Details {
						titles[id] = d.Title
					}
					if report.Failed() > 0 {
						fmt.Printf("  (%d of %d titles could not be resolved)\n", report.Failed(), len(ids))
					}
				}

				for _, r := range p.Content {
					name := titles[r.MovieID]
					if name == "" {
						name = fmt.Sprintf("movie %d", r.MovieID)
					}
					fmt.Printf("  %-40s %.1f/5  %s\n", name, r.Rating, strOrDash(r.Review))
				}
			})
		}),
	}
	list.Flags().IntVar(&page, "page", 0, "page number")
	list.Flags().IntVar(&size, "size", 20, "page size")
	list.Flags().BoolVar(&enrich, "titles", false, "resolve movie titles from the metadata API")
	cmd.AddCommand(list)

	var review string
	rate := &cobra.Command{
		Use:   "rate <movie-id> <rating>",
		Short: "Rate a movie from 1.0 to 5.0",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			movieID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[0])
			}
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil || value < 1.0 || value > 5.0 {
				return fmt.Errorf("rating must be a number from 1.0 to 5.0")
			}
			req := models.AddRatingRequest{MovieID: movieID, Rating: value}
			if review != "" {
				req.Review = &review
			}
			return runRatingSave(app, req)
		}),
	}
	rate.Flags().StringVar(&review, "review", "", "optional review text")
	cmd.AddCommand(rate)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <movie-id>",
		Short: "Delete your rating of a movie",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			movieID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[0])
			}
			return runRatingDelete(app, movieID)
		}),
	})

	return cmd
}

// runRatingSave drives the mutation through the ratings holder: a
// successful save refetches the ratings page, which is then summarized.
func runRatingSave(app *App, req models.AddRatingRequest) error {
	ctx, cancel := context.WithTimeout(app.ctx(), 60*time.Second)
	defer cancel()

	holder := state.NewRatingsHolder(ctx, app.Ratings, app.Details)
	defer holder.Close()

	holder.Save(req)
	saved := awaitSlot(ctx, holder.SaveResult)
	if err := render(saved, func(r models.Rating) {
		printOK(fmt.Sprintf("Rated movie %d at %.1f", r.MovieID, r.Rating))
	}); err != nil {
		return err
	}

	page := awaitSlot(ctx, holder.Ratings)
	return render(page, func(p models.Page[models.Rating]) {
		fmt.Printf("%d movies rated\n", p.TotalElements)
	})
}

// runRatingDelete mirrors runRatingSave for deletion.
func runRatingDelete(app *App, movieID int) error {
	ctx, cancel := context.WithTimeout(app.ctx(), 60*time.Second)
	defer cancel()

	holder := state.NewRatingsHolder(ctx, app.Ratings, app.Details)
	defer holder.Close()

	holder.Delete(movieID)
	deleted := awaitSlot(ctx, holder.DeleteResult)
	if err := render(deleted, func(repository.Unit) { printOK("Rating deleted") }); err != nil {
		return err
	}

	page := awaitSlot(ctx, holder.Ratings)
	return render(page, func(p models.Page[models.Rating]) {
		fmt.Printf("%d movies rated\n", p.TotalElements)
	})
}
