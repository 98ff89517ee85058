package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/result"
	"github.com/patrickmoura/gomovie/internal/state"
)

func newHomeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the browse shelves (trending, popular, upcoming, top rated)",
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(app.ctx(), 60*time.Second)
			defer cancel()

			holder := state.NewHomeHolder(ctx, app.Movies)
			defer holder.Close()

			shelves := []struct {
				heading string
				slot    *state.Slot[[]models.Movie]
			}{
				{"Trending this week", holder.Trending},
				{"Popular", holder.Popular},
				{"Upcoming", holder.Upcoming},
				{"Top rated", holder.TopRated},
			}
			for _, shelf := range shelves {
				res := awaitSlot(ctx, shelf.slot)
				heading := shelf.heading
				if err := render(res, func(m []models.Movie) { printMovieShelf(heading, m) }); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

// awaitSlot blocks until the slot's current invocation reaches a terminal
// Result.
func awaitSlot[T any](ctx context.Context, slot *state.Slot[T]) result.Result[T] {
	for r := range slot.Subscribe(ctx) {
		if r.IsTerminal() {
			return r
		}
	}
	return result.Error[T]("operation cancelled")
}
