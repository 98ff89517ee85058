package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/patrickmoura/gomovie/internal/models"
)

func newSearchCmd(configPath *string) *cobra.Command {
	var (
		genreID   int
		year      int
		minRating float64
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search movies by title, or discover with filters",
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				query := strings.Join(args, " ")
				res := await(app.Movies.Search(app.ctx(), query))
				return render(res, func(m []models.Movie) { printMovieShelf("Results for "+query, m) })
			}

			var genre, yr *int
			var rating *float64
			if cmd.Flags().Changed("genre") {
				genre = &genreID
			}
			if cmd.Flags().Changed("year") {
				yr = &year
			}
			if cmd.Flags().Changed("min-rating") {
				rating = &minRating
			}
			res := await(app.Movies.Discover(app.ctx(), genre, yr, rating))
			return render(res, func(m []models.Movie) { printMovieShelf("Discovered", m) })
		}),
	}

	cmd.Flags().IntVar(&genreID, "genre", 0, "filter by genre id")
	cmd.Flags().IntVar(&year, "year", 0, "filter by release year")
	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "minimum vote average")

	cmd.AddCommand(&cobra.Command{
		Use:   "genres",
		Short: "List the genre catalog",
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			res := await(app.Movies.Genres(app.ctx()))
			return render(res, func(genres []models.Genre) {
				printHeading("Genres")
				for _, g := range genres {
					cmd.Printf("  %4d  %s\n", g.ID, g.Name)
				}
			})
		}),
	})

	return cmd
}
