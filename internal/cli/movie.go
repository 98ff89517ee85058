package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/patrickmoura/gomovie/internal/models"
)

func newMovieCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{Use: "movie", Short: "Movie detail commands"}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a movie's details, trailers and cast",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			movieID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[0])
			}

			detail := await(app.Details.Details(app.ctx(), movieID))
			if err := render(detail, printDetail); err != nil {
				return err
			}

			videos := await(app.Details.Videos(app.ctx(), movieID))
			if err := render(videos, func(vs []models.Video) {
				if len(vs) == 0 {
					return
				}
				printHeading("Trailers")
				for _, v := range vs {
					fmt.Printf("  %s (%s) https://youtu.be/%s\n", v.Name, v.Type, v.Key)
				}
			}); err != nil {
				return err
			}

			cast := await(app.Details.Credits(app.ctx(), movieID))
			return render(cast, func(members []models.CastMember) {
				if len(members) == 0 {
					return
				}
				printHeading("Cast")
				for _, m := range members {
					fmt.Printf("  %s as %s\n", m.Name, m.Character)
				}
			})
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "similar <id>",
		Short: "List movies similar to the given one",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			movieID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[0])
			}
			res := await(app.Details.Similar(app.ctx(), movieID))
			return render(res, func(m []models.Movie) { printMovieShelf("Similar movies", m) })
		}),
	})

	return cmd
}
