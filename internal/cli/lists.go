package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/repository"
)

func newListsCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{Use: "lists", Short: "Manage your custom lists"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show your lists",
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			res := await(app.Lists.UserLists(app.ctx(), 0, 20))
			return render(res, printListPage("Your lists"))
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "public",
		Short: "Show everyone's public lists",
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			res := await(app.Lists.PublicLists(app.ctx(), 0, 20))
			return render(res, printListPage("Public lists"))
		}),
	})

	var description string
	var public bool
	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a list",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			req := models.CreateListRequest{Name: args[0], IsPublic: public}
			if description != "" {
				req.Description = &description
			}
			res := await(app.Lists.Create(app.ctx(), req))
			return render(res, func(l models.CustomList) {
				printOK(fmt.Sprintf("Created list %q (id %d)", l.Name, l.ID))
			})
		}),
	}
	create.Flags().StringVar(&description, "description", "", "list description")
	create.Flags().BoolVar(&public, "public", false, "make the list public")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "show <list-id>",
		Short: "Show a list and its movies",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			listID, err := parseListID(args[0])
			if err != nil {
				return err
			}
			res := await(app.Lists.Details(app.ctx(), listID))
			return render(res, func(l models.CustomListDetail) {
				printHeading(l.Name)
				if l.Description != nil && *l.Description != "" {
					fmt.Println("  " + *l.Description)
				}
				for _, m := range l.Movies {
					fmt.Printf("  %6d  %s\n", m.MovieID, strOrDash(m.MovieTitle))
				}
			})
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <list-id>",
		Short: "Delete a list",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			listID, err := parseListID(args[0])
			if err != nil {
				return err
			}
			res := await(app.Lists.Delete(app.ctx(), listID))
			return render(res, func(repository.Unit) { printOK("List deleted") })
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <list-id> <movie-id>",
		Short: "Add a movie to a list",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			listID, err := parseListID(args[0])
			if err != nil {
				return err
			}
			movieID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[1])
			}
			req := models.AddMovieToListRequest{MovieID: movieID}
			if detail := await(app.Details.Details(app.ctx(), movieID)); detail.IsSuccess() {
				req.MovieTitle = &detail.Data.Title
				req.MoviePoster = detail.Data.PosterPath
			}
			res := await(app.Lists.AddMovie(app.ctx(), listID, req))
			return render(res, func(repository.Unit) { printOK("Movie added to list") })
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <list-id> <movie-id>",
		Short: "Remove a movie from a list",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			listID, err := parseListID(args[0])
			if err != nil {
				return err
			}
			movieID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid movie id %q", args[1])
			}
			res := await(app.Lists.RemoveMovie(app.ctx(), listID, movieID))
			return render(res, func(repository.Unit) { printOK("Movie removed from list") })
		}),
	})

	return cmd
}

func parseListID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid list id %q", arg)
	}
	return id, nil
}

func printListPage(heading string) func(models.Page[models.CustomList]) {
	return func(p models.Page[models.CustomList]) {
		printHeading(heading)
		for _, l := range p.Content {
			visibility := "private"
			if l.IsPublic {
				visibility = "public"
			}
			fmt.Printf("  %6d  %-30s %3d movies (%s)\n", l.ID, l.Name, l.MovieCount, visibility)
		}
	}
}
