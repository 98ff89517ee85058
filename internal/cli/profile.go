package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/repository"
)

func newProfileCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{Use: "profile", Short: "Manage your account"}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show your profile and collection stats",
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			user := await(app.User.CurrentUser(app.ctx()))
			if err := render(user, func(u models.User) {
				printHeading(u.Email)
				fmt.Printf("  name: %s\n", strOrDash(u.FullName))
				fmt.Printf("  plan: %s\n", u.Plan)
				fmt.Printf("  member since: %s\n", u.CreatedAt)
			}); err != nil {
				return err
			}

			stats := await(app.User.UserStats(app.ctx()))
			return render(stats, func(s models.UserStats) {
				fmt.Printf("  %d favorites, %d ratings (avg %.1f), %d lists\n",
					s.TotalFavorites, s.TotalRatings, s.AverageRating, s.TotalLists)
			})
		}),
	})

	var fullName string
	update := &cobra.Command{
		Use:   "update",
		Short: "Update your display name",
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			var name *string
			if cmd.Flags().Changed("name") {
				name = &fullName
			}
			res := await(app.User.UpdateProfile(app.ctx(), name))
			return render(res, func(u models.User) {
				printOK(fmt.Sprintf("Profile updated: %s", strOrDash(u.FullName)))
			})
		}),
	}
	update.Flags().StringVar(&fullName, "name", "", "new display name")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "password",
		Short: "Change your password",
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			currentPw, newPw, err := promptPasswordChange()
			if err != nil {
				return err
			}
			res := await(app.User.ChangePassword(app.ctx(), currentPw, newPw))
			return render(res, func(repository.Unit) { printOK("Password changed") })
		}),
	})

	return cmd
}
