package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/patrickmoura/gomovie/internal/models"
)

func newAuthCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{Use: "auth", Short: "Authentication commands"}

	cmd.AddCommand(&cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			email, password, err := promptCredentials(false)
			if err != nil {
				return err
			}
			res := await(app.Auth.Login(app.ctx(), email, password))
			return render(res, func(auth models.AuthResponse) {
				printOK(fmt.Sprintf("Logged in as %s", auth.User.Email))
			})
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			email, password, err := promptCredentials(true)
			if err != nil {
				return err
			}
			res := await(app.Auth.Register(app.ctx(), email, password, nil))
			return render(res, func(auth models.AuthResponse) {
				printOK(fmt.Sprintf("Registered as %s", auth.User.Email))
			})
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(app.ctx()); err != nil {
				return err
			}
			printOK("Logged out")
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			cred := app.Store.Current()
			if cred.AccessToken == "" {
				fmt.Println("Not logged in")
				return nil
			}
			printOK(fmt.Sprintf("Logged in as %s (user %d)", cred.UserEmail, cred.UserID))
			return nil
		}),
	})

	return cmd
}

func promptCredentials(confirm bool) (email, password string, err error) {
	fields := []huh.Field{
		huh.NewInput().Title("Email").Value(&email),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
	}
	if confirm {
		var repeat string
		fields = append(fields, huh.NewInput().
			Title("Repeat password").
			EchoMode(huh.EchoModePassword).
			Value(&repeat).
			Validate(func(string) error {
				if repeat != password {
					return fmt.Errorf("passwords do not match")
				}
				return nil
			}))
	}
	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return "", "", err
	}
	return email, password, nil
}

func promptPasswordChange() (current, updated string, err error) {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Current password").EchoMode(huh.EchoModePassword).Value(&current),
		huh.NewInput().Title("New password").EchoMode(huh.EchoModePassword).Value(&updated),
	))
	if err := form.Run(); err != nil {
		return "", "", err
	}
	return current, updated, nil
}
