package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/patrickmoura/gomovie/internal/util"
	"github.com/patrickmoura/gomovie/internal/version"
)

// Execute runs the command tree and reports the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		return 1
	}
	return 0
}

// NewRootCmd builds the gomovie command tree.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		debug      bool
	)

	root := &cobra.Command{
		Use:           "gomovie",
		Short:         "Browse movies and manage your collection from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			util.SetDebugMode(debug)
			util.InitLogger()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newVersionCmd(),
		newAuthCmd(&configPath),
		newHomeCmd(&configPath),
		newSearchCmd(&configPath),
		newMovieCmd(&configPath),
		newFavoritesCmd(&configPath),
		newRatingsCmd(&configPath),
		newListsCmd(&configPath),
		newProfileCmd(&configPath),
		newAICmd(&configPath),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}

// withApp wraps a command body with application setup and teardown.
func withApp(configPath *string, fn func(*App, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := NewApp(*configPath)
		if err != nil {
			return err
		}
		defer app.Close()
		return fn(app, cmd, args)
	}
}
