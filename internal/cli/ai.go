package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/patrickmoura/gomovie/internal/models"
)

func newAICmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{Use: "ai", Short: "AI movie recommendations"}

	var noHistory bool
	recommend := &cobra.Command{
		Use:   "recommend <prompt>",
		Short: "Ask for recommendations from a free-text prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			req := models.AIRecommendationRequest{
				Prompt:             strings.Join(args, " "),
				IncludeUserHistory: !noHistory,
				MaxRecommendations: 5,
			}
			res := await(app.AI.Recommend(app.ctx(), req))
			return render(res, func(rec models.AIRecommendation) {
				printHeading("Recommendations")
				for _, m := range rec.Recommendations {
					fmt.Printf("  %6d  %s\n          %s\n", m.MovieID, m.Title, m.Reason)
				}
				if rec.Explanation != "" {
					fmt.Println()
					fmt.Println("  " + rec.Explanation)
				}
				if rec.RequestsRemainingToday != nil {
					fmt.Printf("  (%d requests remaining today)\n", *rec.RequestsRemainingToday)
				}
			})
		}),
	}
	recommend.Flags().BoolVar(&noHistory, "no-history", false, "ignore your collection history")
	cmd.AddCommand(recommend)

	cmd.AddCommand(&cobra.Command{
		Use:   "limit",
		Short: "Show your remaining AI quota",
		RunE: withApp(configPath, func(app *App, cmd *cobra.Command, args []string) error {
			res := await(app.AI.CanRequest(app.ctx()))
			return render(res, func(l models.AILimit) {
				if l.CanRequest {
					printOK("You can request recommendations")
				} else {
					fmt.Println("AI quota exhausted for today")
				}
				if l.RequestsRemainingToday != nil {
					fmt.Printf("  %d requests remaining\n", *l.RequestsRemainingToday)
				}
				if l.Message != nil && *l.Message != "" {
					fmt.Println("  " + *l.Message)
				}
			})
		}),
	})

	return cmd
}
