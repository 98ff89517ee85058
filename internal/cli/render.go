package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/result"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E94560")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF7F")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4757")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A9A9A9"))
)

// render prints a terminal Result, handing Success payloads to show.
func render[T any](r result.Result[T], show func(T)) error {
	switch {
	case r.IsSuccess():
		show(r.Data)
		return nil
	case r.IsError():
		return fmt.Errorf("%s", r.Message)
	default:
		return fmt.Errorf("operation did not complete")
	}
}

func printHeading(text string) {
	fmt.Println(titleStyle.Render(text))
}

func printOK(text string) {
	fmt.Println(successStyle.Render(text))
}

func printMovieRow(m models.Movie) {
	year := m.ReleaseYear()
	if year == "" {
		year = "----"
	}
	fmt.Printf("  %6d  %s %s\n", m.ID, m.Title, dimStyle.Render(fmt.Sprintf("(%s, %.1f)", year, m.VoteAverage)))
}

func printMovieShelf(heading string, movies []models.Movie) {
	printHeading(heading)
	if len(movies) == 0 {
		fmt.Println(dimStyle.Render("  nothing here"))
		return
	}
	for _, m := range movies {
		printMovieRow(m)
	}
}

func printDetail(d models.MovieDetail) {
	printHeading(d.Title)
	if len(d.Genres) > 0 {
		names := make([]string, 0, len(d.Genres))
		for _, g := range d.Genres {
			names = append(names, g.Name)
		}
		fmt.Println(dimStyle.Render("  " + strings.Join(names, ", ")))
	}
	if d.Runtime != nil {
		fmt.Println(dimStyle.Render(fmt.Sprintf("  %d min, released %s, rated %.1f", *d.Runtime, d.ReleaseDate, d.VoteAverage)))
	}
	if d.Overview != "" {
		fmt.Println()
		fmt.Println("  " + d.Overview)
	}
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
