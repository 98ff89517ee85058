package repository

import (
	"context"

	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/util"
)

// EnrichFailure records one movie that could not be enriched and why.
type EnrichFailure struct {
	MovieID int
	Reason  string
}

// EnrichReport aggregates the outcome of a best-effort enrichment pass:
// the details that resolved, plus an explicit account of what did not.
// Individual failures never abort the pass.
type EnrichReport struct {
	Details  map[int]*models.MovieDetail
	Failures []EnrichFailure
}

// Enriched returns how many lookups succeeded.
func (r *EnrichReport) Enriched() int { return len(r.Details) }

// Failed returns how many lookups failed.
func (r *EnrichReport) Failed() int { return len(r.Failures) }

// EnrichMovies resolves metadata details for each movie id in the preferred
// locale. Used to decorate rating and recommendation rows that only carry a
// movie id. Cancelling ctx stops the pass early; already-collected results
// are still returned.
func (r *MovieDetailsRepository) EnrichMovies(ctx context.Context, movieIDs []int) *EnrichReport {
	report := &EnrichReport{Details: make(map[int]*models.MovieDetail, len(movieIDs))}
	for _, id := range movieIDs {
		if ctx.Err() != nil {
			break
		}
		detail, err := r.tmdb.MovieDetails(ctx, id, r.tmdb.PrimaryLanguage())
		if err != nil {
			report.Failures = append(report.Failures, EnrichFailure{MovieID: id, Reason: err.Error()})
			continue
		}
		report.Details[id] = detail
	}
	if report.Failed() > 0 {
		util.Debug("enrichment finished with failures", "enriched", report.Enriched(), "failed", report.Failed())
	}
	return report
}
