package repository

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichMoviesCollectsPartialResults(t *testing.T) {
	t.Parallel()

	repo := newDetailsFixture(t, func(w http.ResponseWriter, r *http.Request) {
		// /movie/{id}
		id := strings.TrimPrefix(r.URL.Path, "/movie/")
		if id == "999" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(fmt.Sprintf(`{"id":%s,"title":"Movie %s","overview":"plot"}`, id, id)))
	})

	report := repo.EnrichMovies(context.Background(), []int{1, 999, 3})
	assert.Equal(t, 2, report.Enriched())
	require.Equal(t, 1, report.Failed())
	assert.Equal(t, 999, report.Failures[0].MovieID)
	assert.NotEmpty(t, report.Failures[0].Reason)
	assert.Equal(t, "Movie 1", report.Details[1].Title)
	assert.Equal(t, "Movie 3", report.Details[3].Title)
}

func TestEnrichMoviesStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	calls := 0
	repo := newDetailsFixture(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"id":1,"title":"Movie","overview":"plot"}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := repo.EnrichMovies(ctx, []int{1, 2, 3})
	assert.Zero(t, calls)
	assert.Zero(t, report.Enriched())
	assert.Zero(t, report.Failed())
}

func TestEnrichMoviesEmptyInput(t *testing.T) {
	t.Parallel()

	repo := newDetailsFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	report := repo.EnrichMovies(context.Background(), nil)
	assert.Zero(t, report.Enriched())
	assert.Zero(t, report.Failed())
}
