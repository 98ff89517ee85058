package repository

import (
	"context"

	"github.com/patrickmoura/gomovie/internal/api"
	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/result"
	"github.com/patrickmoura/gomovie/internal/session"
)

// AIRepository covers the AI recommendation endpoints.
type AIRepository struct {
	base
}

func NewAIRepository(backend *api.BackendClient, store *session.Store) *AIRepository {
	return &AIRepository{base{backend: backend, store: store}}
}

// Recommend asks the backend for prompt-driven movie recommendations.
func (r *AIRepository) Recommend(ctx context.Context, req models.AIRecommendationRequest) <-chan result.Result[models.AIRecommendation] {
	return run(ctx, func(ctx context.Context) result.Result[models.AIRecommendation] {
		reply, err := r.backend.Post(ctx, "/api/ai/recommend", r.bearer(ctx), req)
		return classify[models.AIRecommendation](reply, err, "Could not get recommendations")
	})
}

// CanRequest checks the user's remaining AI quota.
func (r *AIRepository) CanRequest(ctx context.Context) <-chan result.Result[models.AILimit] {
	return run(ctx, func(ctx context.Context) result.Result[models.AILimit] {
		reply, err := r.backend.Get(ctx, "/api/ai/can-request", r.bearer(ctx))
		return classify[models.AILimit](reply, err, "Could not check AI limit")
	})
}
