package state

import (
	"context"

	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/repository"
)

const defaultMaxRecommendations = 5

// AIHolder owns the AI recommendations screen.
type AIHolder struct {
	scope
	repo *repository.AIRepository

	Recommendations *Slot[models.AIRecommendation]
	Limit           *Slot[models.AILimit]
}

func NewAIHolder(parent context.Context, repo *repository.AIRepository) *AIHolder {
	return &AIHolder{
		scope:           newScope(parent),
		repo:            repo,
		Recommendations: NewSlot[models.AIRecommendation](),
		Limit:           NewSlot[models.AILimit](),
	}
}

// Recommend asks for recommendations from a free-text prompt.
func (h *AIHolder) Recommend(prompt string, includeUserHistory bool) {
	req := models.AIRecommendationRequest{
		Prompt:             prompt,
		IncludeUserHistory: includeUserHistory,
		MaxRecommendations: defaultMaxRecommendations,
	}
	bind(h.Recommendations, h.repo.Recommend(h.ctx, req), nil)
}

// CheckLimit refreshes the remaining-quota slot.
func (h *AIHolder) CheckLimit() {
	bind(h.Limit, h.repo.CanRequest(h.ctx), nil)
}

func (h *AIHolder) ResetRecommendations() { h.Recommendations.Reset() }
