package state

import (
	"context"

	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/repository"
	"github.com/patrickmoura/gomovie/internal/result"
)

// ProfileHolder owns the profile screen.
type ProfileHolder struct {
	scope
	repo *repository.UserRepository

	User           *Slot[models.User]
	Stats          *Slot[models.UserStats]
	UpdateResult   *Slot[models.User]
	PasswordResult *Slot[repository.Unit]
}

func NewProfileHolder(parent context.Context, repo *repository.UserRepository) *ProfileHolder {
	return &ProfileHolder{
		scope:          newScope(parent),
		repo:           repo,
		User:           NewSlot[models.User](),
		Stats:          NewSlot[models.UserStats](),
		UpdateResult:   NewSlot[models.User](),
		PasswordResult: NewSlot[repository.Unit](),
	}
}

// Load fetches the profile and the aggregate stats.
func (h *ProfileHolder) Load() {
	bind(h.User, h.repo.CurrentUser(h.ctx), nil)
	bind(h.Stats, h.repo.UserStats(h.ctx), nil)
}

// UpdateProfile changes the display name and reloads the profile on success.
func (h *ProfileHolder) UpdateProfile(fullName *string) {
	bind(h.UpdateResult, h.repo.UpdateProfile(h.ctx, fullName), func(r result.Result[models.User]) {
		if r.IsSuccess() {
			bind(h.User, h.repo.CurrentUser(h.ctx), nil)
		}
	})
}

// ChangePassword swaps the account password.
func (h *ProfileHolder) ChangePassword(current, updated string) {
	bind(h.PasswordResult, h.repo.ChangePassword(h.ctx, current, updated), nil)
}

func (h *ProfileHolder) ResetUpdateResult()   { h.UpdateResult.Reset() }
func (h *ProfileHolder) ResetPasswordResult() { h.PasswordResult.Reset() }
