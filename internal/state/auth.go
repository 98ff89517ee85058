package state

import (
	"context"

	"github.com/patrickmoura/gomovie/internal/models"
	"github.com/patrickmoura/gomovie/internal/repository"
)

// AuthHolder owns the login/registration state.
type AuthHolder struct {
	scope
	repo *repository.AuthRepository

	LoginResult    *Slot[models.AuthResponse]
	RegisterResult *Slot[models.AuthResponse]
}

func NewAuthHolder(parent context.Context, repo *repository.AuthRepository) *AuthHolder {
	return &AuthHolder{
		scope:          newScope(parent),
		repo:           repo,
		LoginResult:    NewSlot[models.AuthResponse](),
		RegisterResult: NewSlot[models.AuthResponse](),
	}
}

func (h *AuthHolder) Login(email, password string) {
	bind(h.LoginResult, h.repo.Login(h.ctx, email, password), nil)
}

func (h *AuthHolder) Register(email, password string, fullName *string) {
	bind(h.RegisterResult, h.repo.Register(h.ctx, email, password, fullName), nil)
}

func (h *AuthHolder) Logout() error {
	return h.repo.Logout(h.ctx)
}

// LoggedIn exposes the credential store's derived login observable.
func (h *AuthHolder) LoggedIn() <-chan bool {
	return h.repo.LoggedIn(h.ctx)
}

func (h *AuthHolder) ResetLoginResult()    { h.LoginResult.Reset() }
func (h *AuthHolder) ResetRegisterResult() { h.RegisterResult.Reset() }
