package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/GustavoLarcoDev/gimnasio/internal/audit"
	domain "github.com/GustavoLarcoDev/gimnasio/internal/domain/gimnasio"
	"github.com/GustavoLarcoDev/gimnasio/internal/httperr"
	"github.com/GustavoLarcoDev/gimnasio/internal/models"
	"github.com/GustavoLarcoDev/gimnasio/internal/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrAccountInactive    = errors.New("account_inactive")
)

type LoginInput struct {
	Email    string
	Password string
}

type Login struct {
	repo     domain.Repository
	sessions *session.Manager
	audit    *audit.Dispatcher
}

func NewLogin(
	repo domain.Repository,
	sessions *session.Manager,
	audit *audit.Dispatcher,
) *Login {
	return &Login{repo: repo, sessions: sessions, audit: audit}
}

// Execute autentica al dueño del gimnasio y emite el token de sesión.
// La comparación es contra el hash bcrypt, nunca texto plano.
func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*models.Gimnasio, string, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, "", httperr.ErrBusiness("Email y contraseña son obligatorios")
	}

	g, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(g.PasswordHash),
		[]byte(in.Password),
	); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !g.IsActive && !g.EsPrueba {
		return nil, "", ErrAccountInactive
	}

	token, err := uc.sessions.Issue(g)
	if err != nil {
		return nil, "", err
	}

	uc.audit.Dispatch(audit.Event{
		GimnasioID: g.GimnasioID,
		Action:     "login",
		Entity:     "gimnasio",
		EntityID:   g.GimnasioID.String(),
	})

	return g, token, nil
}
