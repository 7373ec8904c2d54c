package gimnasio

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/GustavoLarcoDev/gimnasio/internal/audit"
	domain "github.com/GustavoLarcoDev/gimnasio/internal/domain/gimnasio"
	"github.com/GustavoLarcoDev/gimnasio/internal/httperr"
	"github.com/GustavoLarcoDev/gimnasio/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type EditInput struct {
	GimnasioID uuid.UUID
	Nombre     string
	Dueno      string
	Telefono   string
	Email      string
	// Vacío deja el password almacenado intacto
	Password string
	IsActive bool
	EsPrueba bool
}

// ======================================================
// USE CASE
// ======================================================

type Edit struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewEdit(repo domain.Repository, audit *audit.Dispatcher) *Edit {
	return &Edit{repo: repo, audit: audit}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Edit) Execute(ctx context.Context, in EditInput) (*models.Gimnasio, error) {

	if in.IsActive && in.EsPrueba {
		return nil, httperr.ErrBusiness("Un gimnasio no puede ser de pago y de prueba al mismo tiempo")
	}
	if !in.IsActive && !in.EsPrueba {
		return nil, httperr.ErrBusiness("Debe seleccionar si el gimnasio es de pago o de prueba")
	}

	g, err := uc.repo.GetByID(ctx, in.GimnasioID)
	if err != nil {
		return nil, err
	}

	// Unicidad de email excluyendo al propio registro: conservar el email
	// actual siempre es válido.
	email := strings.ToLower(strings.TrimSpace(in.Email))
	taken, err := uc.repo.EmailTaken(ctx, email, in.GimnasioID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("Ya existe otro gimnasio con ese email")
	}

	g.Nombre = in.Nombre
	g.Dueno = in.Dueno
	g.Telefono = in.Telefono
	g.Email = email
	g.IsActive = in.IsActive
	g.EsPrueba = in.EsPrueba
	g.FechaActualizacion = time.Now()

	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		g.PasswordHash = string(hashed)
	}

	if err := uc.repo.Update(ctx, g); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, httperr.ErrBusiness("Ya existe otro gimnasio con ese email")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		GimnasioID: g.GimnasioID,
		Action:     "gimnasio_updated",
		Entity:     "gimnasio",
		EntityID:   g.GimnasioID.String(),
	})

	return g, nil
}
