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
	"github.com/GustavoLarcoDev/gimnasio/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	Nombre   string
	Dueno    string
	Telefono string
	Email    string
	Password string
	IsActive bool
	EsPrueba bool
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreate(repo domain.Repository, audit *audit.Dispatcher) *Create {
	return &Create{repo: repo, audit: audit}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Gimnasio, error) {

	// --------------------------------------------------
	// 1. Pago XOR Prueba
	// --------------------------------------------------
	if in.IsActive && in.EsPrueba {
		return nil, httperr.ErrBusiness("Un gimnasio no puede ser de pago y de prueba al mismo tiempo")
	}
	if !in.IsActive && !in.EsPrueba {
		return nil, httperr.ErrBusiness("Debe seleccionar si el gimnasio es de pago o de prueba")
	}

	// --------------------------------------------------
	// 2. Email presente, válido y único
	// --------------------------------------------------
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, httperr.ErrBusiness("Correo del Gimnasio es necesario")
	}
	if !validators.IsEmailFormatValid(email) {
		return nil, httperr.ErrBusiness("Correo del Gimnasio no es válido")
	}

	taken, err := uc.repo.EmailTaken(ctx, email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("Gimnasio con este email ya existe")
	}

	// --------------------------------------------------
	// 3. Campos obligatorios
	// --------------------------------------------------
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, httperr.ErrBusiness("Nombre del Gimnasio es necesario")
	}
	if strings.TrimSpace(in.Dueno) == "" {
		return nil, httperr.ErrBusiness("Dueño Gimnasio es necesario")
	}
	if strings.TrimSpace(in.Telefono) == "" {
		return nil, httperr.ErrBusiness("Teléfono es necesario")
	}
	if strings.TrimSpace(in.Password) == "" {
		return nil, httperr.ErrBusiness("Password es necesario")
	}

	// --------------------------------------------------
	// 4. Persistencia
	// --------------------------------------------------
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	g := &models.Gimnasio{
		GimnasioID:         uuid.New(),
		Nombre:             in.Nombre,
		Dueno:              in.Dueno,
		Telefono:           in.Telefono,
		Email:              email,
		PasswordHash:       string(hashed),
		IsActive:           in.IsActive,
		EsPrueba:           in.EsPrueba,
		FechaCreacion:      now,
		FechaActualizacion: now,
	}

	if err := uc.repo.Create(ctx, g); err != nil {
		// el índice único cierra la carrera entre chequeo e insert
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, httperr.ErrBusiness("Gimnasio con este email ya existe")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		GimnasioID: g.GimnasioID,
		Action:     "gimnasio_created",
		Entity:     "gimnasio",
		EntityID:   g.GimnasioID.String(),
	})

	return g, nil
}
