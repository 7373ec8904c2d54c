package cliente

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

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
	// Tenant declarado en el formulario y tenant de la sesión; deben coincidir
	GimnasioID          uuid.UUID
	RequestorGimnasioID uuid.UUID

	Nombre          string
	Apellido        string
	FechaNacimiento time.Time
	Email           string
	Telefono        string
	Direccion       string

	Dias            int
	FechaQueTermina time.Time
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

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Cliente, error) {

	// --------------------------------------------------
	// 1. Autorización por tenant
	// --------------------------------------------------
	if in.RequestorGimnasioID == uuid.Nil || in.GimnasioID != in.RequestorGimnasioID {
		return nil, domain.ErrForbidden
	}

	// --------------------------------------------------
	// 2. Campos obligatorios
	// --------------------------------------------------
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, httperr.ErrBusiness("El campo Nombre es obligatorio")
	}
	if strings.TrimSpace(in.Apellido) == "" {
		return nil, httperr.ErrBusiness("El campo Apellido es obligatorio")
	}
	if in.FechaNacimiento.IsZero() {
		return nil, httperr.ErrBusiness("La Fecha de nacimiento es obligatoria")
	}
	if strings.TrimSpace(in.Telefono) == "" {
		return nil, httperr.ErrBusiness("El Teléfono es obligatorio")
	}
	if !validators.IsPhoneFormatValid(in.Telefono) {
		return nil, httperr.ErrBusiness("El Teléfono no tiene un formato válido")
	}

	// --------------------------------------------------
	// 3. Fecha de término de la membresía
	// --------------------------------------------------
	now := time.Now()
	fechaQueTermina := in.FechaQueTermina

	if fechaQueTermina.IsZero() {
		if in.Dias <= 0 {
			return nil, httperr.ErrBusiness("Los días de membresía deben ser mayores a cero")
		}
		// Aritmética de calendario, no Dias*24h: cruza cambios de hora
		// manteniendo la fecha.
		fechaQueTermina = now.AddDate(0, 0, in.Dias)
	}

	// --------------------------------------------------
	// 4. Persistencia
	// --------------------------------------------------
	cl := &models.Cliente{
		GimnasioID:         in.GimnasioID,
		Nombre:             in.Nombre,
		Apellido:           in.Apellido,
		FechaNacimiento:    in.FechaNacimiento,
		Email:              in.Email,
		Telefono:           in.Telefono,
		Direccion:          in.Direccion,
		Dias:               in.Dias,
		FechaQueTermina:    fechaQueTermina,
		FechaCreacion:      now,
		FechaActualizacion: now,
	}

	if err := uc.repo.CreateCliente(ctx, cl); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		GimnasioID: in.GimnasioID,
		Action:     "cliente_created",
		Entity:     "cliente",
	})

	return cl, nil
}
