package gimnasio

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GustavoLarcoDev/gimnasio/internal/audit"
	domain "github.com/GustavoLarcoDev/gimnasio/internal/domain/gimnasio"
	"github.com/GustavoLarcoDev/gimnasio/internal/models"
)

type ToggleStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewToggleStatus(repo domain.Repository, audit *audit.Dispatcher) *ToggleStatus {
	return &ToggleStatus{repo: repo, audit: audit}
}

// Execute alterna entre Pago (Activo) y Prueba. Dos estados, una transición,
// auto-inversa: aplicarla dos veces vuelve al estado original.
func (uc *ToggleStatus) Execute(
	ctx context.Context,
	id uuid.UUID,
) (*models.Gimnasio, string, error) {

	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if g.IsActive {
		g.IsActive = false
		g.EsPrueba = true
	} else {
		g.IsActive = true
		g.EsPrueba = false
	}

	g.FechaActualizacion = time.Now()

	if err := uc.repo.Update(ctx, g); err != nil {
		return nil, "", err
	}

	label := "Prueba"
	if g.IsActive {
		label = "Pago (Activo)"
	}

	uc.audit.Dispatch(audit.Event{
		GimnasioID: g.GimnasioID,
		Action:     "gimnasio_status_toggled",
		Entity:     "gimnasio",
		EntityID:   g.GimnasioID.String(),
		Metadata: map[string]any{
			"isActive": g.IsActive,
			"esPrueba": g.EsPrueba,
		},
	})

	return g, label, nil
}
