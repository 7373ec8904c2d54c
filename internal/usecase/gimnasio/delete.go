package gimnasio

import (
	"context"

	"github.com/google/uuid"

	"github.com/GustavoLarcoDev/gimnasio/internal/audit"
	domain "github.com/GustavoLarcoDev/gimnasio/internal/domain/gimnasio"
)

type Delete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDelete(repo domain.Repository, audit *audit.Dispatcher) *Delete {
	return &Delete{repo: repo, audit: audit}
}

// Execute elimina el gimnasio solo si no tiene clientes registrados.
func (uc *Delete) Execute(ctx context.Context, id uuid.UUID) error {

	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	total, err := uc.repo.CountClientes(ctx, id)
	if err != nil {
		return err
	}
	if total > 0 {
		return domain.ClientesExistError{Total: total}
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		GimnasioID: g.GimnasioID,
		Action:     "gimnasio_deleted",
		Entity:     "gimnasio",
		EntityID:   g.GimnasioID.String(),
	})

	return nil
}
