package gimnasio

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GustavoLarcoDev/gimnasio/internal/models"
)

// Summary es la fila del listado: gimnasio + total de clientes.
type Summary struct {
	GimnasioID    uuid.UUID `json:"gimnasioId"`
	Nombre        string    `json:"gimnasioNombre"`
	Dueno         string    `json:"duenoGimnasio"`
	Telefono      string    `json:"telefono"`
	Email         string    `json:"email"`
	IsActive      bool      `json:"isActive"`
	EsPrueba      bool      `json:"esPrueba"`
	FechaCreacion time.Time `json:"fechaCreacion"`
	TotalClientes int64     `json:"totalClientes"`
}

type Repository interface {
	// -------- Gimnasio --------
	ListSummaries(ctx context.Context) ([]Summary, error)

	GetByID(ctx context.Context, id uuid.UUID) (*models.Gimnasio, error)

	GetByEmail(ctx context.Context, email string) (*models.Gimnasio, error)

	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)

	Create(ctx context.Context, g *models.Gimnasio) error

	Update(ctx context.Context, g *models.Gimnasio) error

	Delete(ctx context.Context, id uuid.UUID) error

	// -------- Clientes --------
	CountClientes(ctx context.Context, id uuid.UUID) (int64, error)

	CreateCliente(ctx context.Context, cl *models.Cliente) error

	GetWithClientes(ctx context.Context, id uuid.UUID) (*models.Gimnasio, error)

	ListWithClientes(ctx context.Context) ([]models.Gimnasio, error)
}
