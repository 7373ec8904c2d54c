package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/GustavoLarcoDev/gimnasio/internal/domain/gimnasio"
	"github.com/GustavoLarcoDev/gimnasio/internal/models"
)

type GimnasioGormRepository struct {
	db *gorm.DB
}

func NewGimnasioGormRepository(db *gorm.DB) *GimnasioGormRepository {
	return &GimnasioGormRepository{db: db}
}

// --------------------------------------------------
// Gimnasio
// --------------------------------------------------

func (r *GimnasioGormRepository) ListSummaries(
	ctx context.Context,
) ([]domain.Summary, error) {

	var rows []domain.Summary
	err := r.db.WithContext(ctx).
		Model(&models.Gimnasio{}).
		Select(`gimnasios.gimnasio_id,
			gimnasios.nombre,
			gimnasios.dueno,
			gimnasios.telefono,
			gimnasios.email,
			gimnasios.is_active,
			gimnasios.es_prueba,
			gimnasios.fecha_creacion,
			COUNT(clientes.id) AS total_clientes`).
		Joins("LEFT JOIN clientes ON clientes.gimnasio_id = gimnasios.gimnasio_id").
		Group("gimnasios.gimnasio_id").
		Order("gimnasios.fecha_creacion DESC").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GimnasioGormRepository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*models.Gimnasio, error) {

	var g models.Gimnasio
	if err := r.db.WithContext(ctx).
		Where("gimnasio_id = ?", id).
		First(&g).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *GimnasioGormRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*models.Gimnasio, error) {

	var g models.Gimnasio
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&g).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *GimnasioGormRepository) EmailTaken(
	ctx context.Context,
	email string,
	excludeID uuid.UUID,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Gimnasio{}).
		Where("email = ?", email)

	if excludeID != uuid.Nil {
		q = q.Where("gimnasio_id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GimnasioGormRepository) Create(
	ctx context.Context,
	g *models.Gimnasio,
) error {
	return translateUnique(r.db.WithContext(ctx).Create(g).Error)
}

func (r *GimnasioGormRepository) Update(
	ctx context.Context,
	g *models.Gimnasio,
) error {
	return translateUnique(r.db.WithContext(ctx).Save(g).Error)
}

func (r *GimnasioGormRepository) Delete(
	ctx context.Context,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Where("gimnasio_id = ?", id).
		Delete(&models.Gimnasio{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Clientes
// --------------------------------------------------

func (r *GimnasioGormRepository) CountClientes(
	ctx context.Context,
	id uuid.UUID,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Cliente{}).
		Where("gimnasio_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GimnasioGormRepository) CreateCliente(
	ctx context.Context,
	cl *models.Cliente,
) error {
	return r.db.WithContext(ctx).Create(cl).Error
}

func (r *GimnasioGormRepository) GetWithClientes(
	ctx context.Context,
	id uuid.UUID,
) (*models.Gimnasio, error) {

	var g models.Gimnasio
	if err := r.db.WithContext(ctx).
		Preload("Clientes").
		Where("gimnasio_id = ?", id).
		First(&g).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *GimnasioGormRepository) ListWithClientes(
	ctx context.Context,
) ([]models.Gimnasio, error) {

	var gyms []models.Gimnasio
	if err := r.db.WithContext(ctx).
		Preload("Clientes").
		Order("fecha_creacion DESC").
		Find(&gyms).Error; err != nil {
		return nil, err
	}
	return gyms, nil
}

// translateUnique mapea la violación del índice único de email al error de
// dominio. El chequeo previo en el use case da el mensaje amable; esto cierra
// la ventana entre chequeo e insert.
func translateUnique(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrEmailTaken
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmailTaken
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*GimnasioGormRepository)(nil)
