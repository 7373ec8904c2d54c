package gimnasio_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/GustavoLarcoDev/gimnasio/internal/audit"
	domain "github.com/GustavoLarcoDev/gimnasio/internal/domain/gimnasio"
	"github.com/GustavoLarcoDev/gimnasio/internal/httperr"
	"github.com/GustavoLarcoDev/gimnasio/internal/models"
	ucgimnasio "github.com/GustavoLarcoDev/gimnasio/internal/usecase/gimnasio"
)

func TestCreateGimnasio(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	uc := ucgimnasio.NewCreate(repo, newTestDispatcher())

	in := ucgimnasio.CreateInput{
		Nombre:   "PowerGym",
		Dueno:    "Ana",
		Telefono: "555-1234",
		Email:    "a@pg.com",
		Password: "x",
		IsActive: true,
		EsPrueba: false,
	}

	g, err := uc.Execute(ctx, in)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, g.GimnasioID)
	require.True(t, g.IsActive)
	require.False(t, g.EsPrueba)
	require.WithinDuration(t, time.Now(), g.FechaCreacion, 2*time.Second)
	require.Equal(t, g.FechaCreacion, g.FechaActualizacion)

	// nunca se guarda el password en claro
	require.NotEqual(t, "x", g.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(g.PasswordHash), []byte("x")))

	// segundo intento con el mismo email
	_, err = uc.Execute(ctx, in)
	be, ok := httperr.IsBusiness(err)
	require.True(t, ok)
	require.Equal(t, "Gimnasio con este email ya existe", be.Message)
}

func TestCreateGimnasioEstadoExclusivo(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	uc := ucgimnasio.NewCreate(repo, newTestDispatcher())

	cases := []struct {
		name     string
		isActive bool
		esPrueba bool
		message  string
	}{
		{"ambos true", true, true, "Un gimnasio no puede ser de pago y de prueba al mismo tiempo"},
		{"ambos false", false, false, "Debe seleccionar si el gimnasio es de pago o de prueba"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, ucgimnasio.CreateInput{
				Nombre:   "Gym",
				Dueno:    "Ana",
				Telefono: "555",
				Email:    "g@g.com",
				Password: "x",
				IsActive: tc.isActive,
				EsPrueba: tc.esPrueba,
			})
			be, ok := httperr.IsBusiness(err)
			require.True(t, ok)
			require.Equal(t, tc.message, be.Message)
		})
	}

	// se rechaza antes de cualquier escritura
	require.Empty(t, repo.gyms)
}

func TestCreateGimnasioCamposObligatorios(t *testing.T) {
	ctx := context.Background()
	uc := ucgimnasio.NewCreate(newFakeRepo(), newTestDispatcher())

	base := ucgimnasio.CreateInput{
		Nombre:   "PowerGym",
		Dueno:    "Ana",
		Telefono: "555-1234",
		Email:    "a@pg.com",
		Password: "x",
		IsActive: true,
	}

	cases := []struct {
		name    string
		mutate  func(*ucgimnasio.CreateInput)
		message string
	}{
		{"sin email", func(in *ucgimnasio.CreateInput) { in.Email = "" }, "Correo del Gimnasio es necesario"},
		{"email inválido", func(in *ucgimnasio.CreateInput) { in.Email = "no-es-email" }, "Correo del Gimnasio no es válido"},
		{"sin nombre", func(in *ucgimnasio.CreateInput) { in.Nombre = "  " }, "Nombre del Gimnasio es necesario"},
		{"sin dueño", func(in *ucgimnasio.CreateInput) { in.Dueno = "" }, "Dueño Gimnasio es necesario"},
		{"sin teléfono", func(in *ucgimnasio.CreateInput) { in.Telefono = "" }, "Teléfono es necesario"},
		{"sin password", func(in *ucgimnasio.CreateInput) { in.Password = "" }, "Password es necesario"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			_, err := uc.Execute(ctx, in)
			be, ok := httperr.IsBusiness(err)
			require.True(t, ok)
			require.Equal(t, tc.message, be.Message)
		})
	}
}

func TestCreateGimnasioCarreraDeEmail(t *testing.T) {
	// El índice único gana aunque el pre-chequeo haya pasado
	repo := newFakeRepo()
	repo.createErr = domain.ErrEmailTaken
	uc := ucgimnasio.NewCreate(repo, newTestDispatcher())

	_, err := uc.Execute(context.Background(), ucgimnasio.CreateInput{
		Nombre:   "Gym",
		Dueno:    "Ana",
		Telefono: "555",
		Email:    "dup@g.com",
		Password: "x",
		EsPrueba: true,
	})
	be, ok := httperr.IsBusiness(err)
	require.True(t, ok)
	require.Equal(t, "Gimnasio con este email ya existe", be.Message)
}

func TestEditGimnasio(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	g := seedGym(t, repo, "a@pg.com", true)
	otro := seedGym(t, repo, "b@pg.com", true)

	uc := ucgimnasio.NewEdit(repo, newTestDispatcher())

	t.Run("conservar el propio email es válido", func(t *testing.T) {
		updated, err := uc.Execute(ctx, ucgimnasio.EditInput{
			GimnasioID: g.GimnasioID,
			Nombre:     "PowerGym Renovado",
			Dueno:      g.Dueno,
			Telefono:   g.Telefono,
			Email:      g.Email,
			IsActive:   true,
		})
		require.NoError(t, err)
		require.Equal(t, "PowerGym Renovado", updated.Nombre)
		require.True(t, updated.FechaActualizacion.After(updated.FechaCreacion))
	})

	t.Run("email de otro gimnasio se rechaza", func(t *testing.T) {
		_, err := uc.Execute(ctx, ucgimnasio.EditInput{
			GimnasioID: g.GimnasioID,
			Nombre:     g.Nombre,
			Dueno:      g.Dueno,
			Telefono:   g.Telefono,
			Email:      otro.Email,
			IsActive:   true,
		})
		be, ok := httperr.IsBusiness(err)
		require.True(t, ok)
		require.Equal(t, "Ya existe otro gimnasio con ese email", be.Message)
	})

	t.Run("password vacío no toca el hash", func(t *testing.T) {
		before := repo.gyms[g.GimnasioID].PasswordHash
		_, err := uc.Execute(ctx, ucgimnasio.EditInput{
			GimnasioID: g.GimnasioID,
			Nombre:     g.Nombre,
			Dueno:      g.Dueno,
			Telefono:   g.Telefono,
			Email:      g.Email,
			Password:   "",
			IsActive:   true,
		})
		require.NoError(t, err)
		require.Equal(t, before, repo.gyms[g.GimnasioID].PasswordHash)
	})

	t.Run("password nuevo reemplaza el hash", func(t *testing.T) {
		before := repo.gyms[g.GimnasioID].PasswordHash
		_, err := uc.Execute(ctx, ucgimnasio.EditInput{
			GimnasioID: g.GimnasioID,
			Nombre:     g.Nombre,
			Dueno:      g.Dueno,
			Telefono:   g.Telefono,
			Email:      g.Email,
			Password:   "nuevo-secreto",
			IsActive:   true,
		})
		require.NoError(t, err)
		after := repo.gyms[g.GimnasioID].PasswordHash
		require.NotEqual(t, before, after)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(after), []byte("nuevo-secreto")))
	})

	t.Run("id desconocido", func(t *testing.T) {
		_, err := uc.Execute(ctx, ucgimnasio.EditInput{
			GimnasioID: uuid.New(),
			Email:      "x@y.com",
			IsActive:   true,
		})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDeleteGimnasio(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	conClientes := seedGym(t, repo, "a@pg.com", true)
	sinClientes := seedGym(t, repo, "b@pg.com", true)
	repo.clienteCount[conClientes.GimnasioID] = 3

	uc := ucgimnasio.NewDelete(repo, newTestDispatcher())

	t.Run("con clientes se rechaza con el total", func(t *testing.T) {
		err := uc.Execute(ctx, conClientes.GimnasioID)
		var conflict domain.ClientesExistError
		require.ErrorAs(t, err, &conflict)
		require.Equal(t, int64(3), conflict.Total)
		require.Contains(t, conflict.Error(), "3 cliente(s)")
		require.Contains(t, repo.gyms, conClientes.GimnasioID)
	})

	t.Run("sin clientes se elimina", func(t *testing.T) {
		require.NoError(t, uc.Execute(ctx, sinClientes.GimnasioID))
		require.NotContains(t, repo.gyms, sinClientes.GimnasioID)
	})

	t.Run("id desconocido", func(t *testing.T) {
		require.ErrorIs(t, uc.Execute(ctx, uuid.New()), domain.ErrNotFound)
	})
}

func TestToggleStatus(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	g := seedGym(t, repo, "a@pg.com", true)

	uc := ucgimnasio.NewToggleStatus(repo, newTestDispatcher())

	toggled, label, err := uc.Execute(ctx, g.GimnasioID)
	require.NoError(t, err)
	require.False(t, toggled.IsActive)
	require.True(t, toggled.EsPrueba)
	require.Equal(t, "Prueba", label)

	// auto-inversa: dos aplicaciones vuelven al estado original
	back, label, err := uc.Execute(ctx, g.GimnasioID)
	require.NoError(t, err)
	require.True(t, back.IsActive)
	require.False(t, back.EsPrueba)
	require.Equal(t, "Pago (Activo)", label)

	_, _, err = uc.Execute(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// --------------------------------------------------
// Fakes
// --------------------------------------------------

type fakeRepo struct {
	domain.Repository

	gyms         map[uuid.UUID]*models.Gimnasio
	clienteCount map[uuid.UUID]int64
	createErr    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		gyms:         make(map[uuid.UUID]*models.Gimnasio),
		clienteCount: make(map[uuid.UUID]int64),
	}
}

func (f *fakeRepo) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	for id, g := range f.gyms {
		if g.Email == email && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Create(ctx context.Context, g *models.Gimnasio) error {
	if f.createErr != nil {
		return f.createErr
	}
	copia := *g
	f.gyms[g.GimnasioID] = &copia
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Gimnasio, error) {
	g, ok := f.gyms[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copia := *g
	return &copia, nil
}

func (f *fakeRepo) Update(ctx context.Context, g *models.Gimnasio) error {
	copia := *g
	f.gyms[g.GimnasioID] = &copia
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.gyms[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.gyms, id)
	return nil
}

func (f *fakeRepo) CountClientes(ctx context.Context, id uuid.UUID) (int64, error) {
	return f.clienteCount[id], nil
}

type noopSink struct{}

func (noopSink) Log(gimnasioID uuid.UUID, action, entity, entityID string, metadata any) error {
	return nil
}

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(noopSink{}, zap.NewNop())
}

func seedGym(t *testing.T, repo *fakeRepo, email string, active bool) *models.Gimnasio {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secreto"), bcrypt.DefaultCost)
	require.NoError(t, err)

	now := time.Now().Add(-time.Hour)
	g := &models.Gimnasio{
		GimnasioID:         uuid.New(),
		Nombre:             "PowerGym",
		Dueno:              "Ana",
		Telefono:           "555-1234",
		Email:              email,
		PasswordHash:       string(hash),
		IsActive:           active,
		EsPrueba:           !active,
		FechaCreacion:      now,
		FechaActualizacion: now,
	}
	require.NoError(t, repo.Create(context.Background(), g))
	return g
}
