package auth_test

import (
	"context"
	"sync"
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
	"github.com/GustavoLarcoDev/gimnasio/internal/session"
	ucauth "github.com/GustavoLarcoDev/gimnasio/internal/usecase/auth"
)

func newLoginUC(t *testing.T, gyms ...*models.Gimnasio) (*ucauth.Login, *session.Manager) {
	t.Helper()

	repo := &fakeAuthRepo{gyms: make(map[string]*models.Gimnasio)}
	for _, g := range gyms {
		repo.gyms[g.Email] = g
	}

	sessions := session.NewManager("secreto-de-prueba", newMemoryStore())
	dispatcher := audit.NewDispatcher(noopSink{}, zap.NewNop())
	return ucauth.NewLogin(repo, sessions, dispatcher), sessions
}

func gymWithPassword(t *testing.T, email, password string, active, prueba bool) *models.Gimnasio {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	return &models.Gimnasio{
		GimnasioID:   uuid.New(),
		Nombre:       "PowerGym",
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     active,
		EsPrueba:     prueba,
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	g := gymWithPassword(t, "a@pg.com", "secreto", true, false)
	uc, sessions := newLoginUC(t, g)

	logged, token, err := uc.Execute(ctx, ucauth.LoginInput{
		Email:    "a@pg.com",
		Password: "secreto",
	})
	require.NoError(t, err)
	require.Equal(t, g.GimnasioID, logged.GimnasioID)

	claims, err := sessions.Parse(ctx, token)
	require.NoError(t, err)
	require.Equal(t, g.GimnasioID, claims.GimnasioID)
	require.Equal(t, g.Email, claims.Email)
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	ctx := context.Background()
	g := gymWithPassword(t, "a@pg.com", "secreto", true, false)
	uc, _ := newLoginUC(t, g)

	_, _, err := uc.Execute(ctx, ucauth.LoginInput{Email: "a@pg.com", Password: "mala"})
	require.ErrorIs(t, err, ucauth.ErrInvalidCredentials)

	_, _, err = uc.Execute(ctx, ucauth.LoginInput{Email: "nadie@pg.com", Password: "secreto"})
	require.ErrorIs(t, err, ucauth.ErrInvalidCredentials)
}

func TestLoginCuentaInactiva(t *testing.T) {
	g := gymWithPassword(t, "a@pg.com", "secreto", false, false)
	uc, _ := newLoginUC(t, g)

	_, _, err := uc.Execute(context.Background(), ucauth.LoginInput{
		Email:    "a@pg.com",
		Password: "secreto",
	})
	require.ErrorIs(t, err, ucauth.ErrAccountInactive)
}

func TestLoginCamposVacios(t *testing.T) {
	uc, _ := newLoginUC(t)

	_, _, err := uc.Execute(context.Background(), ucauth.LoginInput{})
	be, ok := httperr.IsBusiness(err)
	require.True(t, ok)
	require.Equal(t, "Email y contraseña son obligatorios", be.Message)
}

// --------------------------------------------------
// Fakes
// --------------------------------------------------

type fakeAuthRepo struct {
	domain.Repository

	gyms map[string]*models.Gimnasio
}

func (f *fakeAuthRepo) GetByEmail(ctx context.Context, email string) (*models.Gimnasio, error) {
	g, ok := f.gyms[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return g, nil
}

type noopSink struct{}

func (noopSink) Log(gimnasioID uuid.UUID, action, entity, entityID string, metadata any) error {
	return nil
}

type memoryStore struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{revoked: make(map[string]bool)}
}

func (s *memoryStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[tokenID] = true
	return nil
}

func (s *memoryStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revoked[tokenID], nil
}
