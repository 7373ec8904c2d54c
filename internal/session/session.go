package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/GustavoLarcoDev/gimnasio/internal/models"
)

const (
	// CookieName es la cookie de sesión persistente del dueño del gimnasio.
	CookieName = "gym_session"

	// TTL de la sesión; el jti revocado vive en el store este mismo tiempo.
	TTL = 24 * time.Hour
)

var (
	ErrInvalidToken = errors.New("invalid_session_token")
	ErrRevoked      = errors.New("session_revoked")
)

// Claims son los datos de identidad embebidos en la cookie firmada.
type Claims struct {
	GimnasioID uuid.UUID
	Nombre     string
	Email      string
	TokenID    string
	ExpiresAt  time.Time
}

// RevocationStore marca tokens cerrados por logout hasta que expiren solos.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Manager struct {
	secret []byte
	store  RevocationStore
}

func NewManager(secret string, store RevocationStore) *Manager {
	return &Manager{
		secret: []byte(secret),
		store:  store,
	}
}

// Issue firma un token de sesión con la identidad del gimnasio.
func (m *Manager) Issue(g *models.Gimnasio) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":    g.GimnasioID.String(),
		"nombre": g.Nombre,
		"email":  g.Email,
		"jti":    uuid.NewString(),
		"exp":    now.Add(TTL).Unix(),
		"iat":    now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse valida firma, expiración y revocación, y devuelve los claims.
func (m *Manager) Parse(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := mapClaims["sub"].(string)
	gimnasioID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidToken
	}

	nombre, _ := mapClaims["nombre"].(string)
	email, _ := mapClaims["email"].(string)
	jti, _ := mapClaims["jti"].(string)
	exp, _ := mapClaims["exp"].(float64)

	if jti != "" {
		revoked, err := m.store.IsRevoked(ctx, jti)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, ErrRevoked
		}
	}

	return &Claims{
		GimnasioID: gimnasioID,
		Nombre:     nombre,
		Email:      email,
		TokenID:    jti,
		ExpiresAt:  time.Unix(int64(exp), 0),
	}, nil
}

// Revoke invalida la sesión actual por lo que le queda de vida.
func (m *Manager) Revoke(ctx context.Context, claims *Claims) error {
	if claims.TokenID == "" {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return m.store.Revoke(ctx, claims.TokenID, ttl)
}
