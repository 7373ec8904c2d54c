package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/GustavoLarcoDev/gimnasio/internal/httperr"
	"github.com/GustavoLarcoDev/gimnasio/internal/session"
)

const (
	ContextGimnasioID     = "gimnasioID"
	ContextGimnasioNombre = "gimnasioNombre"
	ContextGimnasioEmail  = "gimnasioEmail"
	ContextSessionClaims  = "sessionClaims"
)

// AuthMiddleware valida la cookie de sesión y deja la identidad en el contexto.
func AuthMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil || cookie == "" {
			httperr.Forbidden(c, "Debe iniciar sesión")
			c.Abort()
			return
		}

		claims, err := sessions.Parse(c.Request.Context(), cookie)
		if err != nil {
			httperr.Forbidden(c, "Sesión inválida o expirada")
			c.Abort()
			return
		}

		c.Set(ContextGimnasioID, claims.GimnasioID)
		c.Set(ContextGimnasioNombre, claims.Nombre)
		c.Set(ContextGimnasioEmail, claims.Email)
		c.Set(ContextSessionClaims, claims)

		c.Next()
	}
}
