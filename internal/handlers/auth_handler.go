package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GustavoLarcoDev/gimnasio/internal/config"
	"github.com/GustavoLarcoDev/gimnasio/internal/httperr"
	"github.com/GustavoLarcoDev/gimnasio/internal/metrics"
	"github.com/GustavoLarcoDev/gimnasio/internal/session"
	ucAuth "github.com/GustavoLarcoDev/gimnasio/internal/usecase/auth"
)

type AuthHandler struct {
	loginUC  *ucAuth.Login
	sessions *session.Manager
	config   *config.Config
	log      *zap.Logger
}

func NewAuthHandler(
	loginUC *ucAuth.Login,
	sessions *session.Manager,
	cfg *config.Config,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		loginUC:  loginUC,
		sessions: sessions,
		config:   cfg,
		log:      log,
	}
}

type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// LoginPage: con sesión válida va directo al dashboard del tenant.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie != "" {
		if claims, err := h.sessions.Parse(c.Request.Context(), cookie); err == nil {
			c.Redirect(http.StatusFound, dashboardPath(claims.GimnasioID.String()))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"campos": []string{"email", "password"},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "Datos inválidos")
		return
	}

	g, token, err := h.loginUC.Execute(c.Request.Context(), ucAuth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, ucAuth.ErrInvalidCredentials):
			metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
			httperr.Unauthorized(c, "Credenciales inválidas")
		case errors.Is(err, ucAuth.ErrAccountInactive):
			metrics.LoginAttempts.WithLabelValues("inactive").Inc()
			httperr.Unauthorized(c, "Su cuenta no está activa. Contacte al administrador.")
		default:
			if be, ok := httperr.IsBusiness(err); ok {
				httperr.BadRequest(c, be.Message)
				return
			}
			metrics.LoginAttempts.WithLabelValues("error").Inc()
			h.log.Error("login failed", zap.Error(err))
			httperr.Internal(c, "Ocurrió un error al intentar iniciar sesión")
		}
		return
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, dashboardPath(g.GimnasioID.String()))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie != "" {
		if claims, err := h.sessions.Parse(c.Request.Context(), cookie); err == nil {
			if err := h.sessions.Revoke(c.Request.Context(), claims); err != nil {
				h.log.Warn("session revoke failed", zap.Error(err))
			}
		}
	}

	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/Gimnasios/Login")
}

// --------- Cookies ---------

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(
		session.CookieName,
		token,
		int(session.TTL.Seconds()),
		"/",
		"",
		h.config.CookieSecure,
		true,
	)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(session.CookieName, "", -1, "/", "", h.config.CookieSecure, true)
}

func dashboardPath(id string) string {
	return fmt.Sprintf("/Gimnasios/%s/Dashboard", id)
}
