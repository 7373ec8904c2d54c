package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/GustavoLarcoDev/gimnasio/internal/domain/gimnasio"
	"github.com/GustavoLarcoDev/gimnasio/internal/httperr"
	"github.com/GustavoLarcoDev/gimnasio/internal/middleware"
)

type DashboardHandler struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewDashboardHandler(repo domain.Repository, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{repo: repo, log: log}
}

// Dashboard del tenant: solo el dueño de la sesión puede verlo.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "Id inválido")
		return
	}

	sessionGimnasioID := c.MustGet(middleware.ContextGimnasioID).(uuid.UUID)
	if sessionGimnasioID != id {
		httperr.Forbidden(c, "No tiene permisos para ver este dashboard")
		return
	}

	g, err := h.repo.GetWithClientes(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "Gimnasio no encontrado")
			return
		}
		h.log.Error("dashboard failed", zap.Error(err))
		httperr.Internal(c, "Error al obtener el dashboard")
		return
	}

	c.JSON(http.StatusOK, g)
}
