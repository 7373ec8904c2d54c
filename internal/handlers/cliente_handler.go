package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/GustavoLarcoDev/gimnasio/internal/domain/gimnasio"
	"github.com/GustavoLarcoDev/gimnasio/internal/httperr"
	"github.com/GustavoLarcoDev/gimnasio/internal/metrics"
	"github.com/GustavoLarcoDev/gimnasio/internal/middleware"
	ucCliente "github.com/GustavoLarcoDev/gimnasio/internal/usecase/cliente"
)

type ClienteHandler struct {
	createUC *ucCliente.Create
	log      *zap.Logger
}

func NewClienteHandler(createUC *ucCliente.Create, log *zap.Logger) *ClienteHandler {
	return &ClienteHandler{createUC: createUC, log: log}
}

type CreateClienteRequest struct {
	GimnasioID      string    `form:"GimnasioId" binding:"required"`
	Nombre          string    `form:"Nombre"`
	Apellido        string    `form:"Apellido"`
	FechaNacimiento time.Time `form:"FechaNacimiento" time_format:"2006-01-02"`
	Email           string    `form:"Email"`
	Telefono        string    `form:"Telefono"`
	Direccion       string    `form:"Direccion"`
	Dias            int       `form:"Dias"`
	FechaQueTermina time.Time `form:"FechaQueTermina" time_format:"2006-01-02"`
}

func (h *ClienteHandler) CreateClient(c *gin.Context) {
	var req CreateClienteRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "Datos inválidos")
		return
	}

	gimnasioID, err := uuid.Parse(req.GimnasioID)
	if err != nil {
		httperr.BadRequest(c, "Datos inválidos")
		return
	}

	requestorID := c.MustGet(middleware.ContextGimnasioID).(uuid.UUID)

	cl, err := h.createUC.Execute(c.Request.Context(), ucCliente.CreateInput{
		GimnasioID:          gimnasioID,
		RequestorGimnasioID: requestorID,
		Nombre:              req.Nombre,
		Apellido:            req.Apellido,
		FechaNacimiento:     req.FechaNacimiento,
		Email:               req.Email,
		Telefono:            req.Telefono,
		Direccion:           req.Direccion,
		Dias:                req.Dias,
		FechaQueTermina:     req.FechaQueTermina,
	})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			httperr.Forbidden(c, "No tiene permisos para registrar clientes en este gimnasio")
			return
		}
		if be, ok := httperr.IsBusiness(err); ok {
			httperr.BadRequest(c, be.Message)
			return
		}
		h.log.Error("create cliente failed", zap.Error(err))
		httperr.Internal(c, "Error al registrar el cliente")
		return
	}

	metrics.ClientesCreated.Inc()
	c.Redirect(http.StatusFound, dashboardPath(cl.GimnasioID.String()))
}
