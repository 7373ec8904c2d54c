package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/GustavoLarcoDev/gimnasio/internal/domain/gimnasio"
	"github.com/GustavoLarcoDev/gimnasio/internal/httperr"
	"github.com/GustavoLarcoDev/gimnasio/internal/httpresp"
	"github.com/GustavoLarcoDev/gimnasio/internal/metrics"
	ucGimnasio "github.com/GustavoLarcoDev/gimnasio/internal/usecase/gimnasio"
)

// ======================================================
// HANDLER
// ======================================================

type GimnasioHandler struct {
	repo     domain.Repository
	createUC *ucGimnasio.Create
	editUC   *ucGimnasio.Edit
	deleteUC *ucGimnasio.Delete
	toggleUC *ucGimnasio.ToggleStatus
	log      *zap.Logger
}

func NewGimnasioHandler(
	repo domain.Repository,
	createUC *ucGimnasio.Create,
	editUC *ucGimnasio.Edit,
	deleteUC *ucGimnasio.Delete,
	toggleUC *ucGimnasio.ToggleStatus,
	log *zap.Logger,
) *GimnasioHandler {
	return &GimnasioHandler{
		repo:     repo,
		createUC: createUC,
		editUC:   editUC,
		deleteUC: deleteUC,
		toggleUC: toggleUC,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateGimnasioRequest struct {
	NombreGimnasio string `form:"NombreGimnasio"`
	DuenoGimnasio  string `form:"duenoGimnasio"`
	Telefono       string `form:"telefono"`
	EmailGimnasio  string `form:"EmailGimnasio"`
	Password       string `form:"passwordGimnasio"`
	IsActive       bool   `form:"isActive"`
	EsPrueba       bool   `form:"esPrueba"`
}

type EditGimnasioRequest struct {
	GimnasioID     string `form:"GimnasioId" binding:"required"`
	GimnasioNombre string `form:"GimnasioNombre"`
	DuenoGimnasio  string `form:"DuenoGimnasio"`
	Telefono       string `form:"Telefono"`
	Email          string `form:"Email"`
	Password       string `form:"Password"`
	IsActive       bool   `form:"IsActive"`
	EsPrueba       bool   `form:"EsPrueba"`
}

// ======================================================
// LANDING
// ======================================================

func (h *GimnasioHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "gimnasio-api",
		"status":  "ok",
	})
}

func (h *GimnasioHandler) Crear(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"campos": []string{
			"NombreGimnasio", "duenoGimnasio", "telefono",
			"EmailGimnasio", "passwordGimnasio", "isActive", "esPrueba",
		},
	})
}

// ======================================================
// LIST / GET
// ======================================================

func (h *GimnasioHandler) GetGimnasios(c *gin.Context) {
	rows, err := h.repo.ListSummaries(c.Request.Context())
	if err != nil {
		h.log.Error("list gimnasios failed", zap.Error(err))
		httperr.Internal(c, "Error al obtener los gimnasios")
		return
	}

	// sin gimnasios la respuesta es [] y no null
	if rows == nil {
		rows = []domain.Summary{}
	}

	c.JSON(http.StatusOK, rows)
}

func (h *GimnasioHandler) GetGimnasio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "Id inválido")
		return
	}

	g, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "Gimnasio no encontrado")
			return
		}
		h.log.Error("get gimnasio failed", zap.Error(err))
		httperr.Internal(c, "Error al obtener el gimnasio")
		return
	}

	// El password nunca viaja en ninguna respuesta de lectura
	c.JSON(http.StatusOK, gin.H{
		"gimnasioId":     g.GimnasioID,
		"gimnasioNombre": g.Nombre,
		"duenoGimnasio":  g.Dueno,
		"telefono":       g.Telefono,
		"email":          g.Email,
		"isActive":       g.IsActive,
		"esPrueba":       g.EsPrueba,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *GimnasioHandler) Create(c *gin.Context) {
	var req CreateGimnasioRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "Datos inválidos")
		return
	}

	_, err := h.createUC.Execute(c.Request.Context(), ucGimnasio.CreateInput{
		Nombre:   req.NombreGimnasio,
		Dueno:    req.DuenoGimnasio,
		Telefono: req.Telefono,
		Email:    req.EmailGimnasio,
		Password: req.Password,
		IsActive: req.IsActive,
		EsPrueba: req.EsPrueba,
	})
	if err != nil {
		if be, ok := httperr.IsBusiness(err); ok {
			httperr.BadRequest(c, be.Message)
			return
		}
		h.log.Error("create gimnasio failed", zap.Error(err))
		httperr.Internal(c, "Error al crear el gimnasio")
		return
	}

	metrics.GimnasiosCreated.Inc()
	httpresp.OK(c, "Gimnasio creado exitosamente")
}

// ======================================================
// EDIT
// ======================================================

func (h *GimnasioHandler) Editar(c *gin.Context) {
	var req EditGimnasioRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "Datos inválidos")
		return
	}

	id, err := uuid.Parse(req.GimnasioID)
	if err != nil {
		httperr.BadRequest(c, "Datos inválidos")
		return
	}

	_, err = h.editUC.Execute(c.Request.Context(), ucGimnasio.EditInput{
		GimnasioID: id,
		Nombre:     req.GimnasioNombre,
		Dueno:      req.DuenoGimnasio,
		Telefono:   req.Telefono,
		Email:      req.Email,
		Password:   req.Password,
		IsActive:   req.IsActive,
		EsPrueba:   req.EsPrueba,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "Gimnasio no encontrado")
			return
		}
		if be, ok := httperr.IsBusiness(err); ok {
			httperr.BadRequest(c, be.Message)
			return
		}
		h.log.Error("edit gimnasio failed", zap.Error(err))
		httperr.Internal(c, "Error al actualizar el gimnasio")
		return
	}

	httpresp.OK(c, "Gimnasio actualizado exitosamente")
}

// ======================================================
// DELETE
// ======================================================

func (h *GimnasioHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.PostForm("id"))
	if err != nil {
		httperr.BadRequest(c, "Id inválido")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "Gimnasio no encontrado")
			return
		}

		var conflict domain.ClientesExistError
		if errors.As(err, &conflict) {
			httperr.BadRequest(c, conflict.Error())
			return
		}

		h.log.Error("delete gimnasio failed", zap.Error(err))
		httperr.Internal(c, "Error al eliminar el gimnasio")
		return
	}

	httpresp.OK(c, "Gimnasio eliminado exitosamente")
}

// ======================================================
// TOGGLE PAGO / PRUEBA
// ======================================================

func (h *GimnasioHandler) CambiarEstado(c *gin.Context) {
	id, err := uuid.Parse(c.PostForm("id"))
	if err != nil {
		httperr.BadRequest(c, "Id inválido")
		return
	}

	g, label, err := h.toggleUC.Execute(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "Gimnasio no encontrado")
			return
		}
		h.log.Error("toggle gimnasio failed", zap.Error(err))
		httperr.Internal(c, "Error al cambiar el estado del gimnasio")
		return
	}

	httpresp.OKWith(c,
		fmt.Sprintf("Gimnasio cambiado a modo %s exitosamente", label),
		gin.H{
			"isActive": g.IsActive,
			"esPrueba": g.EsPrueba,
		},
	)
}
