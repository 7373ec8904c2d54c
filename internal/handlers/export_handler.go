package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GustavoLarcoDev/gimnasio/internal/export"
	"github.com/GustavoLarcoDev/gimnasio/internal/httperr"
	"github.com/GustavoLarcoDev/gimnasio/internal/metrics"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	exporter *export.ExcelExporter
	log      *zap.Logger
}

func NewExportHandler(exporter *export.ExcelExporter, log *zap.Logger) *ExportHandler {
	return &ExportHandler{exporter: exporter, log: log}
}

func (h *ExportHandler) ExportExcel(c *gin.Context) {
	filename, content, err := h.exporter.Execute(c.Request.Context())
	if err != nil {
		h.log.Error("export failed", zap.Error(err))
		httperr.Internal(c, "Error al generar el reporte")
		return
	}

	metrics.ExportsGenerated.Inc()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, content)
}
