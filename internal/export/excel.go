package export

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	domain "github.com/GustavoLarcoDev/gimnasio/internal/domain/gimnasio"
	"github.com/GustavoLarcoDev/gimnasio/internal/models"
)

const sheetName = "Gimnasios"

var headers = []string{
	"Nombre del Gimnasio",
	"Dueño",
	"Email",
	"Teléfono",
	"Estado",
	"Es Prueba",
	"Total Clientes",
	"Fecha Creación",
}

type ExcelExporter struct {
	repo domain.Repository
}

func NewExcelExporter(repo domain.Repository) *ExcelExporter {
	return &ExcelExporter{repo: repo}
}

// Execute arma el reporte completo: una fila por gimnasio, ordenado por
// fecha de creación descendente.
func (e *ExcelExporter) Execute(ctx context.Context) (string, []byte, error) {

	gyms, err := e.repo.ListWithClientes(ctx)
	if err != nil {
		return "", nil, err
	}

	content, err := buildWorkbook(gyms)
	if err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("Gimnasios_%s.xlsx", time.Now().Format("20060102"))
	return filename, content, nil
}

func buildWorkbook(gyms []models.Gimnasio) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	// Encabezado: negrita, blanco sobre azul
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"3B82F6"}},
	})
	if err != nil {
		return nil, err
	}

	widths := make([]int, len(headers))

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
		widths[col] = len([]rune(h))
	}

	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, err
	}

	for i, g := range gyms {
		estado := "Inactivo"
		if g.IsActive {
			estado = "Activo"
		}
		esPrueba := "No"
		if g.EsPrueba {
			esPrueba = "Sí"
		}

		values := []any{
			g.Nombre,
			g.Dueno,
			g.Email,
			g.Telefono,
			estado,
			esPrueba,
			len(g.Clientes),
			g.FechaCreacion.Format("02/01/2006"),
		}

		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
			if w := len([]rune(fmt.Sprint(v))); w > widths[col] {
				widths[col] = w
			}
		}
	}

	for col, w := range widths {
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(sheetName, name, name, float64(w)+2); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
