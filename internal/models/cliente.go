package models

import (
	"time"

	"github.com/google/uuid"
)

// Cliente del gimnasio, sin login propio
type Cliente struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	GimnasioID uuid.UUID `gorm:"type:uuid;index;not null" json:"gimnasioId"`

	Nombre          string    `gorm:"size:100;not null" json:"nombre"`
	Apellido        string    `gorm:"size:100;not null" json:"apellido"`
	FechaNacimiento time.Time `json:"fechaNacimiento"`
	Email           string    `gorm:"size:100" json:"email,omitempty"`
	Telefono        string    `gorm:"size:20;not null" json:"telefono"`
	Direccion       string    `gorm:"size:255" json:"direccion"`

	Dias            int       `json:"dias"`
	FechaQueTermina time.Time `json:"fechaQueTermina"`

	FechaCreacion      time.Time `json:"fechaCreacion"`
	FechaActualizacion time.Time `json:"fechaActualizacion"`
}
