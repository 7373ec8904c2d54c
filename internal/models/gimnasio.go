package models

import (
	"time"

	"github.com/google/uuid"
)

type Gimnasio struct {
	GimnasioID uuid.UUID `gorm:"type:uuid;primaryKey" json:"gimnasioId"`

	Nombre   string `gorm:"size:100;not null" json:"gimnasioNombre"`
	Dueno    string `gorm:"size:100;not null" json:"duenoGimnasio"`
	Telefono string `gorm:"size:20;not null" json:"telefono"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	// Nunca se serializa ni sale por ningún endpoint de lectura
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// Exactamente uno de los dos es true
	IsActive bool `json:"isActive"`
	EsPrueba bool `json:"esPrueba"`

	FechaCreacion      time.Time `json:"fechaCreacion"`
	FechaActualizacion time.Time `json:"fechaActualizacion"`

	Clientes []Cliente `gorm:"foreignKey:GimnasioID;constraint:OnDelete:RESTRICT" json:"clientes,omitempty"`
}
