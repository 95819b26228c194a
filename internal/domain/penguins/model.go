package penguins

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Penguin es el documento que guarda el store.
// Los tags json definen el cuerpo del documento (doc); id y timestamps viven aparte.
type Penguin struct {
	ID string `json:"-"`

	Species     string `json:"species" validate:"notblank"`
	FirstName   string `json:"firstName" validate:"notblank"`
	Description string `json:"description,omitempty" validate:"omitempty,min=10"`
	Gender      string `json:"gender,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Validate aplica las reglas del schema al registro completo.
func (p Penguin) Validate() error {
	return validateStruct(p)
}

// Patch es un update parcial: nil = no tocar el campo.
// Serializado a JSON produce un merge-patch con solo los campos presentes.
type Patch struct {
	Species     *string `json:"species,omitempty" validate:"omitnil,notblank"`
	FirstName   *string `json:"firstName,omitempty" validate:"omitnil,notblank"`
	Description *string `json:"description,omitempty" validate:"omitnil,min=10"`
	Gender      *string `json:"gender,omitempty"`
}

// Validate revalida solo los campos presentes. Las reglas son por campo,
// así que validar el patch equivale a validar el registro resultante.
func (p Patch) Validate() error {
	return validateStruct(p)
}

func (p Patch) IsEmpty() bool {
	return p.Species == nil && p.FirstName == nil && p.Description == nil && p.Gender == nil
}

// Apply devuelve una copia de cur con los campos del patch aplicados.
func (p Patch) Apply(cur Penguin) Penguin {
	if p.Species != nil {
		cur.Species = *p.Species
	}
	if p.FirstName != nil {
		cur.FirstName = *p.FirstName
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if p.Gender != nil {
		cur.Gender = *p.Gender
	}
	return cur
}

// ParseID normaliza un id al formato nativo de los stores (UUID canónico).
// Un id que no parsea es KindInvalidID, que el router trata igual que not found.
func ParseID(op, id string) (string, error) {
	id = strings.TrimSpace(id)
	u, err := uuid.Parse(id)
	if err != nil {
		return "", InvalidID(op, id)
	}
	return u.String(), nil
}
