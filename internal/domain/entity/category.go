package entity

import "time"

// Category agrupa productos del catálogo. Active es un marcador de visibilidad:
// una categoría inactiva desaparece de los listados pero sigue siendo
// recuperable por ID.
type Category struct {
	ID          string
	Name        string
	Description string
	Active      bool
	DateCreated time.Time
	DateUpdated time.Time
}
