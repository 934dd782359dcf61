package entity

import "time"

// Product pertenece a exactamente una categoría. La referencia CategoryID es
// inmutable vía API (no existe endpoint de actualización).
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Active      bool
	DateCreated time.Time
	DateUpdated time.Time
}
