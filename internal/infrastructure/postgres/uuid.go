package postgres

import "github.com/google/uuid"

// Los IDs llegan como texto desde la URL pero las columnas id son UUID.
// Un valor que no parsea como UUID no puede coincidir con ninguna fila, y
// mandarlo tal cual haría fallar el statement en el servidor (22P02), así
// que los adaptadores lo resuelven como "no encontrado" antes de tocar la base.

// isUUID reporta si id es un UUID válido.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// categoryFilter convierte el filtro opcional de categoría en un parámetro
// tipado para el predicado ($1::uuid IS NULL OR category_id = $1): nil cuando
// no hay filtro. Un filtro que no parsea como UUID no coincide con ninguna
// fila y se señala con ok = false.
func categoryFilter(categoryID string) (filter *uuid.UUID, ok bool) {
	if categoryID == "" {
		return nil, true
	}
	u, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, false
	}
	return &u, true
}
