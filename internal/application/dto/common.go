package dto

import "time"

// timestampLayout serializa fechas en UTC con microsegundos y sufijo Z literal,
// ej. 2024-05-01T13:45:30.123456Z.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// FormatTimestamp formatea un time.Time al formato de fecha de la API.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// PageRequest paginación para listados (?page y ?page_size).
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// DefaultPage aplica valores por defecto y topes si Page/PageSize están fuera de rango.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// Offset devuelve el desplazamiento equivalente a la página pedida.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
