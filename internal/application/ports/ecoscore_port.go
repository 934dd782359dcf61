package ports

import "context"

// EcoscoreUnknown es el grade sentinel cuando el servicio externo no responde
// o responde mal. Un fallo de enriquecimiento nunca falla la petición.
const EcoscoreUnknown = "unknown"

// EcoscoreService define el puerto de salida hacia el servicio externo de
// datos de producto. Cualquier adaptador (Open Food Facts, mock) debe
// implementar esta interfaz; la aplicación solo conoce este contrato (DIP).
type EcoscoreService interface {
	// FetchGrade consulta el eco-score del producto. Es una función total:
	// ante cualquier fallo (red, timeout, payload inválido) devuelve
	// EcoscoreUnknown en lugar de propagar el error. Un solo intento.
	// El contexto debe llevar un timeout para evitar bloqueos.
	FetchGrade(ctx context.Context, productID string) string
}
