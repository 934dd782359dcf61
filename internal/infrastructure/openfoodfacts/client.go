package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/rs/zerolog/log"
)

// Verificar en tiempo de compilación que Client implementa EcoscoreService.
var _ ports.EcoscoreService = (*Client)(nil)

// Client adaptador que implementa EcoscoreService contra un servicio de datos
// de producto estilo Open Food Facts. Usa net/http de la librería estándar;
// un solo intento por consulta, sin reintentos ni caché.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. timeout acota toda la llamada saliente.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ── Estructuras del payload del servicio externo ──────────────────────────────

type ecoscoreResponse struct {
	Status  int `json:"status"`
	Product struct {
		EcoscoreGrade string `json:"ecoscore_grade"`
	} `json:"product"`
}

// FetchGrade consulta el eco-score del producto. Cualquier fallo (red,
// timeout, status no-200, payload inválido, grade vacío) se absorbe aquí y se
// devuelve el sentinel: el enriquecimiento nunca falla la petición del caller.
func (c *Client) FetchGrade(ctx context.Context, productID string) string {
	endpoint := fmt.Sprintf("%s/api/v2/product/%s?fields=ecoscore_grade", c.baseURL, url.PathEscape(productID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return c.fallback(productID, err, "crear HTTP request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fallback(productID, err, "llamada HTTP fallida")
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return c.fallback(productID, err, "leer respuesta")
	}

	if resp.StatusCode != http.StatusOK {
		return c.fallback(productID, fmt.Errorf("HTTP %d", resp.StatusCode), "status no exitoso")
	}

	var payload ecoscoreResponse
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return c.fallback(productID, err, "deserializar respuesta")
	}
	if payload.Status != 1 || payload.Product.EcoscoreGrade == "" {
		return c.fallback(productID, fmt.Errorf("payload sin grade (status %d)", payload.Status), "producto sin eco-score")
	}

	return payload.Product.EcoscoreGrade
}

// fallback registra el fallo absorbido y devuelve el sentinel.
func (c *Client) fallback(productID string, err error, msg string) string {
	log.Debug().Err(err).Str("product_id", productID).Msg("ecoscore: " + msg + ", usando fallback")
	return ports.EcoscoreUnknown
}
