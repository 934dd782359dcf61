package openfoodfacts_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/openfoodfacts"
)

const testTimeout = 200 * time.Millisecond

func TestFetchGrade_RespuestaValida(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/product/prod-1", r.URL.Path)
		assert.Equal(t, "ecoscore_grade", r.URL.Query().Get("fields"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":1,"product":{"ecoscore_grade":"b"}}`))
	}))
	defer srv.Close()

	client := openfoodfacts.NewClient(srv.URL, testTimeout)
	assert.Equal(t, "b", client.FetchGrade(context.Background(), "prod-1"))
}

func TestFetchGrade_StatusNoExitoso_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := openfoodfacts.NewClient(srv.URL, testTimeout)
	assert.Equal(t, ports.EcoscoreUnknown, client.FetchGrade(context.Background(), "prod-1"))
}

func TestFetchGrade_PayloadInvalido_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`esto no es JSON`))
	}))
	defer srv.Close()

	client := openfoodfacts.NewClient(srv.URL, testTimeout)
	assert.Equal(t, ports.EcoscoreUnknown, client.FetchGrade(context.Background(), "prod-1"))
}

func TestFetchGrade_ProductoDesconocido_Fallback(t *testing.T) {
	// El servicio responde 200 pero sin producto (status 0)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":0}`))
	}))
	defer srv.Close()

	client := openfoodfacts.NewClient(srv.URL, testTimeout)
	assert.Equal(t, ports.EcoscoreUnknown, client.FetchGrade(context.Background(), "prod-1"))
}

func TestFetchGrade_GradeVacio_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":1,"product":{"ecoscore_grade":""}}`))
	}))
	defer srv.Close()

	client := openfoodfacts.NewClient(srv.URL, testTimeout)
	assert.Equal(t, ports.EcoscoreUnknown, client.FetchGrade(context.Background(), "prod-1"))
}

func TestFetchGrade_Timeout_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(testTimeout * 4)
	}))
	defer srv.Close()

	client := openfoodfacts.NewClient(srv.URL, testTimeout)
	start := time.Now()
	grade := client.FetchGrade(context.Background(), "prod-1")
	assert.Equal(t, ports.EcoscoreUnknown, grade)
	assert.Less(t, time.Since(start), testTimeout*3, "el timeout debe cortar la llamada")
}

func TestFetchGrade_ServicioCaido_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // conexión rechazada

	client := openfoodfacts.NewClient(srv.URL, testTimeout)
	assert.Equal(t, ports.EcoscoreUnknown, client.FetchGrade(context.Background(), "prod-1"))
}
