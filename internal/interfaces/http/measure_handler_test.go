package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/uom-core/internal/application/usecase"
	apphttp "github.com/tu-usuario/uom-core/internal/interfaces/http"
	"github.com/tu-usuario/uom-core/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye una aplicación Fiber mínima con el router de medidas.
func buildTestApp() *fiber.App {
	app := fiber.New()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	apphttp.Router(app, apphttp.RouterDeps{
		MeasureUC: usecase.NewMeasureUseCase(log),
	})
	return app
}

// postJSON lanza un POST con cuerpo JSON y devuelve la respuesta decodificada.
func postJSON(t *testing.T, app *fiber.App, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	require.NoError(t, resp.Body.Close())
	return resp, decoded
}

func getJSON(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	require.NoError(t, resp.Body.Close())
	return resp, decoded
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversión de cantidades
// ──────────────────────────────────────────────────────────────────────────────

func TestQuantityToBase_HTTP(t *testing.T) {
	app := buildTestApp()
	resp, body := postJSON(t, app, "/api/measure/quantity/to-base", fiber.Map{
		"value": "12.3", "dimension": "length", "uom": "cm",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 123, body["qty_base"])
	assert.Equal(t, "length", body["dimension"])
	assert.Equal(t, "mm", body["base_unit"])
}

func TestQuantityFromBase_HTTP_DosDecimales(t *testing.T) {
	app := buildTestApp()
	resp, body := postJSON(t, app, "/api/measure/quantity/from-base", fiber.Map{
		"qty_base": 250000, "dimension": "volume", "uom": "ml",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "250.00", body["value"], "la forma display siempre lleva 2 decimales")
	assert.Equal(t, "ml", body["uom"])
}

// TestQuantityToBase_HTTP_SinonimoMass la API acepta el sinónimo legado y
// responde con la dimensión canónica.
func TestQuantityToBase_HTTP_SinonimoMass(t *testing.T) {
	app := buildTestApp()
	resp, body := postJSON(t, app, "/api/measure/quantity/to-base", fiber.Map{
		"value": "2.5", "dimension": "Mass ", "uom": "g",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2500, body["qty_base"])
	assert.Equal(t, "weight", body["dimension"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversión de precios
// ──────────────────────────────────────────────────────────────────────────────

func TestPriceFromBase_HTTP(t *testing.T) {
	app := buildTestApp()
	resp, body := postJSON(t, app, "/api/measure/price/from-base", fiber.Map{
		"price_per_base": "0.01", "dimension": "weight", "uom": "g",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "10.00", body["price_per_unit"])
}

func TestPriceToBase_HTTP(t *testing.T) {
	app := buildTestApp()
	resp, body := postJSON(t, app, "/api/measure/price/to-base", fiber.Map{
		"price_per_unit": "10.00", "dimension": "volume", "uom": "l",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "0.00", body["price_per_base"])
	assert.Equal(t, "mm3", body["base_unit"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores y catálogo
// ──────────────────────────────────────────────────────────────────────────────

// TestParInvalido_HTTP el mensaje del motor viaja sin alterar al cliente.
func TestParInvalido_HTTP(t *testing.T) {
	app := buildTestApp()
	resp, body := postJSON(t, app, "/api/measure/quantity/to-base", fiber.Map{
		"value": "1", "dimension": "volume", "uom": "g",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "UNSUPPORTED_UOM", body["code"])
	assert.Equal(t, "Unsupported uom 'g' for dimension 'volume'", body["message"])
}

func TestListDimensions_HTTP(t *testing.T) {
	app := buildTestApp()
	resp, body := getJSON(t, app, "/api/measure/dimensions")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 5, body["total"])

	dims, ok := body["dimensions"].([]any)
	require.True(t, ok)
	require.Len(t, dims, 5)
	first, ok := dims[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "area", first["dimension"])
	assert.Equal(t, "mm2", first["base_unit"])
}

func TestAllowedUnits_HTTP(t *testing.T) {
	app := buildTestApp()
	resp, body := getJSON(t, app, "/api/measure/units?dimension=weight")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.ElementsMatch(t, []any{"mg", "g", "kg"}, body["units"])

	// Dimensión desconocida: lista vacía, no error.
	resp, body = getJSON(t, app, "/api/measure/units?dimension=temperature")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["units"])
}
