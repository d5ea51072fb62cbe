package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/faktur-api/internal/application/editor"
	"github.com/jhoicas/faktur-api/internal/application/export"
	"github.com/jhoicas/faktur-api/internal/application/numbering"
	"github.com/jhoicas/faktur-api/internal/domain/document"
	"github.com/jhoicas/faktur-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/faktur-api/internal/interfaces/http"
	"github.com/jhoicas/faktur-api/pkg/config"
)

// stubPDFGenerator devuelve bytes fijos sin renderizar nada.
type stubPDFGenerator struct{}

func (stubPDFGenerator) Generate(_ context.Context, _ *document.Document) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

// newTestApp levanta la API completa con almacén en memoria y un generador
// de PDF de mentira, y devuelve la app junto con un token válido.
func newTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	authCfg := config.AuthConfig{Username: "admin", Password: "admin123"}
	jwtCfg := config.JWTConfig{Secret: testJWTSecret, Expiration: testExpMin, Issuer: testIssuer}

	numbers := numbering.NewGenerator(memory.NewSequenceStore(), "INVC")
	svc := editor.NewService(numbers, decimal.NewFromInt(11))
	pdfUC := export.NewPDFUseCase(svc, stubPDFGenerator{})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Editor: svc,
		PDFUC:  pdfUC,
		Auth:   authCfg,
		JWT:    jwtCfg,
	})

	// Login real contra las credenciales configuradas
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"admin123"}`, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "el login debe funcionar con las credenciales configuradas")

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	require.NotEmpty(t, login.Token)

	return app, "Bearer " + login.Token
}

// doJSON lanza una petición con cuerpo JSON opcional.
func doJSON(t *testing.T, app *fiber.App, method, path, body, authHeader string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var m map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesInvalidas_Retorna401(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"incorrecta"}`, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestInvoice_SinToken_Retorna401(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/invoice/", "", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición de campos
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateSeller_SeReflejaEnGet(t *testing.T) {
	app, token := newTestApp(t)

	resp := doJSON(t, app, http.MethodPatch, "/api/invoice/seller",
		`{"field":"companyName","value":"PT. Prueba"}`, token)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, doJSON(t, app, http.MethodGet, "/api/invoice/", "", token))
	seller := body["seller"].(map[string]interface{})
	assert.Equal(t, "PT. Prueba", seller["companyName"])
}

func TestUpdateSeller_CampoDesconocido_Retorna400(t *testing.T) {
	app, token := newTestApp(t)

	resp := doJSON(t, app, http.MethodPatch, "/api/invoice/seller",
		`{"field":"noExiste","value":"x"}`, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNKNOWN_FIELD")
}

func TestUpdateItem_NoExiste_Retorna404(t *testing.T) {
	app, token := newTestApp(t)

	resp := doJSON(t, app, http.MethodPatch, "/api/invoice/items/no-existe",
		`{"field":"quantity","value":"2"}`, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Líneas y totales
// ──────────────────────────────────────────────────────────────────────────────

func TestItemsYSummary_FlujoCompleto(t *testing.T) {
	app, token := newTestApp(t)

	// Agregar una línea y capturar su id
	resp := doJSON(t, app, http.MethodPost, "/api/invoice/items", "", token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	itemID := created["id"].(string)
	require.NotEmpty(t, itemID)

	// cantidad 2 × precio 50.000
	for _, upd := range []string{
		`{"field":"quantity","value":"2"}`,
		`{"field":"unitPrice","value":"50000"}`,
	} {
		r := doJSON(t, app, http.MethodPatch, "/api/invoice/items/"+itemID, upd, token)
		r.Body.Close()
		require.Equal(t, http.StatusOK, r.StatusCode)
	}

	// PPN 11% habilitado
	r := doJSON(t, app, http.MethodPatch, "/api/invoice/settings",
		`{"field":"enablePPN","value":"true"}`, token)
	r.Body.Close()
	require.Equal(t, http.StatusOK, r.StatusCode)

	sum := decodeBody(t, doJSON(t, app, http.MethodGet, "/api/invoice/summary", "", token))
	assert.Equal(t, "Rp 100.000", sum["subtotal"])
	assert.Equal(t, "Rp 11.000", sum["ppn"])
	assert.Equal(t, "Rp 111.000", sum["total"])

	totals := sum["totals"].(map[string]interface{})
	assert.Equal(t, "100000", totals["subtotal"])
	assert.Equal(t, "111000", totals["grandTotal"])

	// Eliminar la línea y verificar que el subtotal vuelve a cero
	del := doJSON(t, app, http.MethodDelete, "/api/invoice/items/"+itemID, "", token)
	del.Body.Close()
	require.Equal(t, http.StatusOK, del.StatusCode)

	sum = decodeBody(t, doJSON(t, app, http.MethodGet, "/api/invoice/summary", "", token))
	assert.Equal(t, "Rp 0", sum["subtotal"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación, PDF y respaldos
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_FacturaVacia_ListaCampos(t *testing.T) {
	app, token := newTestApp(t)

	body := decodeBody(t, doJSON(t, app, http.MethodGet, "/api/invoice/validate", "", token))
	assert.Equal(t, false, body["valid"])
	assert.NotEmpty(t, body["fields"])
}

func TestPDF_FacturaInvalida_Retorna422(t *testing.T) {
	app, token := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/invoice/pdf", "", token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "VALIDATION")
}

func TestPDF_ConDatosDeEjemplo_EntregaAdjunto(t *testing.T) {
	app, token := newTestApp(t)

	r := doJSON(t, app, http.MethodPost, "/api/invoice/sample", "", token)
	r.Body.Close()
	require.Equal(t, http.StatusOK, r.StatusCode)

	resp := doJSON(t, app, http.MethodGet, "/api/invoice/pdf", "", token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".pdf")

	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF-stub", string(raw))
}

func TestImport_FormatoInvalido_Retorna400(t *testing.T) {
	app, token := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/invoice/import", `{"foo":1}`, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "INVALID_FORMAT")
}

func TestExportImport_RoundTrip(t *testing.T) {
	app, token := newTestApp(t)

	r := doJSON(t, app, http.MethodPost, "/api/invoice/sample", "", token)
	r.Body.Close()
	require.Equal(t, http.StatusOK, r.StatusCode)

	exp := doJSON(t, app, http.MethodGet, "/api/invoice/export", "", token)
	require.Equal(t, http.StatusOK, exp.StatusCode)
	assert.Contains(t, exp.Header.Get("Content-Disposition"), "invoice_")
	snapshot, _ := io.ReadAll(exp.Body)
	exp.Body.Close()

	imp := doJSON(t, app, http.MethodPost, "/api/invoice/import", string(snapshot), token)
	imp.Body.Close()
	assert.Equal(t, http.StatusOK, imp.StatusCode)
}

func TestReset_EntregaNumeroNuevo(t *testing.T) {
	app, token := newTestApp(t)

	body := decodeBody(t, doJSON(t, app, http.MethodPost, "/api/invoice/reset", "", token))
	number, _ := body["invoiceNumber"].(string)
	assert.True(t, strings.HasPrefix(number, "INVC-"), fmt.Sprintf("número inesperado: %q", number))
	assert.True(t, strings.HasSuffix(number, "-001"))
}
