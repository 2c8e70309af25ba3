package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-admin/internal/application/auth"
	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/memoria"
	apphttp "github.com/jhoicas/tienda-admin/internal/interfaces/http"
)

// ── Fakes ─────────────────────────────────────────────────────────────────────

type authFalsa struct {
	login  dto.Respuesta[dto.LoginData]
	logout *dto.Respuesta[json.RawMessage]
}

func (f *authFalsa) Login(context.Context, dto.LoginRequest) dto.Respuesta[dto.LoginData] {
	return f.login
}

func (f *authFalsa) Logout(context.Context) dto.Respuesta[json.RawMessage] {
	if f.logout != nil {
		return *f.logout
	}
	return dto.Exito[json.RawMessage](nil, "Sesión cerrada")
}

type pedidosFalsos struct {
	ports.PedidosAPI
	mu      sync.Mutex
	pedido  entity.Pedido
	destino entity.EstadoPedido
}

func (f *pedidosFalsos) Obtener(_ context.Context, id int64) dto.Respuesta[entity.Pedido] {
	if id != f.pedido.ID {
		return dto.Respuesta[entity.Pedido]{Message: "Pedido no encontrado", Status: http.StatusNotFound}
	}
	return dto.Exito(f.pedido, "")
}

func (f *pedidosFalsos) CambiarEstado(_ context.Context, id int64, e entity.EstadoPedido) dto.Respuesta[entity.CambioEstadoPedido] {
	f.mu.Lock()
	f.destino = e
	f.mu.Unlock()
	return dto.Exito(entity.CambioEstadoPedido{ID: id, EstadoAnterior: string(f.pedido.EstadoPedido), EstadoActual: string(e)}, "")
}

type categoriasFalsas struct {
	ports.CategoriasAPI
	creada *dto.CategoriaRequest
}

func (f *categoriasFalsas) Listar(context.Context, dto.FiltrosCategorias) dto.Respuesta[dto.Pagina[entity.Categoria]] {
	return dto.Exito(dto.PaginaUnica([]entity.Categoria{{ID: 1, Nombre: "Suplementos", Estado: entity.EstadoActivo}}), "")
}

func (f *categoriasFalsas) Crear(_ context.Context, in dto.CategoriaRequest) dto.Respuesta[entity.Categoria] {
	f.creada = &in
	return dto.Exito(entity.Categoria{ID: 2, Nombre: in.Nombre, Estado: in.Estado, ParentID: in.ParentID}, "")
}

type comprobanteFalso struct{ err error }

func (f comprobanteFalso) Generar(context.Context, entity.Pedido) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3 falso"), nil
}

// ── Armado ────────────────────────────────────────────────────────────────────

type entorno struct {
	app         *fiber.App
	repo        *memoria.SesionRepository
	authAPI     *authFalsa
	pedidos     *pedidosFalsos
	categorias  *categoriasFalsas
	productos   *productosFalsos
	etiquetas   *etiquetasFalsas
	blogs       *blogsFalsos
	carrusel    *carruselFalso
	cyberwow    *cyberwowFalso
	liquidacion *liquidacionFalsa
	cookie      string
}

func nuevoEntorno(t *testing.T, gen ports.GeneradorComprobante) *entorno {
	t.Helper()
	e := &entorno{
		repo:    memoria.NewSesionRepository(),
		authAPI: &authFalsa{},
		pedidos: &pedidosFalsos{pedido: entity.Pedido{
			ID:           15,
			EstadoPedido: entity.PedidoPendiente,
			Total:        decimal.RequireFromString("120.50"),
		}},
		categorias:  &categoriasFalsas{},
		productos:   nuevosProductos(),
		etiquetas:   &etiquetasFalsas{},
		blogs:       &blogsFalsos{},
		carrusel:    &carruselFalso{},
		cyberwow:    &cyberwowFalso{},
		liquidacion: &liquidacionFalsa{},
	}
	uc := auth.NewUseCase(e.authAPI, e.repo, time.Hour, zerolog.Nop())
	e.app = fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(zerolog.Nop())})
	apphttp.Router(e.app, apphttp.RouterDeps{
		AuthUC:      uc,
		Cookie:      apphttp.CookieConfig{Nombre: testCookie, Secret: testJWTSecret, Issuer: testIssuer, MaxEdad: time.Hour},
		Categorias:  e.categorias,
		Productos:   e.productos,
		Etiquetas:   e.etiquetas,
		Blogs:       e.blogs,
		Carrusel:    e.carrusel,
		CyberWow:    e.cyberwow,
		Liquidacion: e.liquidacion,
		Pedidos:     e.pedidos,
		Comprobante: gen,
		Log:         zerolog.Nop(),
	})
	e.cookie = guardarSesion(t, e.repo, "admin-1", entity.TipoAdmin)
	return e
}

func (e *entorno) hacer(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	req.AddCookie(&http.Cookie{Name: testCookie, Value: e.cookie})
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func jsonReq(metodo, ruta, body string) *http.Request {
	req := httptest.NewRequest(metodo, ruta, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func multipartReq(t *testing.T, metodo, ruta string, campos map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range campos {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(metodo, ruta, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

type resultado struct {
	Aviso struct {
		Tipo    string            `json:"tipo"`
		Mensaje string            `json:"mensaje"`
		Campos  map[string]string `json:"campos"`
	} `json:"aviso"`
	Data json.RawMessage `json:"data"`
}

func leerResultado(t *testing.T, resp *http.Response) resultado {
	t.Helper()
	var r resultado
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	return r
}

// ── Auth ──────────────────────────────────────────────────────────────────────

func TestLogin_FijaCookieYGuardaSesion(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	e.authAPI.login = dto.Exito(dto.LoginData{
		Admin: &entity.Admin{ID: 3, Email: "ana@tienda.pe", Tipo: entity.TipoAdmin},
		Token: "12|abc", ExpiresInHours: 8,
	}, "Login exitoso")

	resp, err := e.app.Test(jsonReq(http.MethodPost, "/api/auth/login", `{"email":"ana@tienda.pe","password":"secreto"}`), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "debe fijarse la cookie de sesión")
	assert.True(t, cookie.HttpOnly)

	var body dto.SesionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.EsAdmin)
	assert.Equal(t, "ana@tienda.pe", body.Admin.Email)
}

func TestLogin_RechazadoPorElBackend(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	e.authAPI.login = dto.Respuesta[dto.LoginData]{Message: "Credenciales inválidas", Status: http.StatusUnauthorized}

	resp, err := e.app.Test(jsonReq(http.MethodPost, "/api/auth/login", `{"email":"ana@tienda.pe","password":"mala"}`), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, cuerpo(t, resp), "Credenciales inválidas")
}

func TestLogin_EmailInvalido(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp, err := e.app.Test(jsonReq(http.MethodPost, "/api/auth/login", `{"email":"no-es-email","password":"x"}`), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLogout_BorraLaSesion(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp := e.hacer(t, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	s, err := e.repo.Obtener(context.Background(), "admin-1")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestLogout_BackendCaidoIgualCierraLaSesion(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	fallo := dto.Respuesta[json.RawMessage]{Message: "Error de conexión"}
	e.authAPI.logout = &fallo

	resp := e.hacer(t, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.Respuesta[json.RawMessage]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "Sesión cerrada", body.Message)

	s, err := e.repo.Obtener(context.Background(), "admin-1")
	require.NoError(t, err)
	assert.Nil(t, s)
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

func TestEstadoPedido_TransicionValida(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp := e.hacer(t, jsonReq(http.MethodPut, "/api/pedidos/15/estado", `{"estado":"pagado"}`))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	r := leerResultado(t, resp)
	assert.Equal(t, "exito", r.Aviso.Tipo)
	assert.Equal(t, entity.PedidoPagado, e.pedidos.destino)
}

func TestEstadoPedido_TransicionNoPermitida(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp := e.hacer(t, jsonReq(http.MethodPut, "/api/pedidos/15/estado", `{"estado":"enviado"}`))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Empty(t, e.pedidos.destino, "no debe llamarse al backend")
}

func TestEstadoPedido_MismoEstado(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp := e.hacer(t, jsonReq(http.MethodPut, "/api/pedidos/15/estado", `{"estado":"pendiente"}`))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestObtenerPedido_ErrorDelBackendConservaStatus(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp := e.hacer(t, httptest.NewRequest(http.MethodGet, "/api/pedidos/99", nil))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, cuerpo(t, resp), "Pedido no encontrado")
}

func TestComprobante_DevuelvePDF(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp := e.hacer(t, httptest.NewRequest(http.MethodGet, "/api/pedidos/15/comprobante", nil))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "pedido-15.pdf")
	assert.True(t, strings.HasPrefix(cuerpo(t, resp), "%PDF"))
}

func TestComprobante_FallaElGenerador(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{err: errors.New("fuente no encontrada")})
	resp := e.hacer(t, httptest.NewRequest(http.MethodGet, "/api/pedidos/15/comprobante", nil))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, cuerpo(t, resp), "fuente no encontrada")
}

// ── Categorías ────────────────────────────────────────────────────────────────

func TestGuardarCategoria_ValidacionLocal(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp := e.hacer(t, multipartReq(t, http.MethodPost, "/api/categorias", map[string]string{"nombre": "  "}))
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	r := leerResultado(t, resp)
	assert.Equal(t, "El nombre es requerido", r.Aviso.Campos["nombre"])
	assert.Nil(t, e.categorias.creada, "no debe llamarse al backend")
}

func TestGuardarCategoria_CreaSubcategoria(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp := e.hacer(t, multipartReq(t, http.MethodPost, "/api/categorias", map[string]string{
		"nombre":    "Vitaminas",
		"parent_id": "1",
	}))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	r := leerResultado(t, resp)
	assert.Equal(t, "Categoría creada exitosamente", r.Aviso.Mensaje)
	require.NotNil(t, e.categorias.creada)
	assert.Equal(t, "Vitaminas", e.categorias.creada.Nombre)
	require.NotNil(t, e.categorias.creada.ParentID)
	assert.Equal(t, int64(1), *e.categorias.creada.ParentID)
}

func TestRutaProtegida_SinSesion(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp, err := e.app.Test(httptest.NewRequest(http.MethodGet, "/api/pedidos/15", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
