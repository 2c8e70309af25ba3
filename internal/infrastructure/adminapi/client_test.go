package adminapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/adminapi"
	"github.com/jhoicas/tienda-admin/pkg/config"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

// capturada guarda lo que llegó al backend falso.
type capturada struct {
	Metodo  string
	Ruta    string
	Query   string
	Headers http.Header
	Cuerpo  []byte
	Campos  map[string][]string
	Files   map[string]string // campo -> filename
	Tipos   map[string]string // campo -> Content-Type de la parte
}

type backendFalso struct {
	mu        sync.Mutex
	recibidas []capturada
	status    int
	cuerpo    string
}

func (b *backendFalso) ultima(t *testing.T) capturada {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	require.NotEmpty(t, b.recibidas, "el backend no recibió peticiones")
	return b.recibidas[len(b.recibidas)-1]
}

func nuevoBackend(t *testing.T, status int, cuerpo string) (*backendFalso, *adminapi.Client) {
	t.Helper()
	b := &backendFalso{status: status, cuerpo: cuerpo}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := capturada{
			Metodo:  r.Method,
			Ruta:    r.URL.Path,
			Query:   r.URL.RawQuery,
			Headers: r.Header.Clone(),
			Files:   map[string]string{},
			Tipos:   map[string]string{},
		}
		if mr, err := r.MultipartReader(); err == nil {
			c.Campos = map[string][]string{}
			for {
				p, err := mr.NextPart()
				if err != nil {
					break
				}
				datos, _ := io.ReadAll(p)
				if p.FileName() != "" {
					c.Files[p.FormName()] = p.FileName()
					c.Tipos[p.FormName()] = p.Header.Get("Content-Type")
					continue
				}
				c.Campos[p.FormName()] = append(c.Campos[p.FormName()], string(datos))
			}
		} else {
			c.Cuerpo, _ = io.ReadAll(r.Body)
		}
		b.mu.Lock()
		b.recibidas = append(b.recibidas, c)
		b.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(b.status)
		_, _ = io.WriteString(w, b.cuerpo)
	}))
	t.Cleanup(srv.Close)

	cli := adminapi.New(config.BackendConfig{APIURL: srv.URL + "/api", Timeout: 5 * time.Second}, zerolog.Nop(), nil)
	return b, cli
}

type fuenteFija string

func (f fuenteFija) TokenActual() string { return string(f) }

func png(nombre string) dto.Archivo {
	return dto.Archivo{Nombre: nombre, MIME: "image/png", Datos: []byte("\x89PNG\r\n\x1a\nfalso")}
}

func ptr[T any](v T) *T { return &v }

// ── Sobre y normalización ────────────────────────────────────────────────────

func TestHacer_RespuestaCorrecta(t *testing.T) {
	_, cli := nuevoBackend(t, http.StatusOK, `{"success":true,"data":{"id":4,"nombre":"Vitaminas","estado":"activo"},"message":"ok"}`)

	r := adminapi.NewCategorias(cli).Obtener(context.Background(), 4)

	require.True(t, r.Success)
	assert.Equal(t, int64(4), r.Data.ID)
	assert.Equal(t, "Vitaminas", r.Data.Nombre)
	assert.Equal(t, http.StatusOK, r.Status)
}

func TestHacer_ErrorHTTPConservaMensajeYErrores(t *testing.T) {
	_, cli := nuevoBackend(t, http.StatusUnprocessableEntity,
		`{"success":false,"message":"Datos inválidos","errors":{"nombre":["El nombre ya existe"]}}`)

	r := adminapi.NewCategorias(cli).Crear(context.Background(), dto.CategoriaRequest{Nombre: "x"})

	assert.False(t, r.Success)
	assert.Equal(t, "Datos inválidos", r.Message)
	assert.Equal(t, "El nombre ya existe", r.Errors.Primeros()["nombre"])
	assert.Equal(t, http.StatusUnprocessableEntity, r.Status)
}

func TestHacer_CampoErrorComoMensaje(t *testing.T) {
	_, cli := nuevoBackend(t, http.StatusNotFound, `{"success":false,"error":"Pedido no encontrado"}`)

	r := adminapi.NewPedidos(cli).Obtener(context.Background(), 99)

	assert.False(t, r.Success)
	assert.Equal(t, "Pedido no encontrado", r.Message)
	assert.Equal(t, http.StatusNotFound, r.Status)
}

func TestHacer_ErrorSinMensaje(t *testing.T) {
	_, cli := nuevoBackend(t, http.StatusInternalServerError, `<html>fallo</html>`)

	r := adminapi.NewDashboard(cli).Estadisticas(context.Background())

	assert.False(t, r.Success)
	assert.Equal(t, dto.MensajeErrorConexion, r.Message)
	assert.Equal(t, http.StatusInternalServerError, r.Status)
}

func TestHacer_2xxNoJSONEsError(t *testing.T) {
	_, cli := nuevoBackend(t, http.StatusOK, `no es json`)

	r := adminapi.NewTiendas(cli).Listar(context.Background())

	assert.False(t, r.Success)
	assert.Equal(t, dto.MensajeErrorConexion, r.Message)
}

func TestHacer_2xxVacioEsExito(t *testing.T) {
	_, cli := nuevoBackend(t, http.StatusNoContent, ``)

	r := adminapi.NewCarrusel(cli).Eliminar(context.Background(), 3)

	assert.True(t, r.Success)
	assert.Equal(t, http.StatusNoContent, r.Status)
}

func TestHacer_BackendCaido(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	cli := adminapi.New(config.BackendConfig{APIURL: url, Timeout: time.Second}, zerolog.Nop(), nil)

	r := adminapi.NewClientes(cli).Listar(context.Background(), dto.FiltrosClientes{})

	assert.False(t, r.Success)
	assert.Equal(t, dto.MensajeErrorConexion, r.Message)
	assert.Zero(t, r.Status)
}

func TestHacer_ContextoCancelado(t *testing.T) {
	_, cli := nuevoBackend(t, http.StatusOK, `{"success":true,"data":[]}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := adminapi.NewTiendas(cli).Listar(ctx)

	assert.False(t, r.Success)
	assert.Equal(t, dto.MensajeErrorConexion, r.Message)
}

// ── Interceptor ──────────────────────────────────────────────────────────────

func TestInterceptor_TokenDelContexto(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK, `{"success":true,"data":[]}`)

	adminapi.NewTiendas(cli).Listar(ports.ConToken(context.Background(), "tok-123"))

	h := b.ultima(t).Headers
	assert.Equal(t, "Bearer tok-123", h.Get("Authorization"))
	assert.Equal(t, "application/json", h.Get("Accept"))
	assert.Equal(t, "application/json", h.Get("Content-Type"))
}

func TestInterceptor_SinToken(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK, `{"success":true,"data":[]}`)

	adminapi.NewTiendas(cli).Listar(context.Background())

	assert.Empty(t, b.ultima(t).Headers.Get("Authorization"))
}

func TestInterceptor_FuenteDeRespaldo(t *testing.T) {
	var h http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h = r.Header.Clone()
		_, _ = io.WriteString(w, `{"success":true,"data":[]}`)
	}))
	defer srv.Close()
	cli := adminapi.New(config.BackendConfig{APIURL: srv.URL, Timeout: time.Second}, zerolog.Nop(), fuenteFija("respaldo"))

	adminapi.NewTiendas(cli).Listar(context.Background())
	assert.Equal(t, "Bearer respaldo", h.Get("Authorization"))

	// El token del contexto tiene prioridad.
	adminapi.NewTiendas(cli).Listar(ports.ConToken(context.Background(), "propio"))
	assert.Equal(t, "Bearer propio", h.Get("Authorization"))
}

func TestInterceptor_MultipartConservaBoundary(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK, `{"success":true,"data":{"id":1}}`)

	adminapi.NewCategorias(cli).Crear(context.Background(), dto.CategoriaRequest{Nombre: "Té"})

	assert.Contains(t, b.ultima(t).Headers.Get("Content-Type"), "multipart/form-data; boundary=")
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func TestLogin_Correcto(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK,
		`{"success":true,"data":{"admin":{"id":1,"email":"a@b.pe","tipo":"admin"},"token":"1|abc","expires_in_hours":12}}`)

	r := adminapi.NewAuth(cli).Login(context.Background(), dto.LoginRequest{Email: "a@b.pe", Password: "x"})

	require.True(t, r.Success)
	assert.Equal(t, "1|abc", r.Data.Token)
	req := b.ultima(t)
	assert.Equal(t, "/api/admin/login", req.Ruta)
	var cuerpo map[string]string
	require.NoError(t, json.Unmarshal(req.Cuerpo, &cuerpo))
	assert.Equal(t, "a@b.pe", cuerpo["email"])
}

func TestLogin_RespuestaIncompleta(t *testing.T) {
	_, cli := nuevoBackend(t, http.StatusOK, `{"success":true,"data":{"token":""}}`)

	r := adminapi.NewAuth(cli).Login(context.Background(), dto.LoginRequest{Email: "a@b.pe", Password: "x"})

	assert.False(t, r.Success)
	assert.Equal(t, "Respuesta de login incompleta", r.Message)
}

// ── Categorías ───────────────────────────────────────────────────────────────

func TestCategorias_CrearMultipart(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusCreated, `{"success":true,"data":{"id":9}}`)
	img := png("té verde.png")

	adminapi.NewCategorias(cli).Crear(context.Background(), dto.CategoriaRequest{
		Nombre: "Té", ParentID: ptr(int64(2)), Imagen: &img,
	})

	req := b.ultima(t)
	assert.Equal(t, http.MethodPost, req.Metodo)
	assert.Equal(t, "/api/admin/categorias", req.Ruta)
	assert.Equal(t, []string{"Té"}, req.Campos["nombre"])
	assert.Equal(t, []string{"activo"}, req.Campos["estado"])
	assert.Equal(t, []string{"2"}, req.Campos["parent_id"])
	assert.Equal(t, "té verde.png", req.Files["imagen"])
	assert.Equal(t, "image/png", req.Tipos["imagen"])
	assert.NotContains(t, req.Campos, "_method")
}

func TestCategorias_ActualizarConMetodoPUT(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK, `{"success":true,"data":{"id":9}}`)

	adminapi.NewCategorias(cli).Actualizar(context.Background(), 9, dto.CategoriaRequest{
		Nombre: "Té", EliminarImagen: true,
	})

	req := b.ultima(t)
	assert.Equal(t, http.MethodPost, req.Metodo)
	assert.Equal(t, "/api/admin/categorias/9", req.Ruta)
	assert.Equal(t, []string{"PUT"}, req.Campos["_method"])
	assert.Equal(t, []string{"1"}, req.Campos["eliminar_imagen"])
}

func TestCategorias_ImagenNuevaNoEnviaEliminar(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK, `{"success":true,"data":{"id":9}}`)
	img := png("nueva.png")

	adminapi.NewCategorias(cli).Actualizar(context.Background(), 9, dto.CategoriaRequest{
		Nombre: "Té", Imagen: &img, EliminarImagen: true,
	})

	req := b.ultima(t)
	assert.NotContains(t, req.Campos, "eliminar_imagen")
	assert.Equal(t, "nueva.png", req.Files["imagen"])
}

func TestCategorias_DesactivarYActivar(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK, `{"success":true,"data":{"id":3,"estado":"inactivo"}}`)
	s := adminapi.NewCategorias(cli)

	s.Desactivar(context.Background(), 3)
	assert.Equal(t, http.MethodDelete, b.ultima(t).Metodo)

	s.Activar(context.Background(), 3)
	req := b.ultima(t)
	assert.Equal(t, http.MethodPut, req.Metodo)
	assert.Equal(t, "/api/admin/categorias/3/activar", req.Ruta)
}

// ── Productos ────────────────────────────────────────────────────────────────

func TestProductos_CrearConImagenes(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusCreated, `{"success":true,"data":{"id":50}}`)

	adminapi.NewProductos(cli).Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:               "Omega 3",
		Descripcion:          "Cápsulas",
		Precio:               decimal.RequireFromString("59.90"),
		Descuento:            decimal.NewFromInt(10),
		Stock:                20,
		CategoriaID:          ptr(int64(4)),
		Imagenes:             []dto.Archivo{png("a.png"), png("b.png")},
		ImagenPrincipalIndex: 1,
	})

	req := b.ultima(t)
	assert.Equal(t, "/api/admin/productos", req.Ruta)
	assert.Equal(t, []string{"59.9"}, req.Campos["precio"])
	assert.Equal(t, []string{"10"}, req.Campos["descuento"])
	assert.Equal(t, []string{"20"}, req.Campos["stock"])
	assert.Equal(t, []string{"4"}, req.Campos["categoria_id"])
	assert.Equal(t, "a.png", req.Files["imagenes[0]"])
	assert.Equal(t, "b.png", req.Files["imagenes[1]"])
	assert.Equal(t, []string{"1"}, req.Campos["imagen_principal_index"])
	assert.NotContains(t, req.Campos, "sku")
}

func TestProductos_CrearSinImagenesNoEnviaIndice(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusCreated, `{"success":true,"data":{"id":50}}`)

	adminapi.NewProductos(cli).Crear(context.Background(), dto.CrearProductoRequest{Nombre: "x", Descripcion: "y"})

	assert.NotContains(t, b.ultima(t).Campos, "imagen_principal_index")
}

func TestProductos_ListarDesempaqueta(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK, `{"success":true,"data":{"productos":[{"id":1,"nombre":"A","precio":"10.00"}],
		"pagination":{"current_page":2,"last_page":5,"per_page":1,"total":5,"from":2,"to":2}}}`)

	r := adminapi.NewProductos(cli).Listar(context.Background(), dto.FiltrosProductos{
		Estado: dto.Todos, SinStock: true, Page: 2, PerPage: 1,
	})

	require.True(t, r.Success)
	require.Len(t, r.Data.Items, 1)
	assert.True(t, r.Data.Items[0].Precio.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 5, r.Data.Paginacion.LastPage)
	assert.Equal(t, "page=2&per_page=1&sin_stock=true", b.ultima(t).Query)
}

func TestProductos_ReordenarImagenes(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK, `{"success":true}`)

	adminapi.NewProductos(cli).ReordenarImagenes(context.Background(), 7, map[int64]int{11: 0, 12: 1})

	req := b.ultima(t)
	assert.Equal(t, "/api/admin/productos/7/imagenes/reordenar", req.Ruta)
	assert.JSONEq(t, `{"ordenes":{"11":0,"12":1}}`, string(req.Cuerpo))
}

func TestProductos_AgregarImagenesIndiceOpcional(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK, `{"success":true}`)
	s := adminapi.NewProductos(cli)

	s.AgregarImagenes(context.Background(), 7, dto.AgregarImagenesRequest{Imagenes: []dto.Archivo{png("c.png")}})
	assert.NotContains(t, b.ultima(t).Campos, "imagen_principal_index")

	s.AgregarImagenes(context.Background(), 7, dto.AgregarImagenesRequest{
		Imagenes: []dto.Archivo{png("c.png")}, ImagenPrincipalIndex: ptr(0),
	})
	assert.Equal(t, []string{"0"}, b.ultima(t).Campos["imagen_principal_index"])
}

// ── Carrusel, CyberWow y liquidación ─────────────────────────────────────────

func TestCarrusel_ActualizarSinProductoEnviaVacio(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK, `{"success":true,"data":{"id":2}}`)

	adminapi.NewCarrusel(cli).Actualizar(context.Background(), 2, dto.CarruselRequest{
		Orden: ptr(0), EliminarImagenMobile: true,
	})

	req := b.ultima(t)
	assert.Equal(t, []string{""}, req.Campos["producto_id"])
	assert.Equal(t, []string{"0"}, req.Campos["orden"])
	assert.Equal(t, []string{"activo"}, req.Campos["estado"])
	assert.Equal(t, []string{"1"}, req.Campos["eliminar_imagen_mobile"])
	assert.NotContains(t, req.Campos, "eliminar_imagen")
}

func TestCarrusel_CrearSinOrdenNiProducto(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusCreated, `{"success":true,"data":{"id":2}}`)
	img := png("banner.png")

	adminapi.NewCarrusel(cli).Crear(context.Background(), dto.CarruselRequest{Imagen: &img})

	req := b.ultima(t)
	assert.NotContains(t, req.Campos, "orden")
	assert.NotContains(t, req.Campos, "producto_id")
	assert.Equal(t, "banner.png", req.Files["imagen"])
}

func TestCarrusel_Reordenar(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK, `{"success":true}`)

	adminapi.NewCarrusel(cli).Reordenar(context.Background(), []entity.OrdenItem{{ID: 3, Orden: 0}, {ID: 1, Orden: 1}})

	req := b.ultima(t)
	assert.Equal(t, http.MethodPut, req.Metodo)
	assert.JSONEq(t, `{"items":[{"id":3,"orden":0},{"id":1,"orden":1}]}`, string(req.Cuerpo))
}

func TestCyberWow_CrearPorTipo(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusCreated, `{"success":true,"data":{"id":1}}`)
	img := png("cw.png")

	adminapi.NewCyberWow(cli).Crear(context.Background(), dto.BannerCyberWowRequest{
		Tipo: entity.BannerTiendas, Titulo: "Cyber", Imagen: &img, Tiendas: []int64{4, 8},
	})

	req := b.ultima(t)
	assert.Equal(t, "/api/admin/cyberwow/banners/tiendas", req.Ruta)
	assert.Equal(t, []string{"4"}, req.Campos["tiendas[0]"])
	assert.Equal(t, []string{"8"}, req.Campos["tiendas[1]"])
	assert.NotContains(t, req.Campos, "categoria_id")
}

func TestCyberWow_TipoDesconocidoNoLlamaAlBackend(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK, `{"success":true}`)

	r := adminapi.NewCyberWow(cli).Crear(context.Background(), dto.BannerCyberWowRequest{Tipo: "marca"})

	assert.False(t, r.Success)
	assert.Empty(t, b.recibidas)
}

func TestLiquidacion_ProductosActivos(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK, `{"success":true,"data":{"productos":[{"id":1,"nombre":"A"}],"current_page":1,"last_page":1}}`)

	r := adminapi.NewLiquidacion(cli).ProductosActivos(context.Background())

	require.True(t, r.Success)
	assert.Len(t, r.Data, 1)
	assert.Equal(t, "estado=activo&per_page=1000", b.ultima(t).Query)
}

// ── Pedidos y reclamaciones ──────────────────────────────────────────────────

func TestPedidos_ListarPaginacionFueraDeData(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK, `{"success":true,"data":[{"id":1,"total":"120.50","estado_pedido":"pagado"}],
		"pagination":{"current_page":1,"last_page":3,"per_page":15,"total":31,"from":1,"to":15}}`)

	r := adminapi.NewPedidos(cli).Listar(context.Background(), dto.FiltrosPedidos{
		Estado: "pagado", MontoMin: "100", MontoMax: "abc",
	})

	require.True(t, r.Success)
	assert.Equal(t, entity.PedidoPagado, r.Data.Items[0].EstadoPedido)
	assert.Equal(t, 31, r.Data.Paginacion.Total)
	assert.Equal(t, "estado=pagado&monto_min=100", b.ultima(t).Query)
}

func TestPedidos_ListarSinPaginacion(t *testing.T) {
	_, cli := nuevoBackend(t, http.StatusOK, `{"success":true,"data":[{"id":1},{"id":2}]}`)

	r := adminapi.NewPedidos(cli).Listar(context.Background(), dto.FiltrosPedidos{})

	require.True(t, r.Success)
	assert.Equal(t, 2, r.Data.Paginacion.Total)
	assert.Equal(t, 1, r.Data.Paginacion.LastPage)
}

func TestPedidos_CambiarEstado(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK,
		`{"success":true,"data":{"id":5,"estado_anterior":"pagado","estado_actual":"enviado"}}`)
	s := adminapi.NewPedidos(cli)

	r := s.CambiarEstado(context.Background(), 5, entity.PedidoEnviado)
	require.True(t, r.Success)
	assert.Equal(t, "enviado", r.Data.EstadoActual)
	assert.JSONEq(t, `{"estado_pedido":"enviado"}`, string(b.ultima(t).Cuerpo))

	r = s.CambiarEstado(context.Background(), 5, "perdido")
	assert.False(t, r.Success)
}

func TestPedidos_Estadisticas(t *testing.T) {
	b, cli := nuevoBackend(t, http.StatusOK, `{"success":true,"data":{"resumen":{"total_pedidos":3,"monto_total":"300"}}}`)

	r := adminapi.NewPedidos(cli).Estadisticas(context.Background(), "2024-01-01", "")

	require.True(t, r.Success)
	assert.Equal(t, 3, r.Data.Resumen.TotalPedidos)
	assert.Equal(t, "fecha_inicio=2024-01-01", b.ultima(t).Query)
}

func TestReclamaciones_ListarConEstadisticas(t *testing.T) {
	_, cli := nuevoBackend(t, http.StatusOK, `{"success":true,
		"data":{"data":[{"id":1,"estado":"pendiente"}],"current_page":1,"last_page":2,"per_page":1,"total":2},
		"estadisticas":{"total":2,"pendientes":1}}`)

	r := adminapi.NewReclamaciones(cli).Listar(context.Background(), dto.FiltrosReclamaciones{Estado: dto.Todos})

	require.True(t, r.Success)
	assert.Len(t, r.Data.Items, 1)
	assert.Equal(t, 2, r.Data.Paginacion.LastPage)
	require.NotNil(t, r.Data.Estadisticas)
}

func TestClientes_ListarDesempaqueta(t *testing.T) {
	_, cli := nuevoBackend(t, http.StatusOK,
		`{"success":true,"data":{"clientes":[{"id":1}],"pagination":{"current_page":1,"last_page":1,"total":1}}}`)

	r := adminapi.NewClientes(cli).Listar(context.Background(), dto.FiltrosClientes{})

	require.True(t, r.Success)
	assert.Len(t, r.Data.Items, 1)
	assert.Equal(t, 1, r.Data.Paginacion.Total)
}
