package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// ── Fakes ─────────────────────────────────────────────────────────────────────

type productosFalsos struct {
	ports.ProductosAPI

	mu          sync.Mutex
	producto    entity.Producto
	creado      *dto.CrearProductoRequest
	actualizado *dto.ActualizarProductoRequest
	eliminadas  []int64
	principal   int64
}

func nuevosProductos() *productosFalsos {
	return &productosFalsos{producto: entity.Producto{
		ID:          5,
		Nombre:      "Omega 3",
		Descripcion: "Cápsulas",
		Precio:      decimal.NewFromInt(50),
		Stock:       10,
		Estado:      entity.EstadoActivo,
		Imagenes: []entity.ProductoImagen{
			{ID: 7, Orden: 1, EsPrincipal: true},
			{ID: 8, Orden: 2},
		},
	}}
}

func (f *productosFalsos) Obtener(_ context.Context, id int64) dto.Respuesta[entity.Producto] {
	if id != f.producto.ID {
		return dto.Respuesta[entity.Producto]{Message: "Producto no encontrado", Status: http.StatusNotFound}
	}
	return dto.Exito(f.producto, "")
}

func (f *productosFalsos) Crear(_ context.Context, in dto.CrearProductoRequest) dto.Respuesta[entity.Producto] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creado = &in
	return dto.Exito(entity.Producto{ID: 6, Nombre: in.Nombre, Precio: in.Precio}, "Producto creado")
}

func (f *productosFalsos) Actualizar(_ context.Context, id int64, in dto.ActualizarProductoRequest) dto.Respuesta[entity.Producto] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actualizado = &in
	return dto.Exito(entity.Producto{ID: id, Nombre: in.Nombre}, "Producto actualizado")
}

func (f *productosFalsos) EliminarImagen(_ context.Context, _, imagenID int64) dto.Respuesta[json.RawMessage] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.eliminadas = append(f.eliminadas, imagenID)
	return dto.Exito[json.RawMessage](nil, "")
}

func (f *productosFalsos) CambiarImagenPrincipal(_ context.Context, _, imagenID int64) dto.Respuesta[entity.ProductoImagen] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.principal = imagenID
	return dto.Exito(entity.ProductoImagen{ID: imagenID, EsPrincipal: true}, "")
}

// ── Productos ─────────────────────────────────────────────────────────────────

func TestGuardarProducto_NumerosMalEscritosNoLleganAlBackend(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp := e.hacer(t, multipartReq(t, http.MethodPost, "/api/productos", map[string]string{
		"nombre":      "Colágeno",
		"descripcion": "Polvo",
		"precio":      "abc",
		"stock":       "diez",
		"descuento":   "1,5",
	}))
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	r := leerResultado(t, resp)
	assert.Equal(t, map[string]string{
		"precio":    "El precio debe ser un número válido",
		"stock":     "El stock debe ser un número entero",
		"descuento": "El descuento debe ser un número válido",
	}, r.Aviso.Campos)
	assert.Nil(t, e.productos.creado, "no debe llamarse al backend")
}

func TestGuardarProducto_CategoriaIlegibleSeSumaALaValidacion(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp := e.hacer(t, multipartReq(t, http.MethodPost, "/api/productos", map[string]string{
		"categoria_id": "vitaminas",
		"precio":       "-3",
	}))
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	r := leerResultado(t, resp)
	assert.Equal(t, "La selección no es válida", r.Aviso.Campos["categoria_id"])
	assert.Equal(t, "El precio no puede ser negativo", r.Aviso.Campos["precio"])
	assert.Equal(t, "El nombre es requerido", r.Aviso.Campos["nombre"])
	assert.Nil(t, e.productos.creado)
}

func TestGuardarProducto_Crea(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp := e.hacer(t, multipartReq(t, http.MethodPost, "/api/productos", map[string]string{
		"nombre":       "Colágeno",
		"descripcion":  "Polvo",
		"precio":       "89.90",
		"descuento":    "10",
		"stock":        "4",
		"categoria_id": "2",
	}))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	r := leerResultado(t, resp)
	assert.Equal(t, "Producto creado correctamente", r.Aviso.Mensaje)
	require.NotNil(t, e.productos.creado)
	assert.True(t, decimal.RequireFromString("89.90").Equal(e.productos.creado.Precio))
	assert.True(t, decimal.NewFromInt(10).Equal(e.productos.creado.Descuento))
	assert.Equal(t, 4, e.productos.creado.Stock)
	require.NotNil(t, e.productos.creado.CategoriaID)
	assert.Equal(t, int64(2), *e.productos.creado.CategoriaID)
}

func TestGuardarProducto_EditaYEliminaImagen(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp := e.hacer(t, multipartReq(t, http.MethodPut, "/api/productos/5", map[string]string{
		"nombre":            "Omega 3 Plus",
		"descripcion":       "Cápsulas blandas",
		"precio":            "55.5",
		"stock":             "12",
		"eliminar_imagenes": "8",
	}))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	r := leerResultado(t, resp)
	assert.Equal(t, "Producto actualizado correctamente", r.Aviso.Mensaje)
	require.NotNil(t, e.productos.actualizado)
	assert.Equal(t, "Omega 3 Plus", e.productos.actualizado.Nombre)
	assert.True(t, decimal.RequireFromString("55.5").Equal(e.productos.actualizado.Precio))
	assert.Equal(t, 12, e.productos.actualizado.Stock)
	assert.Equal(t, []int64{8}, e.productos.eliminadas)
}

func TestGuardarProducto_EdicionConIdsIlegibles(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp := e.hacer(t, multipartReq(t, http.MethodPut, "/api/productos/5", map[string]string{
		"nombre":            "Omega 3",
		"descripcion":       "Cápsulas",
		"eliminar_imagenes": "ocho",
	}))
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	r := leerResultado(t, resp)
	assert.Equal(t, "La selección no es válida", r.Aviso.Campos["eliminar_imagenes"])
	assert.Nil(t, e.productos.actualizado)
	assert.Empty(t, e.productos.eliminadas)
}

func TestGuardarProducto_NoEncontrado(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp := e.hacer(t, multipartReq(t, http.MethodPut, "/api/productos/99", map[string]string{"nombre": "x"}))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestImagenPrincipal_MarcaUnaExistente(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp := e.hacer(t, httptest.NewRequest(http.MethodPut, "/api/productos/5/imagenes/8/principal", nil))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	r := leerResultado(t, resp)
	assert.Equal(t, "Imagen principal actualizada", r.Aviso.Mensaje)
	assert.Equal(t, int64(8), e.productos.principal)

	var imgs []struct {
		ID          int64 `json:"id"`
		EsPrincipal bool  `json:"es_principal"`
	}
	require.NoError(t, json.Unmarshal(r.Data, &imgs))
	require.Len(t, imgs, 2)
	assert.False(t, imgs[0].EsPrincipal)
	assert.True(t, imgs[1].EsPrincipal)
}

func TestImagenPrincipal_ImagenAjena(t *testing.T) {
	e := nuevoEntorno(t, comprobanteFalso{})
	resp := e.hacer(t, httptest.NewRequest(http.MethodPut, "/api/productos/5/imagenes/99/principal", nil))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Zero(t, e.productos.principal)
}
