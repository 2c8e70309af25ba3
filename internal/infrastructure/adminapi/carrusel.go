package adminapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

var _ ports.CarruselAPI = (*Carrusel)(nil)

const rutaCarrusel = "/admin/carrusel"

// Carrusel adaptador de /admin/carrusel. Los ítems se borran de verdad.
type Carrusel struct{ c *Client }

func NewCarrusel(c *Client) *Carrusel { return &Carrusel{c: c} }

func (s *Carrusel) Listar(ctx context.Context, f dto.FiltrosCarrusel) dto.Respuesta[dto.Pagina[entity.ItemCarrusel]] {
	r := hacer[[]entity.ItemCarrusel](ctx, s.c, get(rutaCarrusel, f.Query()))
	return mapear(r, dto.PaginaUnica[entity.ItemCarrusel])
}

func (s *Carrusel) Obtener(ctx context.Context, id int64) dto.Respuesta[entity.ItemCarrusel] {
	return hacer[entity.ItemCarrusel](ctx, s.c, get(rutaCarrusel+ruta(id), nil))
}

func (s *Carrusel) Crear(ctx context.Context, in dto.CarruselRequest) dto.Respuesta[entity.ItemCarrusel] {
	f := s.formulario(in)
	f.id("producto_id", in.ProductoID)
	return hacer[entity.ItemCarrusel](ctx, s.c, conFormulario(http.MethodPost, rutaCarrusel, f))
}

// Actualizar siempre envía producto_id; vacío deja el ítem sin producto.
func (s *Carrusel) Actualizar(ctx context.Context, id int64, in dto.CarruselRequest) dto.Respuesta[entity.ItemCarrusel] {
	f := s.formulario(in)
	f.metodoPUT()
	if in.ProductoID != nil {
		f.id("producto_id", in.ProductoID)
	} else {
		f.campo("producto_id", "")
	}
	f.bandera("eliminar_imagen", in.EliminarImagen && in.Imagen == nil)
	f.bandera("eliminar_imagen_mobile", in.EliminarImagenMobile && in.ImagenMobile == nil)
	return hacer[entity.ItemCarrusel](ctx, s.c, conFormulario(http.MethodPost, rutaCarrusel+ruta(id), f))
}

func (s *Carrusel) formulario(in dto.CarruselRequest) *formulario {
	f := nuevoFormulario()
	f.archivo("imagen", in.Imagen)
	f.archivo("imagen_mobile", in.ImagenMobile)
	if in.Orden != nil {
		f.entero("orden", *in.Orden)
	}
	f.campo("estado", string(estadoODefecto(in.Estado)))
	return f
}

func (s *Carrusel) Eliminar(ctx context.Context, id int64) dto.Respuesta[json.RawMessage] {
	return hacer[json.RawMessage](ctx, s.c, borrar(rutaCarrusel+ruta(id)))
}

func (s *Carrusel) CambiarEstado(ctx context.Context, id int64) dto.Respuesta[entity.ItemCarrusel] {
	return hacer[entity.ItemCarrusel](ctx, s.c, conJSON(http.MethodPut, rutaCarrusel+ruta(id, "estado"), nil))
}

// Reordenar envía {items: [{id, orden}]}.
func (s *Carrusel) Reordenar(ctx context.Context, items []entity.OrdenItem) dto.Respuesta[json.RawMessage] {
	cuerpo := struct {
		Items []entity.OrdenItem `json:"items"`
	}{Items: items}
	return hacer[json.RawMessage](ctx, s.c, conJSON(http.MethodPut, rutaCarrusel+"/reordenar", cuerpo))
}

func (s *Carrusel) DesvincularProducto(ctx context.Context, id int64) dto.Respuesta[entity.ItemCarrusel] {
	return hacer[entity.ItemCarrusel](ctx, s.c,
		conJSON(http.MethodPut, rutaCarrusel+ruta(id, "desvincular-producto"), nil))
}

func (s *Carrusel) ProductosDisponibles(ctx context.Context) dto.Respuesta[[]entity.ProductoResumen] {
	return hacer[[]entity.ProductoResumen](ctx, s.c, get(rutaProductos+"/disponibles-carrusel", nil))
}
