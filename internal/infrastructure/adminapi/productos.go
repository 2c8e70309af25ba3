package adminapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

var _ ports.ProductosAPI = (*Productos)(nil)

const rutaProductos = "/admin/productos"

// Productos adaptador de /admin/productos y su galería de imágenes.
type Productos struct{ c *Client }

func NewProductos(c *Client) *Productos { return &Productos{c: c} }

func (s *Productos) Listar(ctx context.Context, f dto.FiltrosProductos) dto.Respuesta[dto.Pagina[entity.Producto]] {
	r := hacer[dto.ProductosPaginados](ctx, s.c, get(rutaProductos, f.Query()))
	return mapear(r, func(p dto.ProductosPaginados) dto.Pagina[entity.Producto] {
		if p.Productos == nil {
			p.Productos = []entity.Producto{}
		}
		return dto.Pagina[entity.Producto]{Items: p.Productos, Paginacion: p.Pagination}
	})
}

func (s *Productos) Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Producto] {
	return hacer[entity.Producto](ctx, s.c, get(rutaProductos+ruta(id), nil))
}

// Crear envía datos e imágenes en un solo multipart: imagenes[i] más imagen_principal_index.
func (s *Productos) Crear(ctx context.Context, in dto.CrearProductoRequest) dto.Respuesta[entity.Producto] {
	f := nuevoFormulario()
	f.campo("nombre", in.Nombre)
	f.campo("descripcion", in.Descripcion)
	f.campo("precio", in.Precio.String())
	f.campo("descuento", in.Descuento.String())
	f.entero("stock", in.Stock)
	f.campo("estado", string(estadoODefecto(in.Estado)))
	f.opcional("sku", in.SKU)
	f.id("categoria_id", in.CategoriaID)
	f.id("tienda_id", in.TiendaID)
	f.opcional("beneficios", in.Beneficios)
	f.opcional("modo_uso", in.ModoUso)
	f.opcional("detalle", in.Detalle)
	for i := range in.Imagenes {
		f.archivo(fmt.Sprintf("imagenes[%d]", i), &in.Imagenes[i])
	}
	if len(in.Imagenes) > 0 {
		f.entero("imagen_principal_index", in.ImagenPrincipalIndex)
	}
	return hacer[entity.Producto](ctx, s.c, conFormulario(http.MethodPost, rutaProductos, f))
}

// Actualizar usa PUT con cuerpo JSON; las imágenes se gestionan con los métodos de galería.
func (s *Productos) Actualizar(ctx context.Context, id int64, in dto.ActualizarProductoRequest) dto.Respuesta[entity.Producto] {
	return hacer[entity.Producto](ctx, s.c, conJSON(http.MethodPut, rutaProductos+ruta(id), in))
}

func (s *Productos) Desactivar(ctx context.Context, id int64) dto.Respuesta[entity.Producto] {
	return hacer[entity.Producto](ctx, s.c, borrar(rutaProductos+ruta(id)))
}

func (s *Productos) Activar(ctx context.Context, id int64) dto.Respuesta[entity.Producto] {
	return hacer[entity.Producto](ctx, s.c, conJSON(http.MethodPut, rutaProductos+ruta(id, "activar"), nil))
}

// ── Galería ──────────────────────────────────────────────────────────────────

func (s *Productos) AgregarImagenes(ctx context.Context, id int64, in dto.AgregarImagenesRequest) dto.Respuesta[json.RawMessage] {
	f := nuevoFormulario()
	for i := range in.Imagenes {
		f.archivo(fmt.Sprintf("imagenes[%d]", i), &in.Imagenes[i])
	}
	if in.ImagenPrincipalIndex != nil {
		f.entero("imagen_principal_index", *in.ImagenPrincipalIndex)
	}
	return hacer[json.RawMessage](ctx, s.c, conFormulario(http.MethodPost, rutaProductos+ruta(id, "imagenes"), f))
}

func (s *Productos) EliminarImagen(ctx context.Context, id, imagenID int64) dto.Respuesta[json.RawMessage] {
	return hacer[json.RawMessage](ctx, s.c, borrar(rutaProductos+ruta(id, "imagenes", imagenID)))
}

// ReordenarImagenes envía {ordenes: {imagenID: orden}}.
func (s *Productos) ReordenarImagenes(ctx context.Context, id int64, ordenes map[int64]int) dto.Respuesta[json.RawMessage] {
	cuerpo := map[string]map[string]int{"ordenes": {}}
	for img, orden := range ordenes {
		cuerpo["ordenes"][strconv.FormatInt(img, 10)] = orden
	}
	return hacer[json.RawMessage](ctx, s.c, conJSON(http.MethodPut, rutaProductos+ruta(id, "imagenes", "reordenar"), cuerpo))
}

func (s *Productos) CambiarImagenPrincipal(ctx context.Context, id, imagenID int64) dto.Respuesta[entity.ProductoImagen] {
	return hacer[entity.ProductoImagen](ctx, s.c,
		conJSON(http.MethodPut, rutaProductos+ruta(id, "imagenes", imagenID, "principal"), nil))
}

func (s *Productos) ActualizarImagen(ctx context.Context, id, imagenID int64, altText string) dto.Respuesta[entity.ProductoImagen] {
	return hacer[entity.ProductoImagen](ctx, s.c,
		conJSON(http.MethodPut, rutaProductos+ruta(id, "imagenes", imagenID), map[string]string{"alt_text": altText}))
}
