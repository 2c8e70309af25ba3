package adminapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

var _ ports.LiquidacionAPI = (*Liquidacion)(nil)

const rutaLiquidacion = "/admin/liquidacion"

// Liquidacion adaptador de /admin/liquidacion.
type Liquidacion struct{ c *Client }

func NewLiquidacion(c *Client) *Liquidacion { return &Liquidacion{c: c} }

func (s *Liquidacion) Listar(ctx context.Context) dto.Respuesta[dto.Pagina[entity.Liquidacion]] {
	r := hacer[[]entity.Liquidacion](ctx, s.c, get(rutaLiquidacion, nil))
	return mapear(r, dto.PaginaUnica[entity.Liquidacion])
}

func (s *Liquidacion) Obtener(ctx context.Context, id int64) dto.Respuesta[entity.Liquidacion] {
	return hacer[entity.Liquidacion](ctx, s.c, get(rutaLiquidacion+ruta(id), nil))
}

func (s *Liquidacion) Crear(ctx context.Context, in dto.LiquidacionRequest) dto.Respuesta[entity.Liquidacion] {
	return hacer[entity.Liquidacion](ctx, s.c, conFormulario(http.MethodPost, rutaLiquidacion, s.formulario(in)))
}

func (s *Liquidacion) Actualizar(ctx context.Context, id int64, in dto.LiquidacionRequest) dto.Respuesta[entity.Liquidacion] {
	f := s.formulario(in)
	f.metodoPUT()
	f.bandera("eliminar_imagen", in.EliminarImagen && in.Imagen == nil)
	return hacer[entity.Liquidacion](ctx, s.c, conFormulario(http.MethodPost, rutaLiquidacion+ruta(id), f))
}

func (s *Liquidacion) formulario(in dto.LiquidacionRequest) *formulario {
	f := nuevoFormulario()
	f.id("producto_id", &in.ProductoID)
	f.entero("orden", in.Orden)
	f.archivo("imagen", in.Imagen)
	return f
}

func (s *Liquidacion) Eliminar(ctx context.Context, id int64) dto.Respuesta[json.RawMessage] {
	return hacer[json.RawMessage](ctx, s.c, borrar(rutaLiquidacion+ruta(id)))
}

// SiguienteOrden acepta el orden dentro de data o en la raíz del sobre.
func (s *Liquidacion) SiguienteOrden(ctx context.Context) dto.Respuesta[dto.SiguienteOrden] {
	r, body := hacerCrudo[dto.SiguienteOrden](ctx, s.c, get(rutaLiquidacion+"/siguiente-orden", nil))
	if !r.Success || r.Data.Orden > 0 || len(body) == 0 {
		return r
	}
	var raiz dto.SiguienteOrden
	if err := json.Unmarshal(body, &raiz); err == nil {
		r.Data = raiz
	}
	return r
}

// ProductosActivos lista hasta 1000 productos activos para el selector.
func (s *Liquidacion) ProductosActivos(ctx context.Context) dto.Respuesta[[]entity.ProductoResumen] {
	q := dto.FiltrosProductos{Estado: string(entity.EstadoActivo), PerPage: 1000}.Query()
	r := hacer[dto.ProductosLiquidacion](ctx, s.c, get(rutaProductos, q))
	return mapear(r, func(p dto.ProductosLiquidacion) []entity.ProductoResumen {
		if p.Productos == nil {
			return []entity.ProductoResumen{}
		}
		return p.Productos
	})
}
