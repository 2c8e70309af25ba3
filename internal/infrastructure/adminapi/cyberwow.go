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

var _ ports.CyberWowAPI = (*CyberWow)(nil)

const rutaCyberWow = "/admin/cyberwow"

// CyberWow adaptador de /admin/cyberwow. Cada tipo de banner se crea en su propia ruta.
type CyberWow struct{ c *Client }

func NewCyberWow(c *Client) *CyberWow { return &CyberWow{c: c} }

func (s *CyberWow) Listar(ctx context.Context) dto.Respuesta[dto.Pagina[entity.BannerCyberWow]] {
	r := hacer[[]entity.BannerCyberWow](ctx, s.c, get(rutaCyberWow, nil))
	return mapear(r, dto.PaginaUnica[entity.BannerCyberWow])
}

func (s *CyberWow) DatosAuxiliares(ctx context.Context) dto.Respuesta[entity.DatosAuxiliaresCyberWow] {
	return hacer[entity.DatosAuxiliaresCyberWow](ctx, s.c, get(rutaCyberWow+"/datos-auxiliares", nil))
}

func (s *CyberWow) Crear(ctx context.Context, in dto.BannerCyberWowRequest) dto.Respuesta[entity.BannerCyberWow] {
	switch in.Tipo {
	case entity.BannerCategoria, entity.BannerTiendas, entity.BannerProducto:
	default:
		return dto.Fallo[entity.BannerCyberWow](fmt.Sprintf("Tipo de banner desconocido: %q", in.Tipo))
	}
	return hacer[entity.BannerCyberWow](ctx, s.c,
		conFormulario(http.MethodPost, rutaCyberWow+ruta("banners", in.Tipo), s.formulario(in)))
}

func (s *CyberWow) Actualizar(ctx context.Context, id int64, in dto.BannerCyberWowRequest) dto.Respuesta[entity.BannerCyberWow] {
	f := s.formulario(in)
	f.metodoPUT()
	return hacer[entity.BannerCyberWow](ctx, s.c, conFormulario(http.MethodPost, rutaCyberWow+ruta("banners", id), f))
}

func (s *CyberWow) formulario(in dto.BannerCyberWowRequest) *formulario {
	f := nuevoFormulario()
	f.campo("titulo", in.Titulo)
	f.campo("estado", string(estadoODefecto(in.Estado)))
	f.archivo("imagen", in.Imagen)
	switch in.Tipo {
	case entity.BannerCategoria:
		f.id("categoria_id", in.CategoriaID)
	case entity.BannerProducto:
		f.id("producto_id", in.ProductoID)
	case entity.BannerTiendas:
		for i, t := range in.Tiendas {
			f.campo(fmt.Sprintf("tiendas[%d]", i), strconv.FormatInt(t, 10))
		}
	}
	return f
}

func (s *CyberWow) Eliminar(ctx context.Context, id int64) dto.Respuesta[json.RawMessage] {
	return hacer[json.RawMessage](ctx, s.c, borrar(rutaCyberWow+ruta("banners", id)))
}
