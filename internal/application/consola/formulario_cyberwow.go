package consola

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// FormularioCyberWow alta y edición de banners de campaña. El tipo fija qué relación se envía.
type FormularioCyberWow struct {
	api      ports.CyberWowAPI
	original *entity.BannerCyberWow
	tipo     string

	TituloBanner string
	Estado       entity.Estado
	CategoriaID  *int64
	ProductoID   *int64
	Tiendas      []int64
	Imagen       *SelectorImagen

	base
}

// CupoOcupado explica por qué no se puede crear un banner del tipo indicado.
func CupoOcupado(tipo string) string {
	switch tipo {
	case entity.BannerCategoria:
		return "Ya existe un banner de categoría activo. Desactívalo primero."
	case entity.BannerTiendas:
		return "Ya existe un banner de tiendas activo. Desactívalo primero."
	case entity.BannerProducto:
		return fmt.Sprintf("Ya existen %d banners de productos activos. Desactiva uno primero.", entity.MaxBannersProducto)
	}
	return fmt.Sprintf("Tipo de banner desconocido: %q", tipo)
}

// NewFormularioCyberWow abre el alta de un banner del tipo dado. Sin datos auxiliares o sin cupo
// devuelve un aviso de error y domain.ErrLimiteAlcanzado.
func NewFormularioCyberWow(api ports.CyberWowAPI, aux *entity.DatosAuxiliaresCyberWow, tipo string) (*FormularioCyberWow, Aviso, error) {
	if aux == nil {
		return nil, Error("Cargando datos..."), domain.ErrNoEncontrado
	}
	if !aux.EspaciosDisponibles.Disponible(tipo) {
		return nil, Error(CupoOcupado(tipo)), domain.ErrLimiteAlcanzado
	}
	return &FormularioCyberWow{
		api:    api,
		tipo:   tipo,
		Estado: entity.EstadoActivo,
		Imagen: NewSelectorImagen(ReglasBanner, ""),
		base:   nuevaBase(),
	}, Aviso{}, nil
}

// EditarCyberWow abre la edición; el tipo se deduce de la relación que trae el banner.
func EditarCyberWow(api ports.CyberWowAPI, b *entity.BannerCyberWow) *FormularioCyberWow {
	f := &FormularioCyberWow{
		api:          api,
		original:     b,
		tipo:         TipoBanner(*b),
		TituloBanner: b.Titulo,
		Estado:       b.Estado,
		CategoriaID:  b.CategoriaID,
		ProductoID:   b.ProductoID,
		Imagen:       NewSelectorImagen(ReglasBanner, b.ImagenURL),
		base:         nuevaBase(),
	}
	for _, t := range b.Tiendas {
		f.Tiendas = append(f.Tiendas, t.ID)
	}
	return f
}

// TipoBanner usa el campo tipo si viene; si no, lo deduce de la relación presente.
func TipoBanner(b entity.BannerCyberWow) string {
	switch {
	case b.Tipo != "":
		return b.Tipo
	case b.CategoriaID != nil:
		return entity.BannerCategoria
	case len(b.Tiendas) > 0:
		return entity.BannerTiendas
	case b.ProductoID != nil:
		return entity.BannerProducto
	}
	return ""
}

func (f *FormularioCyberWow) Tipo() string { return f.tipo }

func (f *FormularioCyberWow) Edicion() bool { return f.original != nil }

func (f *FormularioCyberWow) Titulo() string {
	if f.Edicion() {
		return "Editar Banner"
	}
	return "Nuevo Banner"
}

func (f *FormularioCyberWow) TextoBoton() string {
	return textoBoton(f.Edicion(), &f.envio, "Crear Banner", "Actualizar Banner")
}

// Guardar corta en el primer error: título, imagen al crear y la relación propia del tipo.
func (f *FormularioCyberWow) Guardar(ctx context.Context) (Resultado[entity.BannerCyberWow], error) {
	if res, err := rechazoEntrada[entity.BannerCyberWow](&f.base); err != nil {
		return res, err
	}
	if strings.TrimSpace(f.TituloBanner) == "" {
		return rechazar[entity.BannerCyberWow](&f.base, "titulo", "El título es obligatorio")
	}
	if !f.Edicion() && f.Imagen.Archivo() == nil {
		return rechazar[entity.BannerCyberWow](&f.base, "imagen", "La imagen es obligatoria")
	}
	switch f.tipo {
	case entity.BannerCategoria:
		if f.CategoriaID == nil {
			return rechazar[entity.BannerCyberWow](&f.base, "categoria_id", "Debes seleccionar una categoría")
		}
	case entity.BannerProducto:
		if f.ProductoID == nil {
			return rechazar[entity.BannerCyberWow](&f.base, "producto_id", "Debes seleccionar un producto")
		}
	case entity.BannerTiendas:
		if len(f.Tiendas) == 0 {
			return rechazar[entity.BannerCyberWow](&f.base, "tiendas", "Debes seleccionar al menos una tienda")
		}
	}
	in := dto.BannerCyberWowRequest{
		Tipo:        f.tipo,
		Titulo:      strings.TrimSpace(f.TituloBanner),
		Estado:      f.Estado,
		Imagen:      f.Imagen.Archivo(),
		CategoriaID: f.CategoriaID,
		ProductoID:  f.ProductoID,
		Tiendas:     f.Tiendas,
	}
	if !f.Edicion() {
		return guardar(ctx, &f.base, func(ctx context.Context) dto.Respuesta[entity.BannerCyberWow] {
			return f.api.Crear(ctx, in)
		}, "Banner creado exitosamente", "Error al guardar")
	}
	return guardar(ctx, &f.base, func(ctx context.Context) dto.Respuesta[entity.BannerCyberWow] {
		return f.api.Actualizar(ctx, f.original.ID, in)
	}, "Banner actualizado exitosamente", "Error al guardar")
}
