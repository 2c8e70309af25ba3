package consola

import (
	"context"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// FormularioCarrusel alta y edición de diapositivas con imagen de escritorio y móvil.
type FormularioCarrusel struct {
	api      ports.CarruselAPI
	original *entity.ItemCarrusel

	Orden        *int
	Estado       entity.Estado
	ProductoID   *int64
	Imagen       *SelectorImagen
	ImagenMobile *SelectorImagen

	base
}

func NewFormularioCarrusel(api ports.CarruselAPI, it *entity.ItemCarrusel) *FormularioCarrusel {
	f := &FormularioCarrusel{
		api:          api,
		Estado:       entity.EstadoActivo,
		Imagen:       NewSelectorImagen(ReglasBanner, ""),
		ImagenMobile: NewSelectorImagen(ReglasBanner, ""),
		base:         nuevaBase(),
	}
	if it != nil {
		orden := it.Orden
		f.original = it
		f.Orden = &orden
		f.Estado = it.Estado
		f.ProductoID = it.ProductoID
		f.Imagen = NewSelectorImagen(ReglasBanner, it.ImagenURL)
		f.ImagenMobile = NewSelectorImagen(ReglasBanner, it.ImagenMobileURL)
	}
	return f
}

func (f *FormularioCarrusel) Edicion() bool { return f.original != nil }

func (f *FormularioCarrusel) Titulo() string {
	if f.Edicion() {
		return "Editar Imagen del Carrusel"
	}
	return "Agregar Imagen al Carrusel"
}

func (f *FormularioCarrusel) TextoBoton() string {
	return textoBoton(f.Edicion(), &f.envio, "Agregar", "Actualizar")
}

// Guardar corta en el primer error: imagen al crear y orden no negativo.
func (f *FormularioCarrusel) Guardar(ctx context.Context) (Resultado[entity.ItemCarrusel], error) {
	if res, err := rechazoEntrada[entity.ItemCarrusel](&f.base); err != nil {
		return res, err
	}
	if !f.Edicion() && f.Imagen.Archivo() == nil {
		return rechazar[entity.ItemCarrusel](&f.base, "imagen", "La imagen es requerida")
	}
	if f.Orden != nil && *f.Orden < 0 {
		return rechazar[entity.ItemCarrusel](&f.base, "orden", "El orden debe ser mayor o igual a 0")
	}
	in := dto.CarruselRequest{
		Orden:        f.Orden,
		Estado:       f.Estado,
		ProductoID:   f.ProductoID,
		Imagen:       f.Imagen.Archivo(),
		ImagenMobile: f.ImagenMobile.Archivo(),
	}
	if !f.Edicion() {
		return guardar(ctx, &f.base, func(ctx context.Context) dto.Respuesta[entity.ItemCarrusel] {
			return f.api.Crear(ctx, in)
		}, "Imagen agregada exitosamente", "Error al guardar la imagen")
	}
	in.EliminarImagen = f.Imagen.DebeEliminar(true)
	in.EliminarImagenMobile = f.ImagenMobile.DebeEliminar(true)
	return guardar(ctx, &f.base, func(ctx context.Context) dto.Respuesta[entity.ItemCarrusel] {
		return f.api.Actualizar(ctx, f.original.ID, in)
	}, "Imagen actualizada exitosamente", "Error al guardar la imagen")
}
