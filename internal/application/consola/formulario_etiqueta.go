package consola

import (
	"context"
	"strings"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/pkg/slug"
)

// FormularioEtiqueta alta y edición de etiquetas. La imagen es obligatoria al crear.
type FormularioEtiqueta struct {
	api      ports.EtiquetasAPI
	original *entity.Etiqueta

	Nombre string
	Slug   string
	Estado entity.Estado
	Imagen *SelectorImagen
	// slugManual deja de regenerar el slug al cambiar el nombre.
	slugManual bool

	base
}

func NewFormularioEtiqueta(api ports.EtiquetasAPI, e *entity.Etiqueta) *FormularioEtiqueta {
	f := &FormularioEtiqueta{api: api, Estado: entity.EstadoActivo, Imagen: NewSelectorImagen(ReglasBanner, ""), base: nuevaBase()}
	if e != nil {
		f.original = e
		f.Nombre = e.Nombre
		f.Slug = e.Slug
		f.Estado = e.Estado
		f.Imagen = NewSelectorImagen(ReglasBanner, e.ImagenURL)
		f.slugManual = true
	}
	return f
}

func (f *FormularioEtiqueta) Edicion() bool { return f.original != nil }

func (f *FormularioEtiqueta) Titulo() string {
	if f.Edicion() {
		return "Editar Etiqueta"
	}
	return "Nueva Etiqueta"
}

func (f *FormularioEtiqueta) TextoBoton() string {
	return textoBoton(f.Edicion(), &f.envio, "Crear Etiqueta", "Actualizar Etiqueta")
}

// CambiarNombre actualiza el nombre y, si el slug no se editó a mano, lo regenera.
func (f *FormularioEtiqueta) CambiarNombre(n string) {
	f.Nombre = n
	if !f.slugManual {
		f.Slug = slug.Generar(n)
	}
}

// CambiarSlug fija el slug a mano.
func (f *FormularioEtiqueta) CambiarSlug(s string) {
	f.Slug = s
	f.slugManual = true
}

func (f *FormularioEtiqueta) SeleccionarImagen(a dto.Archivo) error {
	if err := f.Imagen.Seleccionar(a); err != nil {
		f.errores["imagen"] = err.Error()
		return err
	}
	delete(f.errores, "imagen")
	return nil
}

// Guardar corta en el primer error: nombre y, al crear, imagen.
func (f *FormularioEtiqueta) Guardar(ctx context.Context) (Resultado[entity.Etiqueta], error) {
	if strings.TrimSpace(f.Nombre) == "" {
		return rechazar[entity.Etiqueta](&f.base, "nombre", "El nombre es requerido")
	}
	s := strings.TrimSpace(f.Slug)
	if s == "" {
		s = slug.Generar(f.Nombre)
	}
	in := dto.EtiquetaRequest{Nombre: f.Nombre, Slug: s, Estado: f.Estado, Imagen: f.Imagen.Archivo()}

	if !f.Edicion() {
		if in.Imagen == nil {
			return rechazar[entity.Etiqueta](&f.base, "imagen", "La imagen es requerida")
		}
		return guardar(ctx, &f.base, func(ctx context.Context) dto.Respuesta[entity.Etiqueta] {
			return f.api.Crear(ctx, in)
		}, "Etiqueta creada exitosamente", "Error al crear etiqueta")
	}
	in.EliminarImagen = f.Imagen.DebeEliminar(true)
	return guardar(ctx, &f.base, func(ctx context.Context) dto.Respuesta[entity.Etiqueta] {
		return f.api.Actualizar(ctx, f.original.ID, in)
	}, "Etiqueta actualizada exitosamente", "Error al actualizar etiqueta")
}
