package consola

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

const maxNombreCategoria = 150

// FormularioCategoria alta y edición de categorías con imagen opcional y un nivel de anidamiento.
type FormularioCategoria struct {
	api      ports.CategoriasAPI
	original *entity.Categoria
	// padres son las categorías que pueden elegirse como padre.
	padres []entity.Categoria

	Nombre   string
	Estado   entity.Estado
	ParentID *int64
	Imagen   *SelectorImagen

	base
}

// NewFormularioCategoria abre el formulario; c nil es alta. todas se usa para las opciones de padre.
func NewFormularioCategoria(api ports.CategoriasAPI, c *entity.Categoria, todas []entity.Categoria) *FormularioCategoria {
	f := &FormularioCategoria{
		api:    api,
		Estado: entity.EstadoActivo,
		Imagen: NewSelectorImagen(ReglasCategoria, ""),
		base:   nuevaBase(),
	}
	if c != nil {
		f.original = c
		f.Nombre = c.Nombre
		f.Estado = c.Estado
		f.ParentID = c.ParentID
		f.Imagen = NewSelectorImagen(ReglasCategoria, c.ImagenURL)
	}
	f.padres = OpcionesPadre(todas, c)
	return f
}

// OpcionesPadre filtra las categorías raíz distintas de la que se edita: una subcategoría no
// puede tener hijas.
func OpcionesPadre(todas []entity.Categoria, editando *entity.Categoria) []entity.Categoria {
	out := make([]entity.Categoria, 0, len(todas))
	for _, c := range todas {
		if c.EsSubcategoria() || (editando != nil && c.ID == editando.ID) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (f *FormularioCategoria) Padres() []entity.Categoria { return f.padres }

func (f *FormularioCategoria) Edicion() bool { return f.original != nil }

func (f *FormularioCategoria) Titulo() string {
	if f.Edicion() {
		return "Editar Categoría"
	}
	return "Nueva Categoría"
}

func (f *FormularioCategoria) TextoBoton() string {
	return textoBoton(f.Edicion(), &f.envio, "Crear", "Actualizar")
}

// SeleccionarImagen adopta el archivo o deja el error en el campo imagen.
func (f *FormularioCategoria) SeleccionarImagen(a dto.Archivo) error {
	if err := f.Imagen.Seleccionar(a); err != nil {
		f.errores["imagen"] = err.Error()
		return err
	}
	delete(f.errores, "imagen")
	return nil
}

// Validar acumula los errores de campo.
func (f *FormularioCategoria) Validar() map[string]string {
	e := map[string]string{}
	nombre := strings.TrimSpace(f.Nombre)
	switch {
	case nombre == "":
		e["nombre"] = "El nombre es requerido"
	case utf8.RuneCountInString(nombre) > maxNombreCategoria:
		e["nombre"] = "El nombre no puede exceder 150 caracteres"
	}
	if f.ParentID != nil {
		if err := f.validarPadre(*f.ParentID); err != "" {
			e["parent_id"] = err
		}
	}
	return f.conEntrada(e)
}

func (f *FormularioCategoria) validarPadre(id int64) string {
	if f.original != nil && f.original.ID == id {
		return "Una categoría no puede ser su propia categoría padre"
	}
	for _, c := range f.padres {
		if c.ID == id {
			return ""
		}
	}
	return "Una subcategoría no puede tener subcategorías"
}

func (f *FormularioCategoria) Guardar(ctx context.Context) (Resultado[entity.Categoria], error) {
	if e := f.Validar(); len(e) > 0 {
		return rechazarCampos[entity.Categoria](&f.base, e)
	}
	in := dto.CategoriaRequest{
		Nombre:   strings.TrimSpace(f.Nombre),
		Estado:   f.Estado,
		ParentID: f.ParentID,
		Imagen:   f.Imagen.Archivo(),
	}
	if !f.Edicion() {
		return guardar(ctx, &f.base, func(ctx context.Context) dto.Respuesta[entity.Categoria] {
			return f.api.Crear(ctx, in)
		}, "Categoría creada exitosamente", "Error al guardar la categoría")
	}
	in.EliminarImagen = f.Imagen.DebeEliminar(true)
	return guardar(ctx, &f.base, func(ctx context.Context) dto.Respuesta[entity.Categoria] {
		return f.api.Actualizar(ctx, f.original.ID, in)
	}, "Categoría actualizada exitosamente", "Error al guardar la categoría")
}
