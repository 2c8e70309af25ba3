package dto

import (
	"encoding/json"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// CategoriaRequest para crear o actualizar una categoría (multipart).
type CategoriaRequest struct {
	Nombre         string
	Estado         entity.Estado
	ParentID       *int64
	Imagen         *Archivo
	EliminarImagen bool
}

// EtiquetaRequest para crear o actualizar una etiqueta (multipart).
type EtiquetaRequest struct {
	Nombre         string
	Slug           string
	Estado         entity.Estado
	Imagen         *Archivo
	EliminarImagen bool
}

// BlogRequest para crear o actualizar un blog (multipart).
// ContenidoFlexible nil no se envía; si no, viaja como texto JSON.
type BlogRequest struct {
	Titulo            string
	Slug              string
	MetaTitle         string
	MetaDescription   string
	Resumen           string
	ContenidoFlexible json.RawMessage
	Portada           *Archivo
	EliminarPortada   bool
}

// EtiquetasPaginadas forma cruda del listado de etiquetas.
type EtiquetasPaginadas struct {
	Etiquetas  []entity.Etiqueta `json:"etiquetas"`
	Pagination Paginacion        `json:"pagination"`
}

// BlogsPaginados forma cruda del listado de blogs; pagination puede faltar.
type BlogsPaginados struct {
	Blogs      []entity.Blog `json:"blogs"`
	Pagination *Paginacion   `json:"pagination,omitempty"`
}

// CambioToggle es la respuesta de los endpoints /toggle: según el backend trae la entidad
// actualizada (estado) o solo el marcador nuevo_estado.
type CambioToggle struct {
	ID          int64         `json:"id"`
	Estado      entity.Estado `json:"estado,omitempty"`
	NuevoEstado entity.Estado `json:"nuevo_estado,omitempty"`
}

// Resultado devuelve el estado en que quedó la entidad.
func (c CambioToggle) Resultado() entity.Estado {
	if c.NuevoEstado != "" {
		return c.NuevoEstado
	}
	return c.Estado
}
