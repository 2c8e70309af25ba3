package consola

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/pkg/slug"
)

// MensajeJSONInvalido se muestra bajo contenido_flexible cuando no es JSON.
const MensajeJSONInvalido = "El JSON ingresado no es válido. Verifica la sintaxis."

// FormularioBlog alta y edición de entradas del blog. ContenidoFlexible es texto libre que debe
// ser JSON válido si no está vacío.
type FormularioBlog struct {
	api      ports.BlogsAPI
	original *entity.Blog

	Titulo            string
	Slug              string
	MetaTitle         string
	MetaDescription   string
	Resumen           string
	ContenidoFlexible string
	Portada           *SelectorImagen
	slugManual        bool

	base
}

func NewFormularioBlog(api ports.BlogsAPI, b *entity.Blog) *FormularioBlog {
	f := &FormularioBlog{api: api, Portada: NewSelectorImagen(ReglasBanner, ""), base: nuevaBase()}
	if b == nil {
		return f
	}
	f.original = b
	f.Titulo = b.Titulo
	f.Slug = b.Slug
	f.MetaTitle = b.MetaTitle
	f.MetaDescription = b.MetaDescription
	f.Resumen = b.Resumen
	f.ContenidoFlexible = JSONLegible(b.ContenidoFlexible)
	f.Portada = NewSelectorImagen(ReglasBanner, b.PortadaURL)
	f.slugManual = true
	return f
}

// JSONLegible indenta raw con dos espacios. null o vacío dan "".
func JSONLegible(raw json.RawMessage) string {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 || bytes.Equal(t, []byte("null")) {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, t, "", "  "); err != nil {
		return string(t)
	}
	return buf.String()
}

func (f *FormularioBlog) Edicion() bool { return f.original != nil }

func (f *FormularioBlog) TituloModal() string {
	if f.Edicion() {
		return "Editar Blog"
	}
	return "Nuevo Blog"
}

func (f *FormularioBlog) TextoBoton() string {
	return textoBoton(f.Edicion(), &f.envio, "Crear Blog", "Actualizar Blog")
}

func (f *FormularioBlog) CambiarTitulo(t string) {
	f.Titulo = t
	if !f.slugManual {
		f.Slug = slug.Generar(t)
	}
}

func (f *FormularioBlog) CambiarSlug(s string) {
	f.Slug = s
	f.slugManual = true
}

func (f *FormularioBlog) SeleccionarPortada(a dto.Archivo) error {
	if err := f.Portada.Seleccionar(a); err != nil {
		f.errores["portada"] = err.Error()
		return err
	}
	delete(f.errores, "portada")
	return nil
}

// contenido devuelve el JSON compacto o nil si el texto está vacío. ok es false si no es JSON.
func (f *FormularioBlog) contenido() (json.RawMessage, bool) {
	t := strings.TrimSpace(f.ContenidoFlexible)
	if t == "" {
		return nil, true
	}
	if !json.Valid([]byte(t)) {
		return nil, false
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(t)); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

// Guardar corta en el primer error: título, slug, JSON y, al crear, portada.
func (f *FormularioBlog) Guardar(ctx context.Context) (Resultado[entity.Blog], error) {
	if strings.TrimSpace(f.Titulo) == "" {
		return rechazar[entity.Blog](&f.base, "titulo", "El título es requerido")
	}
	if strings.TrimSpace(f.Slug) == "" {
		return rechazar[entity.Blog](&f.base, "blog_slug", "El slug es requerido")
	}
	contenido, ok := f.contenido()
	if !ok {
		return rechazar[entity.Blog](&f.base, "contenido_flexible", MensajeJSONInvalido)
	}
	in := dto.BlogRequest{
		Titulo:            f.Titulo,
		Slug:              strings.TrimSpace(f.Slug),
		MetaTitle:         f.MetaTitle,
		MetaDescription:   f.MetaDescription,
		Resumen:           f.Resumen,
		ContenidoFlexible: contenido,
		Portada:           f.Portada.Archivo(),
	}
	if !f.Edicion() {
		if in.Portada == nil {
			return rechazar[entity.Blog](&f.base, "portada", "La imagen de portada es requerida")
		}
		return guardar(ctx, &f.base, func(ctx context.Context) dto.Respuesta[entity.Blog] {
			return f.api.Crear(ctx, in)
		}, "Blog creado exitosamente", "Error al crear blog")
	}
	in.EliminarPortada = f.Portada.DebeEliminar(true)
	return guardar(ctx, &f.base, func(ctx context.Context) dto.Respuesta[entity.Blog] {
		return f.api.Actualizar(ctx, f.original.ID, in)
	}, "Blog actualizado exitosamente", "Error al actualizar blog")
}
