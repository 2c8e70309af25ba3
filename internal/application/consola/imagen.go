package consola

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/pkg/moneda"
)

const mb = 1 << 20

// TiposImagen son los formatos aceptados por los formularios con imagen única.
var TiposImagen = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

// ReglasImagen definen qué archivo acepta un selector. Tipos vacío acepta cualquier image/*.
type ReglasImagen struct {
	MaxBytes int64
	Tipos    []string

	// Mensajes propios de cada pantalla.
	MsgTipo   string
	MsgTamano string
}

var (
	ReglasCategoria = ReglasImagen{
		MaxBytes:  2 * mb,
		Tipos:     TiposImagen,
		MsgTipo:   "Solo se permiten archivos JPG, PNG y WebP",
		MsgTamano: "La imagen no debe superar los 2MB",
	}
	// ReglasBanner para etiquetas, blog, carrusel, cyberwow y liquidación.
	ReglasBanner = ReglasImagen{
		MaxBytes:  5 * mb,
		Tipos:     TiposImagen,
		MsgTipo:   "Formato de imagen no válido. Use JPG, PNG o WebP.",
		MsgTamano: "La imagen no debe superar los 5MB.",
	}
	// ReglasProducto acepta cualquier image/*; los mensajes llevan el nombre del archivo.
	ReglasProducto = ReglasImagen{
		MaxBytes:  5 * mb,
		MsgTipo:   "%s no es una imagen válida",
		MsgTamano: "%s supera los 5MB permitidos",
	}
)

// tipo devuelve el MIME declarado o, si falta, el detectado por contenido.
func tipo(a dto.Archivo) string {
	if a.MIME != "" {
		return strings.ToLower(a.MIME)
	}
	return http.DetectContentType(a.Datos)
}

// Validar devuelve un error que envuelve domain.ErrImagenInvalida con el mensaje para el usuario.
func (r ReglasImagen) Validar(a dto.Archivo) error {
	t := tipo(a)
	okTipo := strings.HasPrefix(t, "image/")
	if len(r.Tipos) > 0 {
		okTipo = slices.Contains(r.Tipos, t)
	}
	if !okTipo {
		return &ErrorImagen{Mensaje: r.mensaje(r.MsgTipo, a.Nombre)}
	}
	if r.MaxBytes > 0 && a.Tamano() > r.MaxBytes {
		return &ErrorImagen{Mensaje: r.mensaje(r.MsgTamano, a.Nombre)}
	}
	return nil
}

func (r ReglasImagen) mensaje(plantilla, nombre string) string {
	if strings.Contains(plantilla, "%s") {
		return fmt.Sprintf(plantilla, nombre)
	}
	return plantilla
}

// ErrorImagen rechazo de un archivo con el texto a mostrar. Envuelve domain.ErrImagenInvalida
// o, si se excede el cupo, domain.ErrLimiteAlcanzado.
type ErrorImagen struct {
	Mensaje string
	causa   error
}

func (e *ErrorImagen) Error() string { return e.Mensaje }

func (e *ErrorImagen) Unwrap() error {
	if e.causa != nil {
		return e.causa
	}
	return domain.ErrImagenInvalida
}

// VistaPrevia codifica el archivo como data URL.
func VistaPrevia(a dto.Archivo) string {
	return "data:" + tipo(a) + ";base64," + base64.StdEncoding.EncodeToString(a.Datos)
}

// SelectorImagen es el campo de imagen única de un formulario: archivo nuevo, vista previa y
// la imagen ya guardada en edición.
type SelectorImagen struct {
	reglas  ReglasImagen
	archivo *dto.Archivo
	vista   string
}

// NewSelectorImagen arranca con la vista de la imagen guardada (vacía en creación).
func NewSelectorImagen(reglas ReglasImagen, actual string) *SelectorImagen {
	return &SelectorImagen{reglas: reglas, vista: actual}
}

// Seleccionar valida y adopta el archivo. Si es rechazado el estado anterior queda intacto.
func (s *SelectorImagen) Seleccionar(a dto.Archivo) error {
	if err := s.reglas.Validar(a); err != nil {
		return err
	}
	s.archivo = &a
	s.vista = VistaPrevia(a)
	return nil
}

// Quitar vacía archivo y vista; en edición eso pide borrar la imagen guardada.
func (s *SelectorImagen) Quitar() {
	s.archivo = nil
	s.vista = ""
}

func (s *SelectorImagen) Archivo() *dto.Archivo { return s.archivo }

func (s *SelectorImagen) Vista() string { return s.vista }

// Vacio indica que no hay archivo nuevo ni vista previa.
func (s *SelectorImagen) Vacio() bool { return s.archivo == nil && s.vista == "" }

// DebeEliminar indica si en edición hay que enviar la bandera de borrado de la imagen guardada.
func (s *SelectorImagen) DebeEliminar(edicion bool) bool { return edicion && s.Vacio() }

// Descripcion resume el archivo seleccionado ("foto.png (1.5 KB)").
func (s *SelectorImagen) Descripcion() string {
	if s.archivo == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s)", s.archivo.Nombre, moneda.TamanoArchivo(s.archivo.Tamano()))
}
