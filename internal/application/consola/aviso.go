// Package consola mantiene el estado de las pantallas de la consola de administración:
// listados con filtros, formularios con validación e imágenes y confirmaciones. No conoce
// la capa de presentación; la BFF y el CLI la consumen por igual.
package consola

import (
	"github.com/jhoicas/tienda-admin/internal/application/dto"
)

// TipoAviso clasifica un aviso para la presentación.
type TipoAviso string

const (
	AvisoExito TipoAviso = "exito"
	AvisoError TipoAviso = "error"
	AvisoInfo  TipoAviso = "info"
)

// MensajeCorregirFormulario acompaña a los errores de validación local.
const MensajeCorregirFormulario = "Por favor corrige los errores en el formulario"

// Aviso es la única forma en que formularios, confirmaciones y listados informan al usuario.
// Campos lleva los errores por campo; vacío en avisos generales.
type Aviso struct {
	Tipo    TipoAviso         `json:"tipo"`
	Mensaje string            `json:"mensaje"`
	Campos  map[string]string `json:"campos,omitempty"`
}

func Exito(msg string) Aviso { return Aviso{Tipo: AvisoExito, Mensaje: msg} }

func Error(msg string) Aviso { return Aviso{Tipo: AvisoError, Mensaje: msg} }

func Info(msg string) Aviso { return Aviso{Tipo: AvisoInfo, Mensaje: msg} }

// ErrorDeCampos arma el aviso de una validación local fallida.
func ErrorDeCampos(campos map[string]string) Aviso {
	return Aviso{Tipo: AvisoError, Mensaje: MensajeCorregirFormulario, Campos: campos}
}

// EsError indica si el aviso es de error.
func (a Aviso) EsError() bool { return a.Tipo == AvisoError }

// AvisoDe traduce un sobre del backend: exito si Success, si no el mensaje del servidor (o
// porDefecto) con los errores por campo del backend.
func AvisoDe[T any](r dto.Respuesta[T], exito, porDefecto string) Aviso {
	if r.Success {
		return Exito(exito)
	}
	msg := r.Message
	if msg == "" {
		msg = porDefecto
	}
	a := Error(msg)
	if len(r.Errors) > 0 {
		a.Campos = r.Errors.Primeros()
	}
	return a
}
