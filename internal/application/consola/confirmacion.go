package consola

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// Accion de una confirmación.
type Accion string

const (
	AccionEliminar      Accion = "eliminar"
	AccionActivar       Accion = "activar"
	AccionDesactivar    Accion = "desactivar"
	AccionToggle        Accion = "toggle"
	AccionCambiarEstado Accion = "cambiarEstado"
)

// Sujeto es el sustantivo con el que se nombra la entidad en los mensajes.
type Sujeto struct {
	Sustantivo string
	Femenino   bool
}

var (
	SujetoProducto    = Sujeto{Sustantivo: "producto"}
	SujetoCategoria   = Sujeto{Sustantivo: "categoría", Femenino: true}
	SujetoEtiqueta    = Sujeto{Sustantivo: "etiqueta", Femenino: true}
	SujetoBlog        = Sujeto{Sustantivo: "blog"}
	SujetoCarrusel    = Sujeto{Sustantivo: "imagen del carrusel", Femenino: true}
	SujetoBanner      = Sujeto{Sustantivo: "banner"}
	SujetoLiquidacion = Sujeto{Sustantivo: "liquidación", Femenino: true}
	SujetoPedido      = Sujeto{Sustantivo: "pedido"}
	SujetoReclamacion = Sujeto{Sustantivo: "reclamación", Femenino: true}
)

// referencia: `la categoría "Vitaminas"` o, sin nombre, `esta imagen del carrusel`.
func (s Sujeto) referencia(nombre string) string {
	if nombre == "" {
		if s.Femenino {
			return "esta " + s.Sustantivo
		}
		return "este " + s.Sustantivo
	}
	art := "el"
	if s.Femenino {
		art = "la"
	}
	return fmt.Sprintf("%s %s %q", art, s.Sustantivo, nombre)
}

func (s Sujeto) participio(raiz string) string {
	if s.Femenino {
		return raiz + "a"
	}
	return raiz + "o"
}

func (s Sujeto) capitalizado() string {
	r, n := utf8.DecodeRuneInString(s.Sustantivo)
	return string(unicode.ToUpper(r)) + s.Sustantivo[n:]
}

// Confirmacion es el diálogo "¿Estás seguro...?" previo a una acción destructiva o de estado.
// Se ejecuta una sola vez aunque se confirme repetidamente.
type Confirmacion[T any] struct {
	Accion           Accion
	Sujeto           Sujeto
	Nombre           string
	EstadoResultante string

	ejecutar func(context.Context) dto.Respuesta[T]
	envio    Envio
}

// Mensaje es la pregunta que se muestra al usuario.
func (c *Confirmacion[T]) Mensaje() string {
	ref := c.Sujeto.referencia(c.Nombre)
	switch c.Accion {
	case AccionEliminar:
		return fmt.Sprintf("¿Estás seguro de que deseas eliminar %s? Esta acción no se puede deshacer.", ref)
	case AccionActivar, AccionDesactivar:
		return fmt.Sprintf("¿Estás seguro de que deseas %s %s?", c.Accion, ref)
	}
	return fmt.Sprintf("¿Deseas cambiar el estado %s a %q?", contraer(ref), c.EstadoResultante)
}

// contraer antepone "de" a ref, con "de el" contraído a "del".
func contraer(ref string) string {
	if rest, ok := strings.CutPrefix(ref, "el "); ok {
		return "del " + rest
	}
	return "de " + ref
}

func (c *Confirmacion[T]) exito() string {
	switch c.Accion {
	case AccionEliminar:
		return c.Sujeto.capitalizado() + " " + c.Sujeto.participio("eliminad") + " exitosamente"
	case AccionActivar:
		return c.Sujeto.capitalizado() + " " + c.Sujeto.participio("activad") + " exitosamente"
	case AccionDesactivar:
		return c.Sujeto.capitalizado() + " " + c.Sujeto.participio("desactivad") + " exitosamente"
	}
	return "Estado actualizado exitosamente"
}

func (c *Confirmacion[T]) porDefecto() string {
	switch c.Accion {
	case AccionEliminar:
		return "Error al eliminar " + c.Sujeto.Sustantivo
	case AccionActivar:
		return "Error al activar " + c.Sujeto.Sustantivo
	case AccionDesactivar:
		return "Error al desactivar " + c.Sujeto.Sustantivo
	}
	return "Error al actualizar el estado"
}

// Confirmar ejecuta la acción. Un segundo Confirmar mientras la primera sigue en curso falla
// con domain.ErrEnvioEnCurso sin tocar el backend.
func (c *Confirmacion[T]) Confirmar(ctx context.Context) (Resultado[T], error) {
	r, err := enviar(ctx, &c.envio, c.ejecutar)
	if err != nil {
		return Resultado[T]{}, err
	}
	res := resultado(r, c.exito(), c.porDefecto())
	res.CerrarEn = 0
	return res, nil
}

// Cancelar descarta la confirmación; una ejecución en curso se cancela.
func (c *Confirmacion[T]) Cancelar() { c.envio.Cerrar() }

func (c *Confirmacion[T]) Envio() *Envio { return &c.envio }

// ── Constructores por tipo de acción ─────────────────────────────────────────

type activable[T any] interface {
	Activar(ctx context.Context, id int64) dto.Respuesta[T]
	Desactivar(ctx context.Context, id int64) dto.Respuesta[T]
}

type alternable interface {
	Toggle(ctx context.Context, id int64) dto.Respuesta[dto.CambioToggle]
}

type eliminable interface {
	Eliminar(ctx context.Context, id int64) dto.Respuesta[json.RawMessage]
}

// ConfirmarCambioActivo activa o desactiva según el estado actual (categorías y productos).
func ConfirmarCambioActivo[T any](api activable[T], s Sujeto, id int64, nombre string, actual entity.Estado) *Confirmacion[T] {
	c := &Confirmacion[T]{Sujeto: s, Nombre: nombre, EstadoResultante: string(actual.Alternar())}
	if actual == entity.EstadoActivo {
		c.Accion = AccionDesactivar
		c.ejecutar = func(ctx context.Context) dto.Respuesta[T] { return api.Desactivar(ctx, id) }
	} else {
		c.Accion = AccionActivar
		c.ejecutar = func(ctx context.Context) dto.Respuesta[T] { return api.Activar(ctx, id) }
	}
	return c
}

// ConfirmarToggle alterna el estado con el endpoint único (etiquetas y blogs).
func ConfirmarToggle(api alternable, s Sujeto, id int64, nombre string, actual entity.Estado) *Confirmacion[dto.CambioToggle] {
	return &Confirmacion[dto.CambioToggle]{
		Accion:           AccionToggle,
		Sujeto:           s,
		Nombre:           nombre,
		EstadoResultante: string(actual.Alternar()),
		ejecutar: func(ctx context.Context) dto.Respuesta[dto.CambioToggle] {
			return api.Toggle(ctx, id)
		},
	}
}

// ConfirmarEliminar borra de verdad (carrusel, liquidación, banners, etiquetas y blogs).
func ConfirmarEliminar(api eliminable, s Sujeto, id int64, nombre string) *Confirmacion[json.RawMessage] {
	return &Confirmacion[json.RawMessage]{
		Accion: AccionEliminar,
		Sujeto: s,
		Nombre: nombre,
		ejecutar: func(ctx context.Context) dto.Respuesta[json.RawMessage] {
			return api.Eliminar(ctx, id)
		},
	}
}

// NuevaConfirmacion arma una confirmación de cambio de estado con una acción arbitraria.
func NuevaConfirmacion[T any](s Sujeto, nombre, destino string, fn func(context.Context) dto.Respuesta[T]) *Confirmacion[T] {
	return &Confirmacion[T]{Accion: AccionCambiarEstado, Sujeto: s, Nombre: nombre, EstadoResultante: destino, ejecutar: fn}
}
