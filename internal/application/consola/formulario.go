package consola

import (
	"context"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/domain"
)

// base es el estado común de los formularios modales: errores por campo y el envío.
type base struct {
	errores map[string]string
	// entrada son los campos cuyo texto no se pudo interpretar (ej. precio "abc").
	entrada map[string]string
	envio   Envio
}

func nuevaBase() base { return base{errores: map[string]string{}} }

func (b *base) Errores() map[string]string { return b.errores }

func (b *base) Envio() *Envio { return &b.envio }

// EntradaInvalida registra que el valor escrito en campo no se pudo interpretar. El guardado
// se rechaza con msg en ese campo sin llamar al backend.
func (b *base) EntradaInvalida(campo, msg string) {
	if b.entrada == nil {
		b.entrada = map[string]string{}
	}
	b.entrada[campo] = msg
}

// conEntrada agrega a e los errores de entrada; prevalecen sobre los de las reglas.
func (b *base) conEntrada(e map[string]string) map[string]string {
	for k, v := range b.entrada {
		e[k] = v
	}
	return e
}

// rechazoEntrada rechaza el guardado de los formularios simples si hay entrada ilegible.
// Sin entrada ilegible el error es nil.
func rechazoEntrada[T any](b *base) (Resultado[T], error) {
	if len(b.entrada) == 0 {
		return Resultado[T]{}, nil
	}
	return rechazarCampos[T](b, b.conEntrada(map[string]string{}))
}

// Cerrar cancela un guardado en curso; su resultado se descarta.
func (b *base) Cerrar() { b.envio.Cerrar() }

// rechazar corta la validación en el primer error.
func rechazar[T any](b *base, campo, msg string) (Resultado[T], error) {
	return rechazarCampos[T](b, map[string]string{campo: msg})
}

func rechazarCampos[T any](b *base, e map[string]string) (Resultado[T], error) {
	b.errores = e
	return Resultado[T]{Aviso: ErrorDeCampos(e)}, domain.ErrValidacion
}

// guardar envía fn bajo el Envio del formulario y vuelca los errores del backend en el mapa de campos.
func guardar[T any](ctx context.Context, b *base, fn func(context.Context) dto.Respuesta[T], exito, porDefecto string) (Resultado[T], error) {
	b.errores = map[string]string{}
	r, err := enviar(ctx, &b.envio, fn)
	if err != nil {
		return Resultado[T]{}, err
	}
	res := resultado(r, exito, porDefecto)
	if !res.Ok() && len(res.Aviso.Campos) > 0 {
		b.errores = res.Aviso.Campos
	}
	return res, nil
}

// textoBoton es el rótulo del botón de guardar según modo y envío.
func textoBoton(edicion bool, e *Envio, crear, actualizar string) string {
	if e.Estado() == EnvioEnviando {
		if edicion {
			return "Actualizando..."
		}
		return "Creando..."
	}
	if edicion {
		return actualizar
	}
	return crear
}
