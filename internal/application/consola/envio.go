package consola

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/domain"
)

// CierreTrasExito es la espera antes de cerrar un formulario guardado con éxito.
const CierreTrasExito = 1500 * time.Millisecond

// EstadoEnvio del ciclo de un envío.
type EstadoEnvio int32

const (
	EnvioListo EstadoEnvio = iota
	EnvioEnviando
	EnvioHecho
)

func (e EstadoEnvio) String() string {
	switch e {
	case EnvioListo:
		return "listo"
	case EnvioEnviando:
		return "enviando"
	case EnvioHecho:
		return "hecho"
	}
	return "desconocido"
}

// Envio protege un formulario o una confirmación contra envíos repetidos. Pasar de listo a
// enviando es atómico: un segundo intento mientras hay uno en curso falla con ErrEnvioEnCurso.
// Cerrar cancela el envío en curso y descarta su resultado.
type Envio struct {
	estado atomic.Int32

	mu      sync.Mutex
	cancel  context.CancelFunc
	cerrado bool
}

func (e *Envio) Estado() EstadoEnvio { return EstadoEnvio(e.estado.Load()) }

// Iniciar reserva el envío y devuelve un contexto cancelable por Cerrar. terminar(ok) deja el
// envío en hecho si ok, o de nuevo en listo para reintentar.
func (e *Envio) Iniciar(ctx context.Context) (context.Context, func(ok bool), error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cerrado {
		return nil, nil, domain.ErrEnvioCancelado
	}
	if !e.estado.CompareAndSwap(int32(EnvioListo), int32(EnvioEnviando)) {
		return nil, nil, domain.ErrEnvioEnCurso
	}
	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	var once sync.Once
	terminar := func(ok bool) {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			cancel()
			e.cancel = nil
			if e.cerrado {
				return
			}
			if ok {
				e.estado.Store(int32(EnvioHecho))
			} else {
				e.estado.Store(int32(EnvioListo))
			}
		})
	}
	return ctx, terminar, nil
}

// Reiniciar vuelve a listo un envío hecho (ej. al reabrir el formulario). No afecta a uno en curso.
func (e *Envio) Reiniciar() {
	e.estado.CompareAndSwap(int32(EnvioHecho), int32(EnvioListo))
}

// Cerrar cancela el envío en curso; los siguientes Iniciar fallan con ErrEnvioCancelado.
func (e *Envio) Cerrar() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cerrado = true
	if e.cancel != nil {
		e.cancel()
	}
}

// Cerrado indica si se llamó a Cerrar.
func (e *Envio) Cerrado() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cerrado
}

// Resultado de guardar un formulario o ejecutar una acción confirmada. En éxito Entidad trae lo
// que devolvió el backend y CerrarEn la espera antes de cerrar.
type Resultado[T any] struct {
	Aviso    Aviso
	Entidad  *T
	CerrarEn time.Duration
}

// Ok indica que el backend guardó la entidad, aunque el aviso informe fallos parciales.
func (r Resultado[T]) Ok() bool { return r.Entidad != nil }

// enviar ejecuta fn bajo el Envio. Si el envío se cerró mientras fn corría el resultado se
// descarta con ErrEnvioCancelado.
func enviar[T any](ctx context.Context, e *Envio, fn func(context.Context) dto.Respuesta[T]) (dto.Respuesta[T], error) {
	ctx, terminar, err := e.Iniciar(ctx)
	if err != nil {
		return dto.Respuesta[T]{}, err
	}
	r := fn(ctx)
	if ctx.Err() != nil && e.Cerrado() {
		terminar(false)
		return dto.Respuesta[T]{}, domain.ErrEnvioCancelado
	}
	terminar(r.Success)
	return r, nil
}

// resultado arma el Resultado de un sobre: en éxito con la entidad y el cierre diferido.
func resultado[T any](r dto.Respuesta[T], exito, porDefecto string) Resultado[T] {
	out := Resultado[T]{Aviso: AvisoDe(r, exito, porDefecto)}
	if r.Success {
		d := r.Data
		out.Entidad = &d
		out.CerrarEn = CierreTrasExito
	}
	return out
}
