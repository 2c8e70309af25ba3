package consola

import (
	"context"
	"sync"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/pkg/paginacion"
)

// EstadoListado del ciclo de carga de un listado.
type EstadoListado string

const (
	ListadoInactivo EstadoListado = "inactivo"
	ListadoCargando EstadoListado = "cargando"
	ListadoCargado  EstadoListado = "cargado"
	ListadoFallido  EstadoListado = "fallido"
)

// Cargador trae una página con los filtros dados. pagina empieza en 1.
type Cargador[T, F any] func(ctx context.Context, filtros F, pagina int) dto.Respuesta[dto.Pagina[T]]

// Vista es la foto del listado que consume la presentación.
type Vista[T, F any] struct {
	Estado     EstadoListado  `json:"estado"`
	Filtros    F              `json:"filtros"`
	Items      []T            `json:"items"`
	Paginacion dto.Paginacion `json:"pagination"`
	Ventana    []int          `json:"ventana"`
	Aviso      *Aviso         `json:"aviso,omitempty"`
}

// Listado mantiene filtros, página y resultados de una pantalla. Cada carga lleva un número de
// generación: la respuesta de una carga superada por otra más nueva se descarta, y la anterior
// se cancela.
type Listado[T, F any] struct {
	cargar     Cargador[T, F]
	porDefecto string

	mu         sync.Mutex
	filtros    F
	pagina     int
	estado     EstadoListado
	items      []T
	paginacion dto.Paginacion
	aviso      *Aviso
	gen        uint64
	cancel     context.CancelFunc
	cerrado    bool
}

// NewListado crea un listado inactivo. porDefecto es el mensaje si el backend falla sin mensaje.
func NewListado[T, F any](cargar Cargador[T, F], filtros F, porDefecto string) *Listado[T, F] {
	return &Listado[T, F]{cargar: cargar, porDefecto: porDefecto, filtros: filtros, pagina: 1, estado: ListadoInactivo}
}

// Recargar vuelve a pedir la página actual. Devuelve false si la respuesta llegó tarde y se descartó.
func (l *Listado[T, F]) Recargar(ctx context.Context) bool {
	l.mu.Lock()
	if l.cerrado {
		l.mu.Unlock()
		return false
	}
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.estado = ListadoCargando
	l.aviso = nil
	filtros, pagina := l.filtros, l.pagina
	l.mu.Unlock()

	r := l.cargar(ctx, filtros, pagina)

	l.mu.Lock()
	defer l.mu.Unlock()
	cancel()
	if gen != l.gen || l.cerrado {
		return false
	}
	l.cancel = nil
	if !r.Success {
		l.estado = ListadoFallido
		a := AvisoDe(r, "", l.porDefecto)
		l.aviso = &a
		return true
	}
	l.estado = ListadoCargado
	l.items = r.Data.Items
	l.paginacion = r.Data.Paginacion
	if l.paginacion.CurrentPage > 0 {
		l.pagina = l.paginacion.CurrentPage
	}
	return true
}

// CambiarFiltros vuelve a la página 1 y recarga.
func (l *Listado[T, F]) CambiarFiltros(ctx context.Context, f F) bool {
	l.mu.Lock()
	l.filtros = f
	l.pagina = 1
	l.mu.Unlock()
	return l.Recargar(ctx)
}

// IrAPagina recarga en la página p, acotada a [1, última conocida].
func (l *Listado[T, F]) IrAPagina(ctx context.Context, p int) bool {
	l.mu.Lock()
	if ultima := l.paginacion.LastPage; ultima > 0 && p > ultima {
		p = ultima
	}
	if p < 1 {
		p = 1
	}
	l.pagina = p
	l.mu.Unlock()
	return l.Recargar(ctx)
}

// Actualizar reemplaza en memoria el primer ítem que cumpla coincide, sin recargar.
func (l *Listado[T, F]) Actualizar(coincide func(T) bool, nuevo T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if coincide(l.items[i]) {
			l.items[i] = nuevo
			return true
		}
	}
	return false
}

func (l *Listado[T, F]) Vista() Vista[T, F] {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := make([]T, len(l.items))
	copy(items, l.items)
	v := Vista[T, F]{
		Estado:     l.estado,
		Filtros:    l.filtros,
		Items:      items,
		Paginacion: l.paginacion,
		Aviso:      l.aviso,
	}
	if l.paginacion.LastPage > 0 {
		v.Ventana = paginacion.Ventana(l.pagina, l.paginacion.LastPage)
	}
	return v
}

// Cerrar cancela la carga en curso e ignora las respuestas que lleguen después.
func (l *Listado[T, F]) Cerrar() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cerrado = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
