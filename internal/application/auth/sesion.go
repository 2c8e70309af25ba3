package auth

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

var _ ports.FuenteToken = (*Sesion)(nil)

// Sesion es el contexto de sesión compartido por las pantallas de un operador. Se hidrata
// desde el repositorio al construirse, publica el admin actual a sus suscriptores y se
// vacía al cerrar sesión. Es seguro para uso concurrente.
type Sesion struct {
	uc *UseCase

	mu      sync.RWMutex
	actual  *entity.Sesion
	subs    map[uint64]chan *entity.Admin
	sigSub  uint64
	cerrada bool
}

// NewSesion recupera la sesión id si sigue vigente; con id vacío o vencido arranca sin sesión.
func NewSesion(ctx context.Context, uc *UseCase, id string) *Sesion {
	s := &Sesion{uc: uc, subs: make(map[uint64]chan *entity.Admin)}
	if id == "" {
		return s
	}
	if actual, err := uc.Recuperar(ctx, id); err == nil {
		s.actual = actual
	} else {
		uc.log.Debug().Err(err).Str("sesion", id).Msg("no se pudo hidratar la sesión")
	}
	return s
}

// Iniciar hace login y, si el backend lo acepta, publica el admin nuevo.
func (s *Sesion) Iniciar(ctx context.Context, in dto.LoginRequest) dto.Respuesta[dto.LoginData] {
	r, nueva := s.uc.IniciarSesion(ctx, in)
	if nueva == nil {
		return r
	}
	s.mu.Lock()
	s.actual = nueva
	s.publicar(nueva.Admin)
	s.mu.Unlock()
	return r
}

// Terminar cierra sesión en el backend y limpia el estado local aunque el backend falle.
func (s *Sesion) Terminar(ctx context.Context) dto.Respuesta[json.RawMessage] {
	s.mu.Lock()
	actual := s.actual
	s.actual = nil
	s.publicar(nil)
	s.mu.Unlock()
	return s.uc.CerrarSesion(ctx, actual)
}

// ID identificador persistido de la sesión actual, vacío si no hay sesión.
func (s *Sesion) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.actual == nil {
		return ""
	}
	return s.actual.ID
}

func (s *Sesion) Admin() *entity.Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.vigente() {
		return nil
	}
	return s.actual.Admin
}

// TokenActual implementa ports.FuenteToken. Una sesión vencida no entrega token.
func (s *Sesion) TokenActual() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.vigente() {
		return ""
	}
	return s.actual.Token
}

func (s *Sesion) EstaAutenticado() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vigente() && s.actual.Token != "" && s.actual.Admin != nil
}

func (s *Sesion) EsAdmin() bool {
	return s.Admin().EsAdmin()
}

func (s *Sesion) vigente() bool {
	return s.actual.Vigente(s.uc.now())
}

// Suscribir devuelve un canal que recibe el admin actual (nil al cerrar sesión). El canal tiene
// capacidad 1 y solo conserva el último valor; cancelar lo cierra.
func (s *Sesion) Suscribir() (<-chan *entity.Admin, func()) {
	ch := make(chan *entity.Admin, 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cerrada {
		close(ch)
		return ch, func() {}
	}
	id := s.sigSub
	s.sigSub++
	s.subs[id] = ch
	if s.vigente() {
		ch <- s.actual.Admin
	} else {
		ch <- nil
	}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
}

// publicar requiere s.mu tomado en escritura.
func (s *Sesion) publicar(a *entity.Admin) {
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- a
	}
}

// Cerrar libera a todos los suscriptores. La sesión persistida no se toca.
func (s *Sesion) Cerrar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cerrada {
		return
	}
	s.cerrada = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// NewSesionVacia arranca sin sesión previa.
func NewSesionVacia(uc *UseCase) *Sesion {
	return NewSesion(context.Background(), uc, "")
}
