package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/domain/repository"
	"github.com/jhoicas/tienda-admin/pkg/jwt"
)

// MensajeSesionNoGuardada se devuelve si el backend aceptó el login pero no se pudo persistir la sesión.
const MensajeSesionNoGuardada = "No se pudo guardar la sesión"

// UseCase casos de uso de autenticación: login contra el backend, persistencia de la sesión y logout.
type UseCase struct {
	api  ports.AuthAPI
	repo repository.SesionRepository
	// ttl tope de vida de una sesión, aunque el backend conceda más.
	ttl time.Duration
	log zerolog.Logger
	now func() time.Time
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(api ports.AuthAPI, repo repository.SesionRepository, ttl time.Duration, log zerolog.Logger) *UseCase {
	return &UseCase{api: api, repo: repo, ttl: ttl, log: log.With().Str("componente", "auth").Logger(), now: time.Now}
}

// IniciarSesion valida credenciales contra /admin/login y guarda una sesión nueva.
// Si el backend rechaza el login se devuelve su sobre tal cual y la sesión es nil.
func (uc *UseCase) IniciarSesion(ctx context.Context, in dto.LoginRequest) (dto.Respuesta[dto.LoginData], *entity.Sesion) {
	r := uc.api.Login(ctx, in)
	if !r.Success {
		return r, nil
	}
	if r.Data.Admin == nil || r.Data.Token == "" {
		return conStatus(dto.Fallo[dto.LoginData]("Respuesta de login incompleta"), r.Status), nil
	}

	now := uc.now()
	s := &entity.Sesion{
		ID:       uuid.NewString(),
		Token:    r.Data.Token,
		Admin:    r.Data.Admin,
		CreadaEn: now,
		ExpiraEn: uc.expiracion(now, r.Data),
	}
	if err := uc.repo.Guardar(ctx, s); err != nil {
		uc.log.Error().Err(err).Int64("admin_id", s.Admin.ID).Msg("guardar sesión")
		return dto.Fallo[dto.LoginData](MensajeSesionNoGuardada), nil
	}
	uc.log.Info().Int64("admin_id", s.Admin.ID).Str("tipo", s.Admin.Tipo).Time("expira", s.ExpiraEn).Msg("sesión iniciada")
	return r, s
}

// expiracion toma el menor entre el TTL propio, expires_in_hours y el exp del token si es un JWT.
func (uc *UseCase) expiracion(now time.Time, d dto.LoginData) time.Time {
	var exp time.Time
	menor := func(t time.Time) {
		if exp.IsZero() || t.Before(exp) {
			exp = t
		}
	}
	if uc.ttl > 0 {
		menor(now.Add(uc.ttl))
	}
	if d.ExpiresInHours > 0 {
		menor(now.Add(time.Duration(d.ExpiresInHours) * time.Hour))
	}
	if t, ok := jwt.Expiracion(d.Token); ok {
		menor(t)
	}
	return exp
}

// Recuperar carga una sesión vigente por id. Devuelve domain.ErrSesionExpirada si no existe o venció.
func (uc *UseCase) Recuperar(ctx context.Context, id string) (*entity.Sesion, error) {
	if id == "" {
		return nil, domain.ErrSesionExpirada
	}
	s, err := uc.repo.Obtener(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener sesión: %w", err)
	}
	if !s.Vigente(uc.now()) {
		return nil, domain.ErrSesionExpirada
	}
	return s, nil
}

// CerrarSesion avisa al backend (si hay token) y borra la sesión pase lo que pase.
func (uc *UseCase) CerrarSesion(ctx context.Context, s *entity.Sesion) dto.Respuesta[json.RawMessage] {
	if s == nil {
		return dto.Exito[json.RawMessage](nil, "")
	}
	r := dto.Exito[json.RawMessage](nil, "")
	if s.Token != "" {
		r = uc.api.Logout(ports.ConToken(ctx, s.Token))
		if !r.Success {
			uc.log.Warn().Str("message", r.Message).Msg("logout rechazado por el backend; se limpia igual")
		}
	}
	if err := uc.repo.Eliminar(ctx, s.ID); err != nil && !errors.Is(err, domain.ErrNoEncontrado) {
		uc.log.Error().Err(err).Str("sesion", s.ID).Msg("eliminar sesión")
	}
	return r
}

func conStatus[T any](r dto.Respuesta[T], status int) dto.Respuesta[T] {
	r.Status = status
	return r
}
