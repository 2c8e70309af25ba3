package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado    = errors.New("recurso no encontrado")
	ErrNoAutorizado    = errors.New("no autorizado")
	ErrAccesoDenegado  = errors.New("acceso denegado")
	ErrSesionExpirada  = errors.New("la sesión expiró")
	ErrEnvioEnCurso    = errors.New("ya hay un envío en curso")
	ErrEnvioCancelado  = errors.New("el envío fue cancelado")
	ErrValidacion      = errors.New("el formulario tiene errores")
	ErrImagenInvalida  = errors.New("imagen inválida")
	ErrLimiteAlcanzado = errors.New("límite alcanzado")
)
