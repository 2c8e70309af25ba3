package dto

import "github.com/jhoicas/tienda-admin/internal/domain/entity"

// LoginRequest credenciales del administrador.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginData es el data de POST /admin/login.
type LoginData struct {
	Admin          *entity.Admin `json:"admin"`
	Token          string        `json:"token"`
	ExpiresInHours int           `json:"expires_in_hours"`
}

// SesionResponse lo que la consola expone del usuario autenticado.
type SesionResponse struct {
	Admin    *entity.Admin `json:"admin"`
	EsAdmin  bool          `json:"es_admin"`
	ExpiraEn string        `json:"expira_en,omitempty"`
}
