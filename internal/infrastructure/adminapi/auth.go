package adminapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
)

var _ ports.AuthAPI = (*Auth)(nil)

// Auth adaptador de /admin/login y /admin/logout.
type Auth struct{ c *Client }

func NewAuth(c *Client) *Auth { return &Auth{c: c} }

// Login no requiere token; la respuesta trae admin, token y expires_in_hours.
func (a *Auth) Login(ctx context.Context, in dto.LoginRequest) dto.Respuesta[dto.LoginData] {
	r := hacer[dto.LoginData](ctx, a.c, conJSON(http.MethodPost, "/admin/login", in))
	if r.Success && (r.Data.Token == "" || r.Data.Admin == nil) {
		return conStatus(dto.Fallo[dto.LoginData]("Respuesta de login incompleta"), r.Status)
	}
	return r
}

func (a *Auth) Logout(ctx context.Context) dto.Respuesta[json.RawMessage] {
	return hacer[json.RawMessage](ctx, a.c, conJSON(http.MethodPost, "/admin/logout", nil))
}
