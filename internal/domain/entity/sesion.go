package entity

import "time"

// Sesion persistida de un administrador: el token del backend y el usuario cacheado.
// Es el equivalente servidor del par admin_token / admin_user del navegador.
type Sesion struct {
	ID       string    `json:"id"`
	Token    string    `json:"token"`
	Admin    *Admin    `json:"admin"`
	CreadaEn time.Time `json:"creada_en"`
	ExpiraEn time.Time `json:"expira_en"`
}

// Vigente indica si la sesión no ha expirado en el instante now.
func (s *Sesion) Vigente(now time.Time) bool {
	return s != nil && (s.ExpiraEn.IsZero() || now.Before(s.ExpiraEn))
}
