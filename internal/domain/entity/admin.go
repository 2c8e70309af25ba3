package entity

// TipoAdmin es el único tipo con acceso completo a la consola.
const TipoAdmin = "admin"

// Admin es el usuario autenticado contra /admin/login.
type Admin struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Tipo  string `json:"tipo"`
}

// EsAdmin indica si el usuario tiene tipo admin.
func (a *Admin) EsAdmin() bool {
	return a != nil && a.Tipo == TipoAdmin
}
