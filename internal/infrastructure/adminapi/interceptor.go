package adminapi

import (
	"net/http"
	"strings"

	"github.com/jhoicas/tienda-admin/internal/application/ports"
)

// Interceptor agrega a cada petición saliente Accept: application/json, el Bearer cuando hay
// token y Content-Type: application/json salvo en cuerpos multipart, cuyo Content-Type con
// boundary ya viene fijado.
type Interceptor struct {
	Base   http.RoundTripper
	Fuente ports.FuenteToken
}

func (i *Interceptor) RoundTrip(req *http.Request) (*http.Response, error) {
	token := ports.TokenDe(req.Context())
	if token == "" && i.Fuente != nil {
		token = i.Fuente.TokenActual()
	}

	r := req.Clone(req.Context())
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	r.Header.Set("Accept", "application/json")
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Header.Set("Content-Type", "application/json")
	}

	base := i.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(r)
}
