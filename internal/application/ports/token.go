package ports

import "context"

// FuenteToken entrega el token vigente cuando el contexto de la llamada no trae uno.
// La sesión de la consola la implementa.
type FuenteToken interface {
	TokenActual() string
}

type claveToken struct{}

// ConToken devuelve un contexto cuyas llamadas al backend viajan con token.
func ConToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, claveToken{}, token)
}

// TokenDe extrae el token puesto con ConToken.
func TokenDe(ctx context.Context) string {
	t, _ := ctx.Value(claveToken{}).(string)
	return t
}
