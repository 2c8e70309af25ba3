package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims de la cookie de sesión de la consola. El token del backend nunca viaja al navegador:
// la cookie solo referencia la sesión guardada en el servidor.
type Claims struct {
	jwt.RegisteredClaims
	SesionID string `json:"sid"`
	AdminID  int64  `json:"admin_id"`
	Tipo     string `json:"tipo"`
}

// Generate firma una cookie de sesión para sesionID con la duración indicada.
func Generate(secret, sesionID string, adminID int64, tipo, issuer string, exp time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sesionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
		},
		SesionID: sesionID,
		AdminID:  adminID,
		Tipo:     tipo,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida la firma y la expiración y devuelve los claims.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SesionID == "" {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// Expiracion lee el claim exp de un token emitido por el backend sin verificar la firma
// (la consola no conoce la clave del backend). ok es false si el token no es un JWT o no trae exp.
func Expiracion(tokenString string) (exp time.Time, ok bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
