// Package moneda da formato de presentación a montos en soles y a tamaños de archivo.
package moneda

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Simbolo de la moneda de la tienda (PEN).
const Simbolo = "S/"

// Formatear devuelve el monto con dos decimales y separador de miles: "S/ 1,234.50".
func Formatear(monto decimal.Decimal) string {
	signo := ""
	if monto.IsNegative() {
		signo = "-"
		monto = monto.Neg()
	}
	entero, frac, _ := strings.Cut(monto.StringFixed(2), ".")
	return signo + Simbolo + " " + agrupar(entero) + "." + frac
}

func agrupar(entero string) string {
	if len(entero) <= 3 {
		return entero
	}
	var b strings.Builder
	primero := len(entero) % 3
	if primero > 0 {
		b.WriteString(entero[:primero])
	}
	for i := primero; i < len(entero); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(entero[i : i+3])
	}
	return b.String()
}

var unidades = []string{"Bytes", "KB", "MB", "GB"}

// TamanoArchivo formatea bytes en la unidad binaria más grande posible: 1536 -> "1.5 KB".
func TamanoArchivo(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(unidades)-1 {
		v /= 1024
		i++
	}
	n := strconv.FormatFloat(v, 'f', 2, 64)
	n = strings.TrimRight(strings.TrimRight(n, "0"), ".")
	return n + " " + unidades[i]
}
