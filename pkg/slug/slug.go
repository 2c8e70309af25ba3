// Package slug genera identificadores legibles para URL a partir de nombres y títulos.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	noPermitido = regexp.MustCompile(`[^a-z0-9\s-]`)
	espacios    = regexp.MustCompile(`\s+`)
	guiones     = regexp.MustCompile(`-+`)
)

// Generar convierte s en slug: minúsculas, sin tildes, solo [a-z0-9-], sin guiones repetidos
// ni en los extremos. Generar(Generar(s)) == Generar(s).
func Generar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	sinTildes, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		sinTildes = strings.ToLower(s)
	}

	out := noPermitido.ReplaceAllString(sinTildes, "")
	out = strings.TrimSpace(out)
	out = espacios.ReplaceAllString(out, "-")
	out = guiones.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
