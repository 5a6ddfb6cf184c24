// Package slug genera identificadores de URL legibles a partir de nombres en español.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make convierte "Compresor de Tornillo 15 HP – Línea Pesada" en
// "compresor-de-tornillo-15-hp-linea-pesada". Quita tildes y diacríticos,
// pasa a minúsculas y colapsa cualquier separador en un solo guion.
func Make(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	b.Grow(len(plain))
	dash := false
	for _, r := range strings.ToLower(plain) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case r == 'ñ':
			b.WriteRune('n')
			dash = false
		default:
			if b.Len() > 0 && !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Valid informa si s ya es un slug canónico.
func Valid(s string) bool {
	return s != "" && Make(s) == s
}
