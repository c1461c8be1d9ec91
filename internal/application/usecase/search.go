package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone a NFD, elimina las marcas diacríticas y
// recompone a NFC, de modo que "Pérez" y "Perez" colisionen en búsqueda.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldForSearch normaliza un término de búsqueda: sin acentos, minúsculas.
func foldForSearch(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// foldContains reporta si haystack contiene needle ignorando acentos y
// mayúsculas. needle debe venir ya pasado por foldForSearch.
func foldContains(haystack, needle string) bool {
	return strings.Contains(foldForSearch(haystack), needle)
}
