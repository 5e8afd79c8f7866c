package access

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// loginKeyTransformer decompõe (NFD), remove marcas de acento e recompõe (NFC).
// Nomes brasileiros têm acento ("João", "ITABATÃ"); a chave técnica não pode ter.
var loginKeyTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// DeriveLoginKey deriva a chave técnica estável de login a partir do nome de
// exibição: minúsculas, sem acentos, espaços viram ponto.
// Ex.: "Ana Clara Souza" -> "ana.clara.souza".
func DeriveLoginKey(nome string) string {
	s, _, err := transform.String(loginKeyTransformer, nome)
	if err != nil {
		s = nome
	}
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), ".")
}
