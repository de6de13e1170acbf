// Package naming converts identifiers between the casing conventions used by
// the code generators: PascalCase, camelCase, kebab-case and snake_case.
//
// Round trips between conventions are not guaranteed for inputs with
// ambiguous word boundaries such as acronyms ("HTTPServer") or leading digits.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// ToPascalCase converts s to PascalCase: "user-profile" → "UserProfile".
func ToPascalCase(s string) string {
	words := splitSeparators(s)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(upperFirst(w))
	}
	return b.String()
}

// ToCamelCase converts s to camelCase: "UserProfile" → "userProfile".
func ToCamelCase(s string) string {
	return lowerFirst(ToPascalCase(s))
}

// ToKebabCase converts s to kebab-case: "userProfile" → "user-profile".
func ToKebabCase(s string) string {
	return joinLower(splitWords(s), "-")
}

// ToSnakeCase converts s to snake_case: "userProfile" → "user_profile".
func ToSnakeCase(s string) string {
	return joinLower(splitWords(s), "_")
}

// splitSeparators splits on runs of '-', '_' and whitespace only.
func splitSeparators(s string) []string {
	return strings.FieldsFunc(s, isSeparator)
}

// splitWords splits on separator runs and additionally on every
// lowercase→uppercase transition inside a token.
func splitWords(s string) []string {
	var words []string
	for _, token := range splitSeparators(s) {
		start := 0
		var prev rune
		for i, r := range token {
			if i > 0 && unicode.IsLower(prev) && unicode.IsUpper(r) {
				words = append(words, token[start:i])
				start = i
			}
			prev = r
		}
		words = append(words, token[start:])
	}
	return words
}

func joinLower(words []string, sep string) string {
	return lower.String(strings.Join(words, sep))
}

func isSeparator(r rune) bool {
	return r == '-' || r == '_' || unicode.IsSpace(r)
}

// upperFirst upper-cases only the first rune, so "userProfile" becomes
// "UserProfile" rather than "Userprofile".
func upperFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}

func lowerFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToLower(r)) + w[size:]
}
