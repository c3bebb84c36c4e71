package domain

import "regexp"

// entityTable maps the HTML entities seen on ticket pages to their
// characters. Deliberately not html.UnescapeString: only these entities
// are decoded, anything else is left verbatim.
var entityTable = map[string]string{
	"&auml;":  "ä",
	"&ouml;":  "ö",
	"&uuml;":  "ü",
	"&Auml;":  "Ä",
	"&Ouml;":  "Ö",
	"&Uuml;":  "Ü",
	"&szlig;": "ß",
	"&amp;":   "&",
	"&quot;":  `"`,
	"&apos;":  "'",
	"&lt;":    "<",
	"&gt;":    ">",
}

var entityPattern = regexp.MustCompile(`&[a-zA-Z]+;`)

// DecodeEntities replaces every known &name; entity with its character.
// Unknown entities are left verbatim. Decoding is idempotent: none of the
// replacement characters form further entity syntax, so applying it twice
// yields the same result as once.
func DecodeEntities(text string) string {
	return entityPattern.ReplaceAllStringFunc(text, func(match string) string {
		if repl, ok := entityTable[match]; ok {
			return repl
		}
		return match
	})
}
