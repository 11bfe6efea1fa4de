package services

import "strings"

// htmlEscaper replaces the five HTML-special characters and forward slash.
// strings.Replacer walks the input once, so "&" in the output of another
// replacement is never escaped again.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// Sanitize strips ASCII control characters (0x00-0x1F, 0x7F), escapes
// & < > " ' / and trims the result.
//
// Apply it once to raw input only. Running it over its own output escapes
// the entities a second time.
func Sanitize(input string) string {
	stripped := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, input)
	return strings.TrimSpace(htmlEscaper.Replace(stripped))
}
