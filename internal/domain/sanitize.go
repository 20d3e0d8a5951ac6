package domain

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// SanitizeText trims surrounding whitespace and HTML-escapes the result so
// that free text can be rendered verbatim without injecting markup.
func SanitizeText(s string) string {
	return htmlEscaper.Replace(strings.TrimSpace(s))
}

// SanitizeOptional applies SanitizeText to a non-nil pointer.
// It returns nil when s is nil or blank.
func SanitizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	out := SanitizeText(*s)
	if out == "" {
		return nil
	}
	return &out
}
