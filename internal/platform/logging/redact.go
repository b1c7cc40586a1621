package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// Card descriptions and titles are free text, so secrets pasted into them
// are caught by value as well as by attribute name.
var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// At least 10 characters per segment keeps version strings out.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// SensitiveFields are attribute names whose values are always redacted.
var SensitiveFields = []string{
	"password",
	"secret",
	"token",
	"authorization",
	"otlp_headers",
}

// newRedactAttr returns a masq ReplaceAttr that redacts by attribute name,
// by name prefix and by value pattern.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveFields)+5)
	for _, name := range SensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)
	return masq.New(opts...)
}
