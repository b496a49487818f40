// Package redact scrubs credentials from strings before they are logged.
// The generation API authenticates with a key in the request URL, so
// transport errors from net/http carry the full URL, key included. Every
// error that might contain a request URL goes through this package before
// reaching a log line.
package redact

import "regexp"

// Placeholder replaces redacted credential material.
const Placeholder = "[REDACTED]"

var (
	// key=... query parameters, the credential shape used by the
	// generation endpoint.
	keyParamRegex = regexp.MustCompile(`(?i)\b(key|api[_-]?key|token|secret)=[^&\s"']+`)

	// Bearer tokens and similar header-style credentials, in case an
	// upstream error body echoes one back.
	bearerRegex = regexp.MustCompile(`(?i)\b(bearer|authorization:)\s+[A-Za-z0-9_\-.~+/]{8,}`)
)

// String redacts credential material from the input string.
func String(input string) string {
	if input == "" {
		return input
	}
	result := keyParamRegex.ReplaceAllString(input, "$1="+Placeholder)
	result = bearerRegex.ReplaceAllString(result, "$1 "+Placeholder)
	return result
}

// Error redacts credential material from an error's message. A nil error
// yields an empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
