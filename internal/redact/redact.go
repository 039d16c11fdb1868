// Package redact provides utilities for redacting sensitive information
// from strings before they are logged or returned in error responses.
// Provider SDK errors can echo request headers or URLs, so anything that
// looks like an API key, bearer token, or credential is scrubbed before
// it reaches a log line.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
)

// Precompiled regex patterns
var (
	// API keys and tokens in key=value or header-ish shapes
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|access|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Bearer authorization headers
	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]{8,}`)

	// Provider key prefixes (OpenAI sk-..., Groq gsk_...) appearing bare
	// inside error strings
	providerKeyRegex = regexp.MustCompile(`\b(sk-|gsk_)[A-Za-z0-9_\-]{8,}`)

	// Credentials embedded in URLs
	urlCredRegex = regexp.MustCompile(`(?i)[a-z][a-z0-9+.-]*://[^@/\s]+@`)

	patternPlaceholders = []struct {
		pattern     *regexp.Regexp
		placeholder string
	}{
		{apiKeyRegex, RedactedKeyPlaceholder},
		{bearerRegex, RedactedKeyPlaceholder},
		{providerKeyRegex, RedactedKeyPlaceholder},
		{urlCredRegex, RedactedCredentialPlaceholder},
	}
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}
	result := input
	for _, p := range patternPlaceholders {
		result = p.pattern.ReplaceAllString(result, p.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
