// Package redact removes credentials and other sensitive fragments from
// strings before they are logged or returned in error responses. Provider
// SDK errors in particular may echo request URLs or headers that carry API
// keys.
package redact

import "regexp"

// Redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedStackTracePlaceholder = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order; earlier rules see the raw input.
var rules = []rule{
	// Stack traces
	{
		regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		RedactedStackTracePlaceholder,
	},
	// Database connection strings
	{
		regexp.MustCompile(`(?i)\b(?:postgres(?:ql)?|mysql|mongodb)://[^@\s]+@`),
		RedactedCredentialPlaceholder,
	},
	// Authorization headers
	{
		regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9._~+/=-]+`),
		"Bearer " + RedactedTokenPlaceholder,
	},
	// JWT tokens
	{
		regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		RedactedJWTPlaceholder,
	},
	// OpenAI and Anthropic secret keys
	{
		regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{16,}`),
		RedactedKeyPlaceholder,
	},
	// Google API keys
	{
		regexp.MustCompile(`\bAIza[0-9A-Za-z_-]{30,}`),
		RedactedKeyPlaceholder,
	},
	// Keys passed as query parameters
	{
		regexp.MustCompile(`(?i)([?&](?:key|api_key|access_token)=)[^&\s"']+`),
		"${1}" + RedactedKeyPlaceholder,
	},
	// key=value and key: value credentials
	{
		regexp.MustCompile(
			`(?i)\b(api[_-]?key|x-api-key|x-goog-api-key|secret|password|passwd)(\s*[:=]\s*['"]?)[^\s'"&,]{3,}`,
		),
		"${1}${2}" + RedactedCredentialPlaceholder,
	},
	// Email addresses
	{
		regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		RedactedEmailPlaceholder,
	},
	// File paths
	{
		regexp.MustCompile(`(/[\w.-]+){2,}`),
		RedactedPathPlaceholder,
	},
	{
		regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`),
		RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
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
