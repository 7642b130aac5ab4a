package common

import "strings"

// BearerToken formats a token for the Authorization header. An empty token
// yields an empty header value so that anonymous calls carry no credential.
func BearerToken(token string) string {
	if token == "" {
		return ""
	}
	return BearerPrefix + token
}

// StripBearer returns the raw token from an Authorization header value and
// reports whether the bearer scheme was present.
func StripBearer(header string) (string, bool) {
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", false
	}
	tok := strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
	return tok, tok != ""
}

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal once they have been sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
