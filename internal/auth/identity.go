package auth

import (
	"net/http"
	"strings"
)

// SessionCookie is the cookie browsers carry the session token in; API
// clients use the Authorization header instead.
const SessionCookie = "session"

// PrincipalFromRequest resolves the authenticated profile id from the
// request credential, or "" when the caller is unauthenticated. A bad
// credential is indistinguishable from no credential: both fail closed.
func PrincipalFromRequest(r *http.Request, tokens *TokenManager) string {
	raw := bearerToken(r)
	if raw == "" {
		if cookie, err := r.Cookie(SessionCookie); err == nil {
			raw = cookie.Value
		}
	}
	if raw == "" {
		return ""
	}
	subject, err := tokens.Parse(raw)
	if err != nil {
		return ""
	}
	return subject
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
