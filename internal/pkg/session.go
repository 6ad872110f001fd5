package pkg

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	SessionCookieName = "user_session"
	sessionCookieTTL  = 24 * time.Hour
)

// GenerateNewSessionID - generates a new unique sessionID.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// IsSessionID - reports whether id looks like a session id issued by GenerateNewSessionID.
func IsSessionID(id string) bool {
	return uuid.Validate(id) == nil
}

// SessionFromRequest - returns the session id carried by the request cookie.
// If there is none, or it was not issued by us, a fresh cookie is returned with created set.
func SessionFromRequest(req *http.Request) (cookie *http.Cookie, created bool) {
	cookie, err := req.Cookie(SessionCookieName)
	if err == nil && IsSessionID(cookie.Value) {
		return cookie, false
	}

	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    GenerateNewSessionID(),
		Expires:  time.Now().Add(sessionCookieTTL),
		Path:     "/",
		HttpOnly: true,
	}, true
}
