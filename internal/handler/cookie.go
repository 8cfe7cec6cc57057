package handler

import "net/http"

const (
	sessionCookieName = "accessToken"

	// sessionCookieMaxAge is fixed policy, independent of the configured
	// token TTL. The default TTL of 24h matches it; overriding
	// ACCESS_TOKEN_EXPIRY lets the two drift, in which case whichever
	// expires first ends the session.
	sessionCookieMaxAge = 86400 // 1 day
)

// setSessionCookie attaches a session token to the response. HttpOnly
// keeps scripts away from the token, Secure restricts it to TLS, and
// SameSite=Strict blocks cross-site submission.
func setSessionCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   sessionCookieMaxAge,
	})
}

// clearSessionCookie removes the session cookie. The HttpOnly, Secure,
// and Path attributes must match the ones used to set it, or browsers
// will not reliably drop it.
func clearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		MaxAge:   -1,
	})
}
