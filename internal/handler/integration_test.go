package handler_test

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gatehouse-app/gatehouse/internal/handler"
)

func TestIntegration_RegisterLoginMeLogout(t *testing.T) {
	auth := newTestAuth(t)

	mux := http.NewServeMux()
	// Secure cookies never reach a cookie jar over plain HTTP, so run
	// the end-to-end flow with the local-development toggle.
	handler.RegisterRoutes(mux, auth, false)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("create cookie jar: %v", err)
	}
	client := &http.Client{Jar: jar}

	// 1. Register a new user.
	resp, err := client.Post(srv.URL+"/api/auth/register", "application/json",
		strings.NewReader(`{"name":"Ann","email":"a@x.com","password":"p1"}`))
	if err != nil {
		t.Fatalf("POST /api/auth/register: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", resp.StatusCode)
	}

	srvURL, _ := url.Parse(srv.URL)
	if !hasSessionCookie(jar, srvURL) {
		t.Fatal("expected accessToken cookie after register")
	}

	// 2. The fresh session reaches the protected route.
	resp, err = client.Get(srv.URL + "/api/auth/me")
	if err != nil {
		t.Fatalf("GET /api/auth/me: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", resp.StatusCode)
	}

	// 3. Login again for a fresh cookie.
	resp, err = client.Post(srv.URL+"/api/auth/login", "application/json",
		strings.NewReader(`{"email":"a@x.com","password":"p1"}`))
	if err != nil {
		t.Fatalf("POST /api/auth/login: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}

	// 4. Logout drops the cookie; the protected route rejects us.
	resp, err = client.Post(srv.URL+"/api/auth/logout", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /api/auth/logout: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", resp.StatusCode)
	}
	if hasSessionCookie(jar, srvURL) {
		t.Fatal("expected accessToken cookie to be cleared after logout")
	}

	resp, err = client.Get(srv.URL + "/api/auth/me")
	if err != nil {
		t.Fatalf("GET /api/auth/me after logout: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me after logout: expected 401, got %d", resp.StatusCode)
	}
}

func hasSessionCookie(jar http.CookieJar, u *url.URL) bool {
	for _, c := range jar.Cookies(u) {
		if c.Name == "accessToken" && c.Value != "" {
			return true
		}
	}
	return false
}
