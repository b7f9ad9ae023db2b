package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"huddle/internal/domain/models"
	"huddle/internal/httputil"

	"github.com/golang-jwt/jwt/v5"
)

// stubVerifier accepts exactly one token string.
type stubVerifier struct {
	token  string
	claims *models.IdentityClaims
}

func (v *stubVerifier) VerifyToken(tokenString string) (*models.IdentityClaims, error) {
	if tokenString != v.token {
		return nil, fmt.Errorf("unknown token")
	}
	return v.claims, nil
}

func (v *stubVerifier) Close() error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStubVerifier() *stubVerifier {
	claims := &models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		Email:            "user@example.com",
		GivenName:        "Uma",
		FamilyName:       "Thur",
	}
	claims.RealmAccess.Roles = []string{"member"}
	return &stubVerifier{token: "good-token", claims: claims}
}

func TestAuthMiddlewareInjectsIdentity(t *testing.T) {
	var got httputil.Identity
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = httputil.GetIdentity(r)
	})

	handler := AuthMiddleware(newStubVerifier(), testLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !ok {
		t.Fatal("identity missing from request context")
	}
	if got.UserID != "user-1" || got.Email != "user@example.com" {
		t.Errorf("identity = %+v", got)
	}
	if len(got.Roles) != 1 || got.Roles[0] != "member" {
		t.Errorf("roles = %v", got.Roles)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler ran without a token")
	})
	handler := AuthMiddleware(newStubVerifier(), testLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler ran with a bad token")
	})
	handler := AuthMiddleware(newStubVerifier(), testLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddlewareHealthStaysPublic(t *testing.T) {
	var ran bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { ran = true })
	handler := AuthMiddleware(newStubVerifier(), testLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !ran {
		t.Error("health check was gated behind auth")
	}
}

func TestRequireRoles(t *testing.T) {
	protected := RequireRoles("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name  string
		roles []string
		auth  bool
		want  int
	}{
		{"matching role", []string{"member", "admin"}, true, http.StatusOK},
		{"missing role", []string{"member"}, true, http.StatusForbidden},
		{"no session", nil, false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
			if tt.auth {
				req = httputil.WithIdentity(req, httputil.Identity{UserID: "user-1", Roles: tt.roles})
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
