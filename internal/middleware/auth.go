package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"huddle/internal/auth"
	"huddle/internal/httputil"
)

// AuthMiddleware gates every route behind the identity provider: it
// extracts the Bearer token, verifies it against the realm's JWKS and
// stores the resolved identity in the request context before any handler
// that stamps author or sender fields runs. Unauthenticated requests get
// 401 and the client redirects to the external login flow.
func AuthMiddleware(verifier auth.JWTVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Health stays public; CORS pre-flight never carries a token.
			if r.URL.Path == "/health" || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				logger.Debug("token rejected", "path", r.URL.Path)
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			identity := httputil.Identity{
				UserID:    claims.UserID(),
				Email:     claims.Email,
				FirstName: claims.GivenName,
				LastName:  claims.FamilyName,
				Roles:     claims.RealmAccess.Roles,
			}
			next.ServeHTTP(w, httputil.WithIdentity(r, identity))
		})
	}
}

// RequireRoles checks a declared role set against the session's realm
// roles before allowing the wrapped handler to run. Any one of the
// given roles is sufficient.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := httputil.GetIdentity(r)
			if !ok {
				httputil.RespondError(w, http.StatusUnauthorized, "no authenticated session")
				return
			}
			for _, want := range roles {
				for _, have := range identity.Roles {
					if have == want {
						next.ServeHTTP(w, r)
						return
					}
				}
			}
			httputil.RespondError(w, http.StatusForbidden, "insufficient role")
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}
