package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"huddle/internal/domain"
	"huddle/internal/domain/models"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// KeycloakJWTVerifier implements JWTVerifier using the realm's JWKS.
type KeycloakJWTVerifier struct {
	jwks   keyfunc.Keyfunc
	logger *slog.Logger
}

// NewJWTVerifier creates a verifier that fetches public keys from the
// identity provider's JWKS endpoint. Keys are cached and refreshed
// automatically based on HTTP cache headers.
func NewJWTVerifier(jwksURL string, logger *slog.Logger) (JWTVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}

	ctx := context.Background()
	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS client: %w", err)
	}

	logger.Info("JWT verifier initialized", "jwks_url", jwksURL)

	return &KeycloakJWTVerifier{
		jwks:   jwks,
		logger: logger,
	}, nil
}

// VerifyToken validates a JWT token and extracts the identity claims.
// Returns domain.ErrUnauthorized for any invalid, expired or malformed
// token; the caller redirects to the login flow, so the distinction is
// not surfaced.
func (v *KeycloakJWTVerifier) VerifyToken(tokenString string) (*models.IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.IdentityClaims{}, v.jwks.Keyfunc)
	if err != nil {
		v.logger.Debug("token parse failed", "error", err.Error())
		return nil, domain.ErrUnauthorized
	}

	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	// Prevent algorithm confusion attacks - allow only RS256 or ES256
	switch token.Method.Alg() {
	case "RS256", "ES256":
		// allowed
	default:
		v.logger.Warn("token uses unexpected algorithm",
			"algorithm", token.Method.Alg(),
			"allowed", []string{"RS256", "ES256"})
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.IdentityClaims)
	if !ok {
		v.logger.Error("failed to extract claims from token")
		return nil, domain.ErrUnauthorized
	}

	// The subject claim is the stable user id every mutation stamps.
	if claims.Subject == "" {
		v.logger.Debug("token missing subject claim")
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}

// Close releases resources held by the JWT verifier. keyfunc v3 manages
// its own refresh lifecycle, so this is a no-op kept for graceful
// shutdown symmetry.
func (v *KeycloakJWTVerifier) Close() error {
	v.logger.Info("JWT verifier closed")
	return nil
}
