package auth

import "huddle/internal/domain/models"

// JWTVerifier defines the interface for JWT token verification.
// This abstraction keeps the middleware agnostic to how tokens are
// verified; the production implementation fetches keys from the
// identity provider's JWKS endpoint.
type JWTVerifier interface {
	// VerifyToken validates a JWT token string and returns the parsed claims.
	// Returns an error if the token is invalid, expired, or has an invalid signature.
	VerifyToken(tokenString string) (*models.IdentityClaims, error)

	// Close releases any resources held by the verifier (e.g., HTTP connections for JWKS).
	// Should be called when the verifier is no longer needed.
	Close() error
}
