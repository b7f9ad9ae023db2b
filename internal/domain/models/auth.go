package models

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims represents the JWT claims issued by the identity
// provider (a Keycloak-style realm) for an authenticated session.
type IdentityClaims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string `json:"email"`
	Name                 string `json:"name"`
	GivenName            string `json:"given_name"`
	FamilyName           string `json:"family_name"`
	PreferredUsername    string `json:"preferred_username"`
	RealmAccess          struct {
		Roles []string `json:"roles"`
	} `json:"realm_access"`
}

// UserID returns the stable user identifier from the subject claim.
func (c *IdentityClaims) UserID() string {
	return c.Subject
}

// HasRole reports whether the realm role set contains the given role.
func (c *IdentityClaims) HasRole(role string) bool {
	for _, r := range c.RealmAccess.Roles {
		if r == role {
			return true
		}
	}
	return false
}
