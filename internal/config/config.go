package config

import (
	"os"
)

type Config struct {
	Port        string
	Environment string
	// Identity provider (Keycloak-style realm)
	KeycloakURL     string
	KeycloakRealm   string
	KeycloakJWKSURL string // Constructed from KeycloakURL + realm certs endpoint
	CORSOrigins     string
	// Upstream media-service the transport shim talks to
	MediaServiceURL   string
	MediaServiceToken string
	// Optional snapshot cache
	RedisAddr string
	// Workspace seed fixture (YAML); empty means start from an empty workspace
	SeedFile string
	// Session identity the workspace acts as
	ActingUserID    string
	ActingUserEmail string
	ActingUserName  string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	keycloakURL := getEnv("KEYCLOAK_URL", "")
	realm := getEnv("KEYCLOAK_REALM", "huddle")

	// Construct JWKS URL from the realm's OpenID Connect certs endpoint
	jwksURL := keycloakURL + "/realms/" + realm + "/protocol/openid-connect/certs"

	return &Config{
		Port:              getEnv("PORT", "8080"),
		Environment:       env,
		KeycloakURL:       keycloakURL,
		KeycloakRealm:     realm,
		KeycloakJWKSURL:   jwksURL,
		CORSOrigins:       getEnv("CORS_ORIGINS", "http://localhost:3000"),
		MediaServiceURL:   getEnv("MEDIA_SERVICE_URL", "http://localhost:9000"),
		MediaServiceToken: getEnv("MEDIA_SERVICE_TOKEN", ""),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		SeedFile:          getEnv("SEED_FILE", ""),
		ActingUserID:      getEnv("ACTING_USER_ID", "local-user"),
		ActingUserEmail:   getEnv("ACTING_USER_EMAIL", "dev@huddle.local"),
		ActingUserName:    getEnv("ACTING_USER_NAME", "Local User"),
		// Debug defaults to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
