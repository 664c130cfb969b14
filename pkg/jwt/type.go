package jwt

import "time"

// Config holds configuration for the JWT manager.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
	TTL       time.Duration
}

// Manager verifies HS256 tokens issued by the auth service. This service
// does not issue tokens.
type Manager struct {
	secretKey []byte
	issuer    string
	audience  []string
	ttl       time.Duration
}
