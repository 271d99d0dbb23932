package config

import "time"

type AuthConfig struct {
	JWTSecret     string
	JWTTTL        time.Duration
	NonceTTL      time.Duration
	SIWEDomain    string
	SIWEURI       string
	SIWEStatement string
	SIWEChainID   uint64
}

func loadAuth(e *env) AuthConfig {
	return AuthConfig{
		JWTSecret:     e.required("JWT_SECRET"),
		JWTTTL:        e.duration("JWT_TTL", time.Hour, 24*time.Hour),
		NonceTTL:      e.duration("SIWE_NONCE_TTL", time.Second, 5*time.Minute),
		SIWEDomain:    e.str("SIWE_DOMAIN", ""),
		SIWEURI:       e.str("SIWE_URI", ""),
		SIWEStatement: e.str("SIWE_STATEMENT", ""),
		SIWEChainID:   e.u64("SIWE_CHAIN_ID", 0),
	}
}
