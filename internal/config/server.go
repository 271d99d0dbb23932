package config

type ServerConfig struct {
	HTTPAddr string
	// CORSOrigins comes from a comma-separated list; "*" allows any origin.
	CORSOrigins []string
}

func loadServer(e *env) ServerConfig {
	return ServerConfig{
		HTTPAddr:    e.str("HTTP_ADDR", ":8080"),
		CORSOrigins: e.list("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}
