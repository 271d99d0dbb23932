package config

import "strings"

type LogConfig struct {
	Level  string
	Format string
}

func loadLog(e *env) LogConfig {
	return LogConfig{
		Level:  strings.ToLower(e.str("LOG_LEVEL", "info")),
		Format: strings.ToLower(e.str("LOG_FORMAT", "console")),
	}
}
