package config

type DatabaseConfig struct {
	SQLiteDSN string
	// MaxValueBytes caps a single local-store value, like a browser storage quota.
	MaxValueBytes int
}

func loadDatabase(e *env) DatabaseConfig {
	return DatabaseConfig{
		SQLiteDSN:     e.str("SQLITE_DSN", "./data/foodtrace.db"),
		MaxValueBytes: e.positive("LOCAL_STORE_MAX_BYTES", 5<<20),
	}
}
