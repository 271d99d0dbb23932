package config

import "errors"

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Chain      ChainConfig
	Reputation ReputationConfig
	Auth       AuthConfig
	Indexer    IndexerConfig
	Watcher    WatcherConfig
	Log        LogConfig
}

// Load reads the process environment, after loading .env if present. The
// returned Config is fully populated with defaults even when err lists
// missing or malformed variables.
func Load() (Config, error) {
	dotenv := loadDotenv()
	var e env
	cfg := Config{
		Server:     loadServer(&e),
		Database:   loadDatabase(&e),
		Chain:      loadChain(&e),
		Reputation: loadReputation(&e),
		Auth:       loadAuth(&e),
		Indexer:    loadIndexer(&e),
		Watcher:    loadWatcher(&e),
		Log:        loadLog(&e),
	}
	return cfg, errors.Join(dotenv, e.err())
}

// LoadCLI is Load without the server-only sections, for ftctl.
func LoadCLI() (Config, error) {
	dotenv := loadDotenv()
	var e env
	cfg := Config{
		Database:   loadDatabase(&e),
		Chain:      loadChain(&e),
		Reputation: loadReputation(&e),
		Watcher:    loadWatcher(&e),
		Log:        loadLog(&e),
	}
	return cfg, errors.Join(dotenv, e.err())
}
