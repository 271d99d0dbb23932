package config

import "time"

type WatcherConfig struct {
	PollInterval time.Duration
}

func loadWatcher(e *env) WatcherConfig {
	return WatcherConfig{
		PollInterval: e.duration("BLOCK_POLL_INTERVAL", time.Second, 4*time.Second),
	}
}
