package config

import "time"

// IndexerConfig drives the BatchEventLog indexer. Zero sizes fall back to the
// pipeline defaults.
type IndexerConfig struct {
	Enabled       bool
	ChunkSize     uint64
	Confirmations uint64
	PollInterval  time.Duration
	RetryDelay    time.Duration
	DecodeWorkers int
	WriteWorkers  int
}

func loadIndexer(e *env) IndexerConfig {
	return IndexerConfig{
		Enabled:       e.boolean("INDEXER_ENABLED", true),
		ChunkSize:     e.u64("INDEXER_CHUNK_SIZE", 2_000),
		Confirmations: e.u64("INDEXER_CONFIRMATIONS", 0),
		PollInterval:  e.duration("INDEXER_POLL_INTERVAL", time.Second, 15*time.Second),
		RetryDelay:    e.duration("INDEXER_RETRY_DELAY", time.Second, 5*time.Second),
		DecodeWorkers: e.positive("INDEXER_DECODE_WORKERS", 4),
		WriteWorkers:  e.positive("INDEXER_WRITE_WORKERS", 2),
	}
}
