package config

// ReputationConfig bounds the raw on-chain reputation before it is rescaled
// to 0-100. The defaults are a heuristic; the contract does not define a range.
type ReputationConfig struct {
	Min int64
	Max int64
}

func loadReputation(e *env) ReputationConfig {
	return ReputationConfig{
		Min: e.i64("REPUTATION_MIN", -100),
		Max: e.i64("REPUTATION_MAX", 200),
	}
}
