package config

import "time"

type ChainConfig struct {
	RPCURL          string
	ContractAddress string
	ABIPath         string
	ChainID         uint64
	DeployBlock     uint64
	SignerKey       string
	TxTimeout       time.Duration
}

func loadChain(e *env) ChainConfig {
	return ChainConfig{
		RPCURL:          e.str("CHAIN_RPC_URL", "http://127.0.0.1:8545"),
		ContractAddress: e.str("CONTRACT_ADDRESS", ""),
		ABIPath:         e.str("CONTRACT_ABI_PATH", ""),
		ChainID:         e.u64("CHAIN_ID", 31337),
		DeployBlock:     e.u64("CONTRACT_DEPLOY_BLOCK", 0),
		SignerKey:       e.str("SIGNER_PRIVATE_KEY", ""),
		TxTimeout:       e.duration("TX_TIMEOUT", time.Second, 2*time.Minute),
	}
}
