package chain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	AdminRole       = "ADMIN_ROLE"
	ProcessorRole   = "PROCESSOR_ROLE"
	DistributorRole = "DISTRIBUTOR_ROLE"
	RetailerRole    = "RETAILER_ROLE"
	OracleRole      = "ORACLE_ROLE"
)

// DefaultDeployer is the first Hardhat dev account, which holds ADMIN_ROLE
// after a local deployment.
const DefaultDeployer = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

var roleKeys = []string{AdminRole, ProcessorRole, DistributorRole, RetailerRole, OracleRole}

var roleHashes = map[string]common.Hash{
	AdminRole:       {},
	ProcessorRole:   crypto.Keccak256Hash([]byte(ProcessorRole)),
	DistributorRole: crypto.Keccak256Hash([]byte(DistributorRole)),
	RetailerRole:    crypto.Keccak256Hash([]byte(RetailerRole)),
	OracleRole:      crypto.Keccak256Hash([]byte(OracleRole)),
}

// RoleKeys returns the known role names in display order.
func RoleKeys() []string {
	out := make([]string, len(roleKeys))
	copy(out, roleKeys)
	return out
}

func RoleHash(key string) (common.Hash, error) {
	h, ok := roleHashes[key]
	if !ok {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrInvalidRole, key)
	}
	return h, nil
}

type Roles struct {
	IsAdmin       bool `json:"isAdmin"`
	IsProcessor   bool `json:"isProcessor"`
	IsDistributor bool `json:"isDistributor"`
	IsRetailer    bool `json:"isRetailer"`
	IsOracle      bool `json:"isOracle"`
	HasAnyRole    bool `json:"hasAnyRole"`
}
