package deploy

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

var ErrNoAddress = errors.New("no contract address found in deployment file")

// Manifest is the JSON a deploy script leaves behind. Only the address is
// required; the other fields are informational.
type Manifest struct {
	ContractAddress string `json:"contractAddress"`
	Address         string `json:"address"`
	Contract        *struct {
		Address string `json:"address"`
	} `json:"contract,omitempty"`
	Network     string `json:"network"`
	ChainID     any    `json:"chainId"`
	Deployer    string `json:"deployer"`
	BlockNumber uint64 `json:"blockNumber"`
}

// ResolvedAddress picks contractAddress, then address, then contract.address.
func (m Manifest) ResolvedAddress() (common.Address, error) {
	candidates := []string{m.ContractAddress, m.Address}
	if m.Contract != nil {
		candidates = append(candidates, m.Contract.Address)
	}
	for _, c := range candidates {
		c = store.SanitizeAddress(c)
		if c == "" {
			continue
		}
		if !common.IsHexAddress(c) {
			return common.Address{}, fmt.Errorf("invalid contract address %q", c)
		}
		return common.HexToAddress(c), nil
	}
	return common.Address{}, ErrNoAddress
}

func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m, fmt.Errorf("deployment file not found: %s", path)
		}
		return m, err
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("decode deployment file: %w", err)
	}
	return m, nil
}
