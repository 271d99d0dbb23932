package deploy

import (
	"context"
	"fmt"
	"math/big"
	"slices"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/chain"
)

type CodeReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
	CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error)
}

type BatchCounter interface {
	GetBatchCount(ctx context.Context) (*big.Int, error)
}

type ContractReport struct {
	Address        string   `json:"address"`
	ChainID        string   `json:"chainId"`
	CodeBytes      int      `json:"codeBytes"`
	Functions      []string `json:"functions"`
	MissingMethods []string `json:"missingMethods,omitempty"`
	BatchCount     *string  `json:"batchCount"`
	BatchCountErr  string   `json:"batchCountError,omitempty"`
}

// CheckContract verifies that code is deployed at address and that the ABI
// answers getBatchCount. A failing getBatchCount is reported, not returned.
func CheckContract(ctx context.Context, backend CodeReader, counter BatchCounter, address common.Address, parsed abi.ABI) (*ContractReport, error) {
	id, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}
	code, err := backend.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("code at %s: %w", address.Hex(), err)
	}
	report := &ContractReport{
		Address:        address.Hex(),
		ChainID:        id.String(),
		CodeBytes:      len(code),
		MissingMethods: chain.MissingMethods(parsed),
	}
	for name := range parsed.Methods {
		report.Functions = append(report.Functions, name)
	}
	slices.Sort(report.Functions)
	if len(code) == 0 {
		return report, fmt.Errorf("no contract code at %s", address.Hex())
	}
	if _, ok := parsed.Methods["getBatchCount"]; !ok || counter == nil {
		return report, nil
	}
	count, err := counter.GetBatchCount(ctx)
	if err != nil {
		report.BatchCountErr = err.Error()
		return report, nil
	}
	s := count.String()
	report.BatchCount = &s
	return report, nil
}
