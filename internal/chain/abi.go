package chain

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

//go:embed foodtrace_abi.json
var defaultABIJSON []byte

const batchEventName = "BatchEventLog"

// RequiredMethods lists the contract functions the service calls.
var RequiredMethods = []string{
	"createBatch",
	"getBatchInfo",
	"getBatchCount",
	"hasRole",
	"grantRole",
	"revokeRole",
	"getReputation",
}

func DefaultABI() abi.ABI {
	parsed, err := abi.JSON(bytes.NewReader(defaultABIJSON))
	if err != nil {
		panic(err)
	}
	return parsed
}

// LoadABI reads either a Hardhat artifact ({"abi": [...]}) or a bare ABI
// array. An empty path yields the embedded ABI.
func LoadABI(path string) (abi.ABI, error) {
	if path == "" {
		return DefaultABI(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return abi.ABI{}, fmt.Errorf("read abi %s: %w", path, err)
	}
	return ParseABI(raw)
}

func ParseABI(raw []byte) (abi.ABI, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var artifact struct {
			ABI json.RawMessage `json:"abi"`
		}
		if err := json.Unmarshal(trimmed, &artifact); err != nil {
			return abi.ABI{}, fmt.Errorf("decode artifact: %w", err)
		}
		if len(artifact.ABI) == 0 {
			return abi.ABI{}, fmt.Errorf("artifact has no abi field")
		}
		trimmed = artifact.ABI
	}
	parsed, err := abi.JSON(bytes.NewReader(trimmed))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("parse abi: %w", err)
	}
	return parsed, nil
}

// MissingMethods reports required methods and the batch event absent from a.
func MissingMethods(a abi.ABI) []string {
	var missing []string
	for _, name := range RequiredMethods {
		if _, ok := a.Methods[name]; !ok {
			missing = append(missing, name)
		}
	}
	if _, ok := a.Events[batchEventName]; !ok {
		missing = append(missing, batchEventName)
	}
	return missing
}
