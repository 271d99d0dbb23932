package deploy

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// EIP170Limit is the maximum runtime code size accepted by mainnet clients.
	EIP170Limit = 24576
	// InitCodeWarn flags init code that often breaks gas estimation.
	InitCodeWarn = 65536
)

type Artifact struct {
	ContractName     string `json:"contractName"`
	Bytecode         string `json:"bytecode"`
	DeployedBytecode string `json:"deployedBytecode"`
}

type SizeReport struct {
	Contract      string `json:"contract"`
	InitBytes     int    `json:"initBytes"`
	RuntimeBytes  int    `json:"runtimeBytes"`
	ExceedsEIP170 bool   `json:"exceedsEip170"`
	LargeInitCode bool   `json:"largeInitCode"`
}

func ReadArtifact(path string) (Artifact, error) {
	var a Artifact
	raw, err := os.ReadFile(path)
	if err != nil {
		return a, err
	}
	if err := json.Unmarshal(raw, &a); err != nil {
		return a, fmt.Errorf("decode artifact: %w", err)
	}
	return a, nil
}

// CheckSize measures an artifact. When deployedBytecode is absent the init
// code stands in for the runtime code.
func CheckSize(a Artifact) (SizeReport, error) {
	initBytes, err := codeLen(a.Bytecode)
	if err != nil {
		return SizeReport{}, fmt.Errorf("bytecode: %w", err)
	}
	runtime := a.DeployedBytecode
	if strings.TrimSpace(runtime) == "" || runtime == "0x" {
		runtime = a.Bytecode
	}
	runtimeBytes, err := codeLen(runtime)
	if err != nil {
		return SizeReport{}, fmt.Errorf("deployedBytecode: %w", err)
	}
	return SizeReport{
		Contract:      a.ContractName,
		InitBytes:     initBytes,
		RuntimeBytes:  runtimeBytes,
		ExceedsEIP170: runtimeBytes > EIP170Limit,
		LargeInitCode: initBytes > InitCodeWarn,
	}, nil
}

func codeLen(code string) (int, error) {
	code = strings.TrimSpace(code)
	if code == "" || code == "0x" {
		return 0, nil
	}
	if !strings.HasPrefix(code, "0x") {
		code = "0x" + code
	}
	b, err := hexutil.Decode(code)
	if err != nil {
		return 0, err
	}
	return len(b), nil
}
