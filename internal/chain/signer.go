package chain

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func trim0x(s string) string {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s[2:]
	}
	return s
}

func ParsePrivateKey(keyHex string) (*ecdsa.PrivateKey, error) {
	k, err := crypto.HexToECDSA(trim0x(strings.TrimSpace(keyHex)))
	if err != nil {
		return nil, fmt.Errorf("parse signer key: %w", err)
	}
	return k, nil
}

// NewTransactor builds EIP-155 transaction options for key on chainID.
func NewTransactor(keyHex string, chainID *big.Int) (*bind.TransactOpts, common.Address, error) {
	key, err := ParsePrivateKey(keyHex)
	if err != nil {
		return nil, common.Address{}, err
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("build transactor: %w", err)
	}
	return opts, crypto.PubkeyToAddress(key.PublicKey), nil
}
