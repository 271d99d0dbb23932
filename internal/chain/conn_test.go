package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

// First Hardhat development account.
const hardhatKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestNewConnSanitizesAddress(t *testing.T) {
	b := newStubBackend()
	conn, err := NewConn(context.Background(), b, Options{ContractAddress: "\u200b " + testContract + " ", ExpectedChainID: 1}, nil)
	if err != nil {
		t.Fatalf("new conn: %v", err)
	}
	if conn.Address() != common.HexToAddress(testContract) {
		t.Fatalf("unexpected address %s", conn.Address().Hex())
	}
	if conn.ChainID().Int64() != 31337 {
		t.Fatalf("unexpected chain id %s", conn.ChainID())
	}
	if _, ok := conn.Contract().Signer(); ok {
		t.Fatalf("fresh connection must be read-only")
	}
}

func TestNewConnRejectsBadAddress(t *testing.T) {
	_, err := NewConn(context.Background(), newStubBackend(), Options{ContractAddress: "traceability.eth"}, nil)
	if !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
}

func TestConnectDisconnectLifecycle(t *testing.T) {
	ctx := context.Background()
	b := newStubBackend()
	conn, err := NewConn(ctx, b, Options{ContractAddress: testContract}, nil)
	if err != nil {
		t.Fatalf("new conn: %v", err)
	}

	if _, err := conn.Connect(ctx, ""); !errors.Is(err, ErrNoSigner) {
		t.Fatalf("expected ErrNoSigner for empty key, got %v", err)
	}
	if _, err := conn.Connect(ctx, "zz"); err == nil {
		t.Fatalf("expected error for malformed key")
	}

	from, err := conn.Connect(ctx, hardhatKey)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if from != common.HexToAddress(DefaultDeployer) {
		t.Fatalf("unexpected signer %s", from.Hex())
	}
	if got, ok := conn.Contract().Signer(); !ok || got != from {
		t.Fatalf("contract not rebound to signer")
	}
	if got, ok := conn.SignerAddress(); !ok || got != from {
		t.Fatalf("signer address not reported")
	}

	if err := conn.Disconnect(ctx); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
	if _, ok := conn.Contract().Signer(); ok {
		t.Fatalf("disconnect must drop the signer")
	}

	b.chainID = nil
	if err := conn.ReinitializeReadOnly(ctx); err == nil {
		t.Fatalf("expected reinitialize to surface rpc failure")
	}
	conn.Close()
}
