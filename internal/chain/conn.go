package chain

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

type Options struct {
	RPCURL          string
	ContractAddress string
	ABIPath         string
	// ExpectedChainID only produces a warning on mismatch. Zero skips the check.
	ExpectedChainID uint64
	TxTimeout       time.Duration
}

// Conn owns one RPC connection and the contract handle bound to it. The
// handle is read-only until Connect installs a signer.
type Conn struct {
	opts    Options
	log     *zap.SugaredLogger
	backend Backend
	closer  func()
	abi     abi.ABI
	address common.Address
	chainID *big.Int

	mu       sync.RWMutex
	contract Contract
	signer   *bind.TransactOpts
}

// Dial connects read-only to opts.RPCURL.
func Dial(ctx context.Context, opts Options, log *zap.SugaredLogger) (*Conn, error) {
	client, err := ethclient.DialContext(ctx, opts.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", opts.RPCURL, err)
	}
	conn, err := NewConn(ctx, client, opts, log)
	if err != nil {
		client.Close()
		return nil, err
	}
	conn.closer = client.Close
	return conn, nil
}

// NewConn wraps an existing backend, e.g. a simulated chain in tests.
func NewConn(ctx context.Context, backend Backend, opts Options, log *zap.SugaredLogger) (*Conn, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	addr := store.SanitizeAddress(opts.ContractAddress)
	if !common.IsHexAddress(addr) {
		return nil, fmt.Errorf("contract address %q: %w", opts.ContractAddress, ErrInvalidAddress)
	}
	parsed, err := LoadABI(opts.ABIPath)
	if err != nil {
		return nil, err
	}
	if missing := MissingMethods(parsed); len(missing) > 0 {
		log.Warnf("contract abi lacks %v", missing)
	}
	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}
	if opts.ExpectedChainID != 0 && chainID.Uint64() != opts.ExpectedChainID {
		log.Warnf("wrong network: connected to chain %s, expected %d", chainID, opts.ExpectedChainID)
	}
	c := &Conn{
		opts:    opts,
		log:     log,
		backend: backend,
		abi:     parsed,
		address: common.HexToAddress(addr),
		chainID: chainID,
	}
	c.contract = c.bind(nil)
	log.Infof("contract %s ready on chain %s (read-only)", c.address.Hex(), chainID)
	return c, nil
}

func (c *Conn) bind(opts *bind.TransactOpts) Contract {
	return newContractAdapter(c.address, c.abi, c.backend, opts, c.opts.TxTimeout)
}

// Contract returns the current handle. It is never nil.
func (c *Conn) Contract() Contract {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.contract
}

func (c *Conn) Backend() Backend        { return c.backend }
func (c *Conn) ABI() abi.ABI            { return c.abi }
func (c *Conn) Address() common.Address { return c.address }

func (c *Conn) ChainID() *big.Int { return new(big.Int).Set(c.chainID) }

// Connect installs keyHex as the signing account and rebinds the contract.
func (c *Conn) Connect(ctx context.Context, keyHex string) (common.Address, error) {
	if keyHex == "" {
		return common.Address{}, ErrNoSigner
	}
	opts, from, err := NewTransactor(keyHex, c.chainID)
	if err != nil {
		return common.Address{}, err
	}
	opts.Context = ctx
	c.mu.Lock()
	c.signer = opts
	c.contract = c.bind(opts)
	c.mu.Unlock()
	c.log.Infof("signer %s connected", from.Hex())
	return from, nil
}

// Disconnect drops the signer and falls back to a read-only handle.
func (c *Conn) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	c.signer = nil
	c.contract = c.bind(nil)
	c.mu.Unlock()
	c.log.Infof("signer disconnected")
	return c.ReinitializeReadOnly(ctx)
}

// ReinitializeReadOnly rebuilds the read-only handle, keeping no signer.
func (c *Conn) ReinitializeReadOnly(ctx context.Context) error {
	if _, err := c.backend.ChainID(ctx); err != nil {
		c.log.Warnf("reinitialize read-only: %v", err)
		return fmt.Errorf("reinitialize read-only: %w", err)
	}
	c.mu.Lock()
	c.signer = nil
	c.contract = c.bind(nil)
	c.mu.Unlock()
	return nil
}

// SignerAddress reports the connected signer, if any.
func (c *Conn) SignerAddress() (common.Address, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.signer == nil {
		return common.Address{}, false
	}
	return c.signer.From, true
}

func (c *Conn) Close() {
	if c.closer != nil {
		c.closer()
	}
}
