package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Contract is the typed capability set of the traceability contract.
type Contract interface {
	Address() common.Address
	// Signer reports the address transactions are sent from, if any.
	Signer() (common.Address, bool)

	CreateBatch(ctx context.Context, name, details string) (*types.Receipt, error)
	GetBatchInfo(ctx context.Context, id *big.Int) (*BatchInfo, error)
	GetBatchCount(ctx context.Context) (*big.Int, error)
	HasRole(ctx context.Context, role common.Hash, account common.Address) (bool, error)
	GrantRole(ctx context.Context, role common.Hash, account common.Address) (*types.Receipt, error)
	RevokeRole(ctx context.Context, role common.Hash, account common.Address) (*types.Receipt, error)
	GetReputation(ctx context.Context, account common.Address) (*big.Int, error)

	// BatchEvents returns BatchEventLog entries in [from, to]; nil to means latest.
	BatchEvents(ctx context.Context, from uint64, to *uint64) ([]BatchEvent, error)
	ParseBatchEvent(lg types.Log) (*BatchEvent, error)
}

// BatchInfo is the getBatchInfo result. Fields the node did not return stay nil.
type BatchInfo struct {
	BatchID           *big.Int
	CreationTimestamp *big.Int
	Processor         *common.Address
	IsCompromised     *bool
	Status            *uint8
	CurrentOwner      *common.Address
}

type BatchEvent struct {
	BatchID     *big.Int
	EventType   string
	Details     string
	Temperature *big.Int
	Timestamp   uint64
	Actor       common.Address

	Contract    common.Address
	TxHash      common.Hash
	BlockNumber uint64
	LogIndex    uint
}

type contractAdapter struct {
	address   common.Address
	abi       abi.ABI
	backend   Backend
	bound     *bind.BoundContract
	opts      *bind.TransactOpts
	from      common.Address
	txTimeout time.Duration
}

func newContractAdapter(address common.Address, parsed abi.ABI, backend Backend, opts *bind.TransactOpts, txTimeout time.Duration) *contractAdapter {
	a := &contractAdapter{
		address:   address,
		abi:       parsed,
		backend:   backend,
		bound:     bind.NewBoundContract(address, parsed, backend, backend, backend),
		opts:      opts,
		txTimeout: txTimeout,
	}
	if opts != nil {
		a.from = opts.From
	}
	return a
}

func (a *contractAdapter) Address() common.Address { return a.address }

func (a *contractAdapter) Signer() (common.Address, bool) {
	return a.from, a.opts != nil
}

func (a *contractAdapter) call(ctx context.Context, method string, args ...any) ([]any, error) {
	input, err := a.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	to := a.address
	out, err := a.backend.CallContract(ctx, ethereum.CallMsg{To: &to, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("call %s: empty result, is the contract deployed at %s", method, to.Hex())
	}
	values, err := a.abi.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	return values, nil
}

func (a *contractAdapter) transact(ctx context.Context, method string, args ...any) (*types.Receipt, error) {
	if a.opts == nil {
		return nil, ErrNoSigner
	}
	auth := *a.opts
	auth.Context = ctx
	tx, err := a.bound.Transact(&auth, method, args...)
	if err != nil {
		return nil, fmt.Errorf("send %s: %w", method, err)
	}
	waitCtx := ctx
	if a.txTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, a.txTimeout)
		defer cancel()
	}
	receipt, err := bind.WaitMined(waitCtx, a.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("wait %s %s: %w", method, tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%s %s: %w", method, tx.Hash().Hex(), ErrTxReverted)
	}
	return receipt, nil
}

func (a *contractAdapter) CreateBatch(ctx context.Context, name, details string) (*types.Receipt, error) {
	return a.transact(ctx, "createBatch", name, details)
}

func (a *contractAdapter) GetBatchInfo(ctx context.Context, id *big.Int) (*BatchInfo, error) {
	values, err := a.call(ctx, "getBatchInfo", id)
	if err != nil {
		return nil, err
	}
	info := &BatchInfo{}
	at := func(i int) any {
		if i < len(values) {
			return values[i]
		}
		return nil
	}
	if v, ok := at(0).(*big.Int); ok {
		info.BatchID = v
	}
	if v, ok := at(1).(*big.Int); ok {
		info.CreationTimestamp = v
	}
	if v, ok := at(2).(common.Address); ok {
		info.Processor = &v
	}
	if v, ok := at(3).(bool); ok {
		info.IsCompromised = &v
	}
	if v, ok := at(4).(uint8); ok {
		info.Status = &v
	}
	if v, ok := at(5).(common.Address); ok {
		info.CurrentOwner = &v
	}
	return info, nil
}

func (a *contractAdapter) GetBatchCount(ctx context.Context) (*big.Int, error) {
	values, err := a.call(ctx, "getBatchCount")
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("getBatchCount: no output")
	}
	count, ok := values[0].(*big.Int)
	if !ok || count == nil {
		return nil, fmt.Errorf("getBatchCount: unexpected output %T", values[0])
	}
	return count, nil
}

func (a *contractAdapter) HasRole(ctx context.Context, role common.Hash, account common.Address) (bool, error) {
	values, err := a.call(ctx, "hasRole", role, account)
	if err != nil {
		return false, err
	}
	if len(values) == 0 {
		return false, fmt.Errorf("hasRole: no output")
	}
	has, ok := values[0].(bool)
	if !ok {
		return false, fmt.Errorf("hasRole: unexpected output %T", values[0])
	}
	return has, nil
}

func (a *contractAdapter) GrantRole(ctx context.Context, role common.Hash, account common.Address) (*types.Receipt, error) {
	return a.transact(ctx, "grantRole", role, account)
}

func (a *contractAdapter) RevokeRole(ctx context.Context, role common.Hash, account common.Address) (*types.Receipt, error) {
	return a.transact(ctx, "revokeRole", role, account)
}

func (a *contractAdapter) GetReputation(ctx context.Context, account common.Address) (*big.Int, error) {
	values, err := a.call(ctx, "getReputation", account)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("getReputation: no output")
	}
	rep, ok := values[0].(*big.Int)
	if !ok || rep == nil {
		return nil, fmt.Errorf("getReputation: unexpected output %T", values[0])
	}
	return rep, nil
}

func (a *contractAdapter) BatchEvents(ctx context.Context, from uint64, to *uint64) ([]BatchEvent, error) {
	ev, ok := a.abi.Events[batchEventName]
	if !ok {
		return nil, fmt.Errorf("abi has no %s event", batchEventName)
	}
	q := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		Addresses: []common.Address{a.address},
		Topics:    [][]common.Hash{{ev.ID}},
	}
	if to != nil {
		q.ToBlock = new(big.Int).SetUint64(*to)
	}
	logs, err := a.backend.FilterLogs(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("filter %s: %w", batchEventName, err)
	}
	out := make([]BatchEvent, 0, len(logs))
	for _, lg := range logs {
		parsed, err := a.ParseBatchEvent(lg)
		if err != nil {
			continue
		}
		out = append(out, *parsed)
	}
	return out, nil
}

func (a *contractAdapter) ParseBatchEvent(lg types.Log) (*BatchEvent, error) {
	return DecodeBatchEvent(a.abi, lg)
}

// DecodeBatchEvent decodes one BatchEventLog log entry using parsed.
func DecodeBatchEvent(parsed abi.ABI, lg types.Log) (*BatchEvent, error) {
	ev, ok := parsed.Events[batchEventName]
	if !ok {
		return nil, fmt.Errorf("abi has no %s event", batchEventName)
	}
	if len(lg.Topics) == 0 || lg.Topics[0] != ev.ID {
		return nil, fmt.Errorf("log is not %s", batchEventName)
	}
	if len(lg.Topics) < 3 {
		return nil, fmt.Errorf("%s: insufficient topics (got %d)", batchEventName, len(lg.Topics))
	}
	values, err := ev.Inputs.NonIndexed().Unpack(lg.Data)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", batchEventName, err)
	}
	if len(values) != 4 {
		return nil, fmt.Errorf("%s: unexpected decode length %d", batchEventName, len(values))
	}
	eventType, _ := values[0].(string)
	details, _ := values[1].(string)
	temperature, _ := values[2].(*big.Int)
	ts, _ := values[3].(*big.Int)

	out := &BatchEvent{
		BatchID:     new(big.Int).SetBytes(lg.Topics[1].Bytes()),
		EventType:   eventType,
		Details:     details,
		Temperature: temperature,
		Actor:       common.BytesToAddress(lg.Topics[2].Bytes()),
		Contract:    lg.Address,
		TxHash:      lg.TxHash,
		BlockNumber: lg.BlockNumber,
		LogIndex:    lg.Index,
	}
	if ts != nil && ts.IsUint64() {
		out.Timestamp = ts.Uint64()
	}
	return out, nil
}
