package chain

import (
	"context"
	"errors"
	"math/big"
	"sync"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// stubBackend answers contract calls from canned outputs keyed by method name.
type stubBackend struct {
	Backend

	abi     abi.ABI
	chainID *big.Int
	outputs map[string][]byte
	callErr map[string]error
	logs    []types.Log
	queries []ethereum.FilterQuery
	mu      sync.Mutex
}

func newStubBackend() *stubBackend {
	return &stubBackend{
		abi:     DefaultABI(),
		chainID: big.NewInt(31337),
		outputs: map[string][]byte{},
		callErr: map[string]error{},
	}
}

func (s *stubBackend) ChainID(context.Context) (*big.Int, error) {
	if s.chainID == nil {
		return nil, errors.New("rpc down")
	}
	return s.chainID, nil
}

func (s *stubBackend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	method, err := s.abi.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}
	if err := s.callErr[method.Name]; err != nil {
		return nil, err
	}
	return s.outputs[method.Name], nil
}

func (s *stubBackend) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, q)
	return s.logs, nil
}

func (s *stubBackend) setOutput(method string, values ...any) {
	out, err := s.abi.Methods[method].Outputs.Pack(values...)
	if err != nil {
		panic(err)
	}
	s.outputs[method] = out
}

func batchLog(parsed abi.ABI, id int64, eventType string, ts int64, actor common.Address, tx common.Hash, block uint64, index uint) types.Log {
	ev := parsed.Events[batchEventName]
	data, err := ev.Inputs.NonIndexed().Pack(eventType, "details "+eventType, big.NewInt(-4), big.NewInt(ts))
	if err != nil {
		panic(err)
	}
	return types.Log{
		Address:     common.HexToAddress(testContract),
		Topics:      []common.Hash{ev.ID, common.BigToHash(big.NewInt(id)), common.BytesToHash(actor.Bytes())},
		Data:        data,
		TxHash:      tx,
		BlockNumber: block,
		Index:       index,
	}
}

const testContract = "0xe5d918f4777e95F4021Ed1Ef5CCCBB81eeC8Adc9"

// fakeContract is an in-memory Contract for service tests.
type fakeContract struct {
	mu sync.Mutex

	signer     *common.Address
	roles      map[common.Hash]map[common.Address]bool
	roleErr    error
	batches    map[string]*BatchInfo
	infoErr    map[string]error
	count      *big.Int
	countErr   error
	events     []BatchEvent
	eventsErr  error
	reputation map[common.Address]*big.Int
	repErr     error

	createReceipt *types.Receipt
	createErr     error
	granted       []common.Address
	revoked       []common.Address
	eventQueries  [][2]uint64
}

func newFakeContract() *fakeContract {
	return &fakeContract{
		roles:      map[common.Hash]map[common.Address]bool{},
		batches:    map[string]*BatchInfo{},
		infoErr:    map[string]error{},
		reputation: map[common.Address]*big.Int{},
	}
}

func (f *fakeContract) Address() common.Address { return common.HexToAddress(testContract) }

func (f *fakeContract) Signer() (common.Address, bool) {
	if f.signer == nil {
		return common.Address{}, false
	}
	return *f.signer, true
}

func (f *fakeContract) setRole(role common.Hash, who common.Address, has bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.roles[role] == nil {
		f.roles[role] = map[common.Address]bool{}
	}
	f.roles[role][who] = has
}

func (f *fakeContract) CreateBatch(context.Context, string, string) (*types.Receipt, error) {
	return f.createReceipt, f.createErr
}

func (f *fakeContract) GetBatchInfo(_ context.Context, id *big.Int) (*BatchInfo, error) {
	key := id.String()
	if err := f.infoErr[key]; err != nil {
		return nil, err
	}
	info, ok := f.batches[key]
	if !ok {
		return &BatchInfo{BatchID: big.NewInt(0)}, nil
	}
	return info, nil
}

func (f *fakeContract) GetBatchCount(context.Context) (*big.Int, error) {
	if f.countErr != nil {
		return nil, f.countErr
	}
	if f.count == nil {
		return big.NewInt(0), nil
	}
	return f.count, nil
}

func (f *fakeContract) HasRole(_ context.Context, role common.Hash, account common.Address) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.roleErr != nil {
		return false, f.roleErr
	}
	return f.roles[role][account], nil
}

func (f *fakeContract) GrantRole(_ context.Context, role common.Hash, account common.Address) (*types.Receipt, error) {
	f.setRole(role, account, true)
	f.granted = append(f.granted, account)
	return &types.Receipt{TxHash: common.HexToHash("0xaa"), GasUsed: 51000, BlockNumber: big.NewInt(9)}, nil
}

func (f *fakeContract) RevokeRole(_ context.Context, role common.Hash, account common.Address) (*types.Receipt, error) {
	f.setRole(role, account, false)
	f.revoked = append(f.revoked, account)
	return &types.Receipt{TxHash: common.HexToHash("0xbb"), GasUsed: 30000, BlockNumber: big.NewInt(10)}, nil
}

func (f *fakeContract) GetReputation(_ context.Context, account common.Address) (*big.Int, error) {
	if f.repErr != nil {
		return nil, f.repErr
	}
	rep, ok := f.reputation[account]
	if !ok {
		return big.NewInt(0), nil
	}
	return rep, nil
}

func (f *fakeContract) BatchEvents(_ context.Context, from uint64, to *uint64) ([]BatchEvent, error) {
	end := uint64(0)
	if to != nil {
		end = *to
	}
	f.eventQueries = append(f.eventQueries, [2]uint64{from, end})
	if f.eventsErr != nil {
		return nil, f.eventsErr
	}
	var out []BatchEvent
	for _, ev := range f.events {
		if ev.BlockNumber < from || (to != nil && ev.BlockNumber > *to) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func (f *fakeContract) ParseBatchEvent(lg types.Log) (*BatchEvent, error) {
	return DecodeBatchEvent(DefaultABI(), lg)
}
