package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/metrics"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/score"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

// ContractSource hands out the current contract handle. *Conn implements it.
type ContractSource interface {
	Contract() Contract
}

type staticSource struct{ c Contract }

func (s staticSource) Contract() Contract { return s.c }

// Static wraps a fixed contract handle.
func Static(c Contract) ContractSource { return staticSource{c: c} }

type Service struct {
	src         ContractSource
	bounds      score.Bounds
	deployBlock uint64
	log         *zap.SugaredLogger
}

func NewService(src ContractSource, bounds score.Bounds, deployBlock uint64, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{src: src, bounds: bounds, deployBlock: deployBlock, log: log}
}

func (s *Service) contract() Contract {
	if s.src == nil {
		return nil
	}
	return s.src.Contract()
}

type EventView struct {
	EventType   string `json:"eventType"`
	Details     string `json:"details"`
	Temperature int64  `json:"temperature"`
	Timestamp   uint64 `json:"timestamp"`
	Actor       string `json:"actor"`
}

type BatchRecord struct {
	BatchID           string     `json:"batchId"`
	CreationTimestamp *uint64    `json:"creationTimestamp"`
	CreationDate      *time.Time `json:"creationDate,omitempty"`
	Processor         *string    `json:"processor"`
	IsCompromised     *bool      `json:"isCompromised"`
	Status            *uint8     `json:"status"`
	StatusLabel       string     `json:"statusLabel"`
	CurrentOwner      *string    `json:"currentOwner"`

	Events      []EventView `json:"events,omitempty"`
	LatestEvent *EventView  `json:"latestEvent,omitempty"`
}

type CreateBatchResult struct {
	BatchID          *string `json:"batchId"`
	TxHash           string  `json:"transactionHash"`
	BlockNumber      uint64  `json:"blockNumber"`
	DerivedFromCount bool    `json:"derivedFromCount,omitempty"`
}

type TxReceipt struct {
	TxHash      string `json:"transactionHash"`
	GasUsed     string `json:"gasUsed"`
	BlockNumber uint64 `json:"blockNumber"`
}

type RoleResult struct {
	RoleKey string     `json:"roleKey"`
	Success bool       `json:"success"`
	Result  *TxReceipt `json:"result,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type AdminInfo struct {
	Deployer           string `json:"deployer"`
	CurrentUser        string `json:"currentUser,omitempty"`
	CurrentUserIsAdmin bool   `json:"currentUserIsAdmin"`
	DeployerIsAdmin    bool   `json:"deployerIsAdmin"`
}

func toEventView(ev BatchEvent) EventView {
	view := EventView{
		EventType: ev.EventType,
		Details:   ev.Details,
		Timestamp: ev.Timestamp,
		Actor:     ev.Actor.Hex(),
	}
	if ev.Temperature != nil && ev.Temperature.IsInt64() {
		view.Temperature = ev.Temperature.Int64()
	}
	return view
}

func toReceipt(r *types.Receipt) *TxReceipt {
	out := &TxReceipt{
		TxHash:  r.TxHash.Hex(),
		GasUsed: fmt.Sprintf("%d", r.GasUsed),
	}
	if r.BlockNumber != nil {
		out.BlockNumber = r.BlockNumber.Uint64()
	}
	return out
}

func buildRecord(info *BatchInfo) BatchRecord {
	rec := BatchRecord{StatusLabel: StatusLabel(info.Status), Status: info.Status, IsCompromised: info.IsCompromised}
	if info.BatchID != nil {
		rec.BatchID = info.BatchID.String()
	}
	if info.CreationTimestamp != nil && info.CreationTimestamp.IsUint64() {
		ts := info.CreationTimestamp.Uint64()
		rec.CreationTimestamp = &ts
		if ts > 0 {
			date := time.Unix(int64(ts), 0).UTC()
			rec.CreationDate = &date
		}
	}
	if info.Processor != nil {
		p := info.Processor.Hex()
		rec.Processor = &p
	}
	if info.CurrentOwner != nil {
		o := info.CurrentOwner.Hex()
		rec.CurrentOwner = &o
	}
	return rec
}

// CreateBatch records a new batch and resolves its id best-effort. A nil
// BatchID in the result means the id could not be determined.
func (s *Service) CreateBatch(ctx context.Context, name, details string) (*CreateBatchResult, error) {
	c := s.contract()
	if c == nil {
		return nil, fmt.Errorf("failed to create batch: %w: contract", ErrMissingArgument)
	}
	if name == "" || details == "" {
		return nil, fmt.Errorf("failed to create batch: %w: product name and details are required", ErrMissingArgument)
	}
	receipt, err := c.CreateBatch(ctx, name, details)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch: %w", err)
	}
	res := &CreateBatchResult{TxHash: receipt.TxHash.Hex()}
	if receipt.BlockNumber != nil {
		res.BlockNumber = receipt.BlockNumber.Uint64()
	}
	s.log.Infof("batch tx %s mined in block %d", res.TxHash, res.BlockNumber)

	if id := s.batchIDFromLogs(c, receipt.Logs); id != nil {
		res.BatchID = id
		return res, nil
	}
	if id := s.batchIDFromFilter(ctx, c, receipt.TxHash, res.BlockNumber); id != nil {
		res.BatchID = id
		return res, nil
	}
	s.log.Warnf("batch created but no %s with batchId found for tx %s", batchEventName, res.TxHash)

	count, err := c.GetBatchCount(ctx)
	if err != nil {
		s.log.Warnf("could not derive batch id from getBatchCount: %v", err)
		return res, nil
	}
	if count.Sign() > 0 {
		id := new(big.Int).Sub(count, big.NewInt(1)).String()
		res.BatchID = &id
		res.DerivedFromCount = true
	}
	return res, nil
}

func (s *Service) batchIDFromLogs(c Contract, logs []*types.Log) *string {
	for _, lg := range logs {
		if lg == nil {
			continue
		}
		ev, err := c.ParseBatchEvent(*lg)
		if err != nil || ev.BatchID == nil {
			continue
		}
		id := ev.BatchID.String()
		return &id
	}
	return nil
}

func (s *Service) batchIDFromFilter(ctx context.Context, c Contract, txHash common.Hash, block uint64) *string {
	from := uint64(0)
	if block > 2 {
		from = block - 2
	}
	to := block + 2
	events, err := c.BatchEvents(ctx, from, &to)
	if err != nil {
		s.log.Warnf("could not query %s in blocks %d-%d: %v", batchEventName, from, to, err)
		return nil
	}
	for _, ev := range events {
		if ev.TxHash == txHash && ev.BatchID != nil {
			id := ev.BatchID.String()
			return &id
		}
	}
	return nil
}

// QueryBatches lists every batch seen in BatchEventLog, falling back to
// 0..count-1 when the node returns no events. Unreadable batches are skipped.
func (s *Service) QueryBatches(ctx context.Context) ([]BatchRecord, error) {
	c := s.contract()
	if c == nil {
		return nil, fmt.Errorf("failed to get batches: %w: contract", ErrMissingArgument)
	}
	events, err := c.BatchEvents(ctx, s.deployBlock, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get batches: %w", err)
	}

	byID := make(map[string][]BatchEvent)
	var ids []string
	for _, ev := range events {
		if ev.BatchID == nil {
			continue
		}
		id := ev.BatchID.String()
		if _, seen := byID[id]; !seen {
			ids = append(ids, id)
		}
		byID[id] = append(byID[id], ev)
	}

	if len(ids) == 0 {
		count, err := c.GetBatchCount(ctx)
		if err != nil {
			s.log.Warnf("no events and getBatchCount fallback failed: %v", err)
		} else if count.IsInt64() {
			for i := int64(0); i < count.Int64(); i++ {
				ids = append(ids, big.NewInt(i).String())
			}
		}
	}

	out := make([]BatchRecord, 0, len(ids))
	for _, id := range ids {
		n, _ := new(big.Int).SetString(id, 10)
		info, err := c.GetBatchInfo(ctx, n)
		if err != nil {
			metrics.ChainReadFailures.WithLabelValues("getBatchInfo").Inc()
			s.log.Warnf("error getting info for batch %s: %v", id, err)
			continue
		}
		rec := buildRecord(info)
		evs := byID[id]
		views := make([]EventView, 0, len(evs))
		for _, ev := range evs {
			views = append(views, toEventView(ev))
		}
		sort.SliceStable(views, func(i, j int) bool { return views[i].Timestamp > views[j].Timestamp })
		if len(views) > 0 {
			rec.Events = views
			latest := views[0]
			rec.LatestEvent = &latest
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Service) GetBatchDetails(ctx context.Context, id string) (*BatchRecord, error) {
	rec, err := s.getBatchDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get batch details: %w", err)
	}
	return rec, nil
}

func (s *Service) getBatchDetails(ctx context.Context, id string) (*BatchRecord, error) {
	c := s.contract()
	id = store.SanitizeAddress(id)
	if c == nil || id == "" {
		return nil, fmt.Errorf("%w: contract and batch id are required", ErrMissingArgument)
	}
	n, ok := new(big.Int).SetString(id, 10)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("invalid batch id %q", id)
	}
	info, err := c.GetBatchInfo(ctx, n)
	if err != nil {
		return nil, err
	}
	if info.BatchID == nil {
		return nil, errors.New("batch data malformed: missing batchId, check contract address and network")
	}
	if info.BatchID.Sign() == 0 {
		return nil, ErrBatchNotFound
	}
	rec := buildRecord(info)
	return &rec, nil
}

func (s *Service) parseAccount(address string) (common.Address, error) {
	addr := store.SanitizeAddress(address)
	if !common.IsHexAddress(addr) {
		return common.Address{}, ErrInvalidAddress
	}
	account := common.HexToAddress(addr)
	if account == (common.Address{}) {
		return common.Address{}, ErrInvalidAddress
	}
	return account, nil
}

func (s *Service) GrantRole(ctx context.Context, roleKey, address string) (*TxReceipt, error) {
	r, err := s.grantRole(ctx, roleKey, address)
	if err != nil {
		return nil, fmt.Errorf("failed to grant role: %w", err)
	}
	return r, nil
}

func (s *Service) grantRole(ctx context.Context, roleKey, address string) (*TxReceipt, error) {
	c := s.contract()
	if c == nil {
		return nil, fmt.Errorf("%w: contract", ErrMissingArgument)
	}
	account, err := s.parseAccount(address)
	if err != nil {
		return nil, err
	}
	from, ok := c.Signer()
	if !ok {
		return nil, ErrNoSigner
	}
	isAdmin, err := c.HasRole(ctx, roleHashes[AdminRole], from)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, fmt.Errorf("%w: current account %s, connect with the deployer account %s", ErrNotAdmin, from.Hex(), DefaultDeployer)
	}
	role, err := RoleHash(roleKey)
	if err != nil {
		return nil, err
	}
	has, err := c.HasRole(ctx, role, account)
	if err != nil {
		return nil, err
	}
	if has {
		return nil, ErrRoleAlreadyGranted
	}
	receipt, err := c.GrantRole(ctx, role, account)
	if err != nil {
		return nil, err
	}
	s.log.Infof("granted %s to %s, gas used %d", roleKey, account.Hex(), receipt.GasUsed)
	return toReceipt(receipt), nil
}

func (s *Service) RevokeRole(ctx context.Context, roleKey, address string) (*TxReceipt, error) {
	r, err := s.revokeRole(ctx, roleKey, address)
	if err != nil {
		return nil, fmt.Errorf("failed to revoke role: %w", err)
	}
	return r, nil
}

func (s *Service) revokeRole(ctx context.Context, roleKey, address string) (*TxReceipt, error) {
	c := s.contract()
	if c == nil {
		return nil, fmt.Errorf("%w: contract", ErrMissingArgument)
	}
	account, err := s.parseAccount(address)
	if err != nil {
		return nil, err
	}
	if _, ok := c.Signer(); !ok {
		return nil, ErrNoSigner
	}
	role, err := RoleHash(roleKey)
	if err != nil {
		return nil, err
	}
	has, err := c.HasRole(ctx, role, account)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, ErrRoleNotGranted
	}
	receipt, err := c.RevokeRole(ctx, role, account)
	if err != nil {
		return nil, err
	}
	s.log.Infof("revoked %s from %s, gas used %d", roleKey, account.Hex(), receipt.GasUsed)
	return toReceipt(receipt), nil
}

// GrantRoles grants each role in turn and reports every outcome.
func (s *Service) GrantRoles(ctx context.Context, address string, roleKeys []string) ([]RoleResult, error) {
	if s.contract() == nil || store.SanitizeAddress(address) == "" || roleKeys == nil {
		return nil, fmt.Errorf("%w: contract, user address, and role keys are required", ErrMissingArgument)
	}
	results := make([]RoleResult, 0, len(roleKeys))
	for _, key := range roleKeys {
		receipt, err := s.GrantRole(ctx, key, address)
		if err != nil {
			results = append(results, RoleResult{RoleKey: key, Error: err.Error()})
			continue
		}
		results = append(results, RoleResult{RoleKey: key, Success: true, Result: receipt})
	}
	return results, nil
}

// CheckRole is false for unknown roles, bad addresses and read failures.
func (s *Service) CheckRole(ctx context.Context, roleKey, address string) bool {
	c := s.contract()
	addr := store.SanitizeAddress(address)
	if c == nil || !common.IsHexAddress(addr) {
		return false
	}
	role, err := RoleHash(roleKey)
	if err != nil {
		return false
	}
	has, err := c.HasRole(ctx, role, common.HexToAddress(addr))
	if err != nil {
		metrics.ChainReadFailures.WithLabelValues("hasRole").Inc()
		s.log.Warnf("check role %s for %s: %v", roleKey, addr, err)
		return false
	}
	return has
}

// UserRoles reads all five roles concurrently. Any failure yields all false.
func (s *Service) UserRoles(ctx context.Context, address string) Roles {
	c := s.contract()
	addr := store.SanitizeAddress(address)
	if c == nil || !common.IsHexAddress(addr) {
		return Roles{}
	}
	account := common.HexToAddress(addr)

	results := make([]bool, len(roleKeys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range roleKeys {
		i, role := i, roleHashes[key]
		g.Go(func() error {
			has, err := c.HasRole(gctx, role, account)
			if err != nil {
				return err
			}
			results[i] = has
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.ChainReadFailures.WithLabelValues("hasRole").Inc()
		s.log.Warnf("get roles for %s: %v", addr, err)
		return Roles{}
	}
	roles := Roles{
		IsAdmin:       results[0],
		IsProcessor:   results[1],
		IsDistributor: results[2],
		IsRetailer:    results[3],
		IsOracle:      results[4],
	}
	roles.HasAnyRole = roles.IsAdmin || roles.IsProcessor || roles.IsDistributor || roles.IsRetailer || roles.IsOracle
	return roles
}

// GetReputation returns nil when the value cannot be read.
func (s *Service) GetReputation(ctx context.Context, address string) *big.Int {
	c := s.contract()
	addr := store.SanitizeAddress(address)
	if c == nil || !common.IsHexAddress(addr) {
		return nil
	}
	rep, err := c.GetReputation(ctx, common.HexToAddress(addr))
	if err != nil {
		metrics.ChainReadFailures.WithLabelValues("getReputation").Inc()
		s.log.Warnw("error fetching reputation", "account", addr, "error", err)
		return nil
	}
	return rep
}

func (s *Service) SellerScore(ctx context.Context, address string) *int {
	return score.FromReputation(s.GetReputation(ctx, address), s.bounds)
}

// AdminInfo reports whether the connected signer and the default deployer hold ADMIN_ROLE.
func (s *Service) AdminInfo(ctx context.Context) AdminInfo {
	info := AdminInfo{Deployer: DefaultDeployer}
	c := s.contract()
	if c == nil {
		return info
	}
	admin := roleHashes[AdminRole]
	if from, ok := c.Signer(); ok {
		info.CurrentUser = from.Hex()
		has, err := c.HasRole(ctx, admin, from)
		if err != nil {
			s.log.Warnf("admin check for %s: %v", from.Hex(), err)
		}
		info.CurrentUserIsAdmin = has
	}
	has, err := c.HasRole(ctx, admin, common.HexToAddress(DefaultDeployer))
	if err != nil {
		s.log.Warnf("admin check for deployer: %v", err)
	}
	info.DeployerIsAdmin = has
	return info
}
