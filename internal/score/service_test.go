package score

import (
	"context"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/feedback"
)

type stubReputation struct {
	values map[string]*big.Int
	calls  []string
}

func (s *stubReputation) GetReputation(_ context.Context, address string) *big.Int {
	s.calls = append(s.calls, address)
	return s.values[address]
}

type kv struct {
	mu sync.Mutex
	m  map[string]string
}

func (k *kv) GetValue(_ context.Context, key string) (string, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	v, ok := k.m[key]
	return v, ok, nil
}

func (k *kv) PutValue(_ context.Context, key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.m[key] = value
	return nil
}

func (k *kv) DeleteValue(_ context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.m, key)
	return nil
}

func TestSellerSummary(t *testing.T) {
	ctx := context.Background()
	store := &kv{m: map[string]string{}}
	sellers := feedback.NewSellerFeedback(store, nil)
	dealers := feedback.NewDealerReviews(store, nil)
	rep := &stubReputation{values: map[string]*big.Int{"0xSeller": big.NewInt(170)}}
	svc := NewService(rep, sellers, dealers, DefaultBounds())

	sellers.Add(ctx, "0xseller", feedback.Review{Rating: 2})

	sum := svc.Seller(ctx, " 0xSeller ")
	require.Equal(t, []string{"0xSeller"}, rep.calls)
	require.Equal(t, "170", *sum.Reputation)
	require.Equal(t, 90, *sum.OnchainScore)
	require.Equal(t, 1, sum.ReviewCount)
	require.InDelta(t, 2.0, *sum.LocalAverage, 1e-9)
	require.Equal(t, 75, *sum.Composite)
	require.Equal(t, "success", sum.Badge)

	dealer := svc.Dealer(ctx, "0xSeller")
	require.Equal(t, 0, dealer.ReviewCount)
	require.Equal(t, 90, *dealer.Composite)
}

func TestSummaryWithoutReputation(t *testing.T) {
	ctx := context.Background()
	store := &kv{m: map[string]string{}}
	dealers := feedback.NewDealerReviews(store, nil)
	svc := NewService(&stubReputation{}, nil, dealers, Bounds{})

	sum := svc.Dealer(ctx, "0xdealer")
	require.Nil(t, sum.Reputation)
	require.Nil(t, sum.Composite)
	require.Equal(t, "", sum.Badge)
	require.NotNil(t, sum.Reviews)

	dealers.Add(ctx, "0xdealer", feedback.Review{Rating: 3})
	sum = svc.Dealer(ctx, "0xdealer")
	require.Equal(t, 60, *sum.Composite)
	require.Equal(t, "warning", sum.Badge)

	empty := svc.Seller(ctx, "   ")
	require.Nil(t, empty.Composite)
}
