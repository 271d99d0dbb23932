package score

import (
	"context"
	"math/big"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/feedback"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/store"
)

// ReputationReader reads the raw on-chain counter. Nil means unavailable.
type ReputationReader interface {
	GetReputation(ctx context.Context, address string) *big.Int
}

type Summary struct {
	Address      string   `json:"address"`
	Reputation   *string  `json:"reputation"`
	OnchainScore *int     `json:"onchainScore"`
	LocalAverage *float64 `json:"localAverage"`
	ReviewCount  int      `json:"reviewCount"`
	Composite    *int     `json:"composite"`
	Badge        string   `json:"badge,omitempty"`

	Reviews []feedback.Review `json:"reviews"`
}

type Service struct {
	reputation ReputationReader
	sellers    *feedback.Journal[feedback.Review]
	dealers    *feedback.Journal[feedback.Review]
	bounds     Bounds
}

func NewService(rep ReputationReader, sellers, dealers *feedback.Journal[feedback.Review], bounds Bounds) *Service {
	return &Service{reputation: rep, sellers: sellers, dealers: dealers, bounds: bounds.orDefault()}
}

func (s *Service) Seller(ctx context.Context, address string) Summary {
	return s.summarize(ctx, address, s.sellers)
}

func (s *Service) Dealer(ctx context.Context, address string) Summary {
	return s.summarize(ctx, address, s.dealers)
}

func (s *Service) summarize(ctx context.Context, address string, journal *feedback.Journal[feedback.Review]) Summary {
	addr := store.SanitizeAddress(address)
	out := Summary{Address: addr, Reviews: []feedback.Review{}}
	if addr == "" {
		return out
	}
	if s.reputation != nil {
		if raw := s.reputation.GetReputation(ctx, addr); raw != nil {
			str := raw.String()
			out.Reputation = &str
			out.OnchainScore = FromReputation(raw, s.bounds)
		}
	}
	if journal != nil {
		out.Reviews = journal.List(ctx, addr)
	}
	out.ReviewCount = len(out.Reviews)
	out.LocalAverage = feedback.AverageRating(out.Reviews)
	out.Composite = Composite(out.OnchainScore, out.LocalAverage)
	out.Badge = Badge(out.Composite)
	return out
}
