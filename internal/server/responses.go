package server

import (
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/chain"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/feedback"
	indexersvc "github.com/Sauravgopinathek/Food-Supply-Chain/internal/indexer/service"
)

type NonceResponse struct {
	Nonce string `json:"nonce"`
}

type BatchListResponse struct {
	Items []chain.BatchRecord `json:"items"`
}

type TimelineResponse struct {
	BatchID string                     `json:"batchId"`
	Items   []indexersvc.TimelineEvent `json:"items"`
}

type IndexedBatchesResponse struct {
	Items []indexersvc.BatchOverview `json:"items"`
}

type BuyerListResponse struct {
	Items []feedback.BuyerEntry `json:"items"`
}

// ReviewListResponse carries reviews newest first; Average is null when
// there are none.
type ReviewListResponse struct {
	Items   []feedback.Review `json:"items"`
	Average *float64          `json:"average"`
}

type GrantRolesResponse struct {
	Results []chain.RoleResult `json:"results"`
}
