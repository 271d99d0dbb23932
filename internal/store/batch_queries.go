package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type IndexerStatusRow struct {
	ChainID         uint64
	LastIndexed     uint64
	LastIndexedTime *time.Time
}

type BatchEventParams struct {
	ChainID  uint64
	BatchID  string
	Actor    string
	Limit    int
	SortDesc bool
}

type BatchSummaryRow struct {
	BatchID     string
	EventCount  int64
	FirstBlock  uint64
	LastBlock   uint64
	LastEventAt uint64
	// ContaminatedEvents counts events whose type matches ContaminationMarkers.
	ContaminatedEvents int64
}

const (
	defaultQueryLimit = 100
	maxQueryLimit     = 500
)

// ContaminationMarkers are lowercase substrings of event types that flag a batch.
var ContaminationMarkers = []string{"contaminat", "compromis"}

func queryLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultQueryLimit
	case limit > maxQueryLimit:
		return maxQueryLimit
	}
	return limit
}

func contaminationCountSQL() string {
	conds := make([]string, 0, len(ContaminationMarkers))
	for _, m := range ContaminationMarkers {
		conds = append(conds, "lower(event_type) LIKE '%"+m+"%'")
	}
	return "SUM(CASE WHEN " + strings.Join(conds, " OR ") + " THEN 1 ELSE 0 END) AS contaminated_events"
}

func (r *Repository) ListBatchEvents(ctx context.Context, params BatchEventParams) ([]BatchEvent, error) {
	query := r.db.WithContext(ctx).Where("chain_id = ?", params.ChainID)
	if params.BatchID != "" {
		query = query.Where("batch_id = ?", params.BatchID)
	}
	if addr := NormalizeAddress(params.Actor); addr != "" {
		query = query.Where("actor = ?", addr)
	}
	order := "block_number ASC, log_index ASC"
	if params.SortDesc {
		order = "block_number DESC, log_index DESC"
	}
	var rows []BatchEvent
	err := query.Order(order).Limit(queryLimit(params.Limit)).Find(&rows).Error
	return rows, err
}

// ListBatchSummaries groups indexed events per batch, most recently touched first.
func (r *Repository) ListBatchSummaries(ctx context.Context, chainID uint64, limit int) ([]BatchSummaryRow, error) {
	var rows []BatchSummaryRow
	err := r.db.WithContext(ctx).
		Model(&BatchEvent{}).
		Select("batch_id, COUNT(*) AS event_count, MIN(block_number) AS first_block, MAX(block_number) AS last_block, MAX(timestamp) AS last_event_at, "+contaminationCountSQL()).
		Where("chain_id = ?", chainID).
		Group("batch_id").
		Order("last_block DESC").
		Limit(queryLimit(limit)).
		Scan(&rows).Error
	return rows, err
}

func (r *Repository) LatestBatchEvent(ctx context.Context, chainID uint64) (*BatchEvent, error) {
	var row BatchEvent
	err := r.db.WithContext(ctx).
		Where("chain_id = ?", chainID).
		Order("block_number DESC, log_index DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *Repository) GetIndexerStatus(ctx context.Context, chainID uint64) (*IndexerStatusRow, error) {
	var cursor LogCursor
	err := r.db.WithContext(ctx).
		Where("chain_id = ?", chainID).
		Order("updated_at DESC").
		First(&cursor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &IndexerStatusRow{ChainID: chainID}, nil
		}
		return nil, err
	}
	return &IndexerStatusRow{
		ChainID:         chainID,
		LastIndexed:     cursor.LastBlock,
		LastIndexedTime: &cursor.UpdatedAt,
	}, nil
}
