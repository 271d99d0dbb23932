package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrQuotaExceeded = errors.New("store: quota exceeded")
)

type Repository struct {
	db            *gorm.DB
	maxValueBytes int
}

func NewRepository(db *DB) *Repository { return &Repository{db: db.DB} }

// WithMaxValueBytes caps the size of a single stored value. Zero disables the cap.
func (r *Repository) WithMaxValueBytes(n int) *Repository {
	r.maxValueBytes = n
	return r
}

// GetValue returns the raw value stored under key and whether it exists.
func (r *Repository) GetValue(ctx context.Context, key string) (string, bool, error) {
	var entry LocalEntry
	err := r.db.WithContext(ctx).Where(&LocalEntry{Key: key}).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (r *Repository) PutValue(ctx context.Context, key, value string) error {
	if r.maxValueBytes > 0 && len(value) > r.maxValueBytes {
		return ErrQuotaExceeded
	}
	entry := LocalEntry{Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&entry).Error
}

func (r *Repository) DeleteValue(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&LocalEntry{Key: key}).Error
}

func (r *Repository) GetLogCursor(ctx context.Context, chainID uint64, address string) (*LogCursor, error) {
	addr := strings.ToLower(address)
	var cursor LogCursor
	err := r.db.WithContext(ctx).
		Where("chain_id = ? AND address = ?", chainID, addr).
		First(&cursor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cursor, nil
}

func (r *Repository) UpsertLogCursor(ctx context.Context, cursor *LogCursor) error {
	cursor.Address = strings.ToLower(cursor.Address)
	cursor.LastTxHash = strings.ToLower(cursor.LastTxHash)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "chain_id"}, {Name: "address"}},
		DoUpdates: clause.Assignments(map[string]any{
			"last_block":     cursor.LastBlock,
			"last_tx_hash":   cursor.LastTxHash,
			"last_log_index": cursor.LastLogIndex,
			"updated_at":     gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(cursor).Error
}

func (r *Repository) UpsertBatchEvent(ctx context.Context, event *BatchEvent) error {
	event.Contract = strings.ToLower(event.Contract)
	event.Actor = strings.ToLower(event.Actor)
	event.TxHash = strings.ToLower(event.TxHash)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "chain_id"}, {Name: "tx_hash"}, {Name: "block_number"}, {Name: "log_index"}},
		DoUpdates: clause.Assignments(map[string]any{
			"batch_id":    event.BatchID,
			"event_type":  event.EventType,
			"details":     event.Details,
			"temperature": event.Temperature,
			"timestamp":   event.Timestamp,
			"actor":       event.Actor,
			"block_time":  event.BlockTime,
			"updated_at":  gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(event).Error
}
