package store

import "time"

// LocalEntry is one key of the off-chain key/value store. Value holds a
// JSON array, newest element first.
type LocalEntry struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type LogCursor struct {
	ID           uint   `gorm:"primaryKey"`
	ChainID      uint64 `gorm:"uniqueIndex:idx_log_cursor"`
	Address      string `gorm:"size:66;uniqueIndex:idx_log_cursor"`
	LastBlock    uint64
	LastTxHash   string `gorm:"size:66"`
	LastLogIndex uint
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// BatchEvent mirrors one BatchEventLog emitted by the traceability contract.
type BatchEvent struct {
	ID          uint   `gorm:"primaryKey"`
	ChainID     uint64 `gorm:"uniqueIndex:idx_batch_event_txlog;index:idx_batch_event_batch"`
	Contract    string `gorm:"size:66;index"`
	BatchID     string `gorm:"size:78;index:idx_batch_event_batch"`
	EventType   string `gorm:"size:64"`
	Details     string `gorm:"type:text"`
	Temperature int64
	Timestamp   uint64
	Actor       string    `gorm:"size:66;index"`
	TxHash      string    `gorm:"size:66;uniqueIndex:idx_batch_event_txlog"`
	BlockNumber uint64    `gorm:"uniqueIndex:idx_batch_event_txlog"`
	LogIndex    uint      `gorm:"uniqueIndex:idx_batch_event_txlog"`
	BlockTime   time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
