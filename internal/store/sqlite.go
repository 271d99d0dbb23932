package store

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
}

func OpenSQLite(dsn string, log *zap.Logger) *DB {
	if log == nil {
		log = zap.NewNop()
	}
	inMemory := strings.Contains(dsn, ":memory:")
	if !inMemory {
		dir := filepath.Dir(dsn)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Fatal("create data dir", zap.Error(err))
			}
		}
	}

	gormLogger := logger.New(zap.NewStdLog(log.Named("gorm")), logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Fatal("open sqlite", zap.Error(err))
	}
	if inMemory {
		// every new connection to :memory: is a fresh, empty database
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}
	return &DB{DB: gdb}
}
