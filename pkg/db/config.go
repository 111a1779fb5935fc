package db

import (
	"time"

	"github.com/smallbiznis/smartdairy/internal/config"
)

// PoolConfig is the connection pool shape applied after the dialect opens.
type PoolConfig struct {
	MaxIdleConn     int
	MaxOpenConn     int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func poolConfig(cfg config.Config) PoolConfig {
	pool := PoolConfig{
		MaxIdleConn:     cfg.DBMaxIdleConn,
		MaxOpenConn:     cfg.DBMaxOpenConn,
		ConnMaxLifetime: time.Duration(cfg.DBConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.DBConnMaxIdleTime) * time.Second,
	}
	if cfg.DBType == "sqlite" {
		// one writer at a time; extra connections only produce SQLITE_BUSY
		pool.MaxOpenConn = 1
		pool.MaxIdleConn = 1
	}
	return pool
}
