package db

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kylespence97/stock-api-back-end/internal/config"
)

// Connection-level retry, underneath the call-level retry at the API boundary.
// A fresh database container can take a few seconds to accept connections.
const (
	pingMaxRetries   = 3
	pingBackoffCeil  = 10 * time.Second
	pingBackoffStart = 1 * time.Second
)

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=disable",
		conf.Host, conf.Port, conf.User, conf.Password, conf.DBName,
	)

	return open(dsn)
}

func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	return open(url)
}

func open(dsn string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("gormDB.DB -> %w", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = pingBackoffStart
	policy.MaxInterval = pingBackoffCeil

	err = backoff.RetryNotify(
		sqlDB.Ping,
		backoff.WithMaxRetries(policy, pingMaxRetries),
		func(err error, next time.Duration) {
			zap.L().Warn("database ping failed, retrying",
				zap.Duration("next_attempt_in", next),
				zap.Error(err),
			)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("sqlDB.Ping -> %w", err)
	}

	return gormDB, nil
}
