// pkg/db/mysql.go
// Helper koneksi MySQL (menggunakan database/sql)

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// Options untuk pool & retry ping.
type Options struct {
	MaxOpen    int
	MaxIdle    int
	MaxLife    time.Duration
	PingTries  int
	PingEvery  time.Duration
	PingTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxOpen <= 0 {
		o.MaxOpen = 10
	}
	if o.MaxIdle <= 0 {
		o.MaxIdle = 5
	}
	if o.MaxLife <= 0 {
		o.MaxLife = 30 * time.Minute
	}
	if o.PingTries <= 0 {
		o.PingTries = 1
	}
	if o.PingEvery <= 0 {
		o.PingEvery = 3 * time.Second
	}
	if o.PingTimeout <= 0 {
		o.PingTimeout = 3 * time.Second
	}
	return o
}

var ErrEmptyDSN = errors.New("mysql dsn is empty")

// NewMySQL membuka pool lalu ping dengan retry (tahan saat container DB baru up).
func NewMySQL(ctx context.Context, dsn string, opt Options, log *zap.Logger) (*sql.DB, error) {
	if dsn == "" {
		return nil, ErrEmptyDSN
	}
	if log == nil {
		log = zap.NewNop()
	}
	opt = opt.withDefaults()

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	db.SetMaxOpenConns(opt.MaxOpen)
	db.SetMaxIdleConns(opt.MaxIdle)
	db.SetConnMaxLifetime(opt.MaxLife)

	var pingErr error
	for i := 0; i < opt.PingTries; i++ {
		pctx, cancel := context.WithTimeout(ctx, opt.PingTimeout)
		pingErr = db.PingContext(pctx)
		cancel()
		if pingErr == nil {
			return db, nil
		}
		log.Warn("mysql ping failed", zap.Int("try", i+1), zap.Error(pingErr))
		if i+1 < opt.PingTries {
			select {
			case <-ctx.Done():
				_ = db.Close()
				return nil, ctx.Err()
			case <-time.After(opt.PingEvery):
			}
		}
	}
	_ = db.Close()
	return nil, fmt.Errorf("mysql not ready after %d tries: %w", opt.PingTries, pingErr)
}
