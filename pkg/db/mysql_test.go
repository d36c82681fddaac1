// pkg/db/mysql_test.go

package db

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewMySQLEmptyDSN(t *testing.T) {
	if _, err := NewMySQL(context.Background(), "", Options{}, nil); !errors.Is(err, ErrEmptyDSN) {
		t.Fatalf("expected ErrEmptyDSN, got %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{MaxOpen: 3}.withDefaults()
	if o.MaxOpen != 3 || o.MaxIdle != 5 || o.PingTries != 1 || o.MaxLife != 30*time.Minute {
		t.Fatalf("unexpected defaults: %+v", o)
	}
}
