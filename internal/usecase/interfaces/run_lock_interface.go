package interfaces

//go:generate mockgen -source=run_lock_interface.go -destination=mocks/run_lock_interface_mock.go

import (
	"context"
	"time"
)

// IRunLock serializes auto-schedule runs across processes.
//
// Acquire returns ok=false when another holder owns the key.
type IRunLock interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
}
