package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
)

// AdvisoryLock serializes job runs across processes using Postgres advisory
// locks. Each held lock pins a dedicated connection, because an advisory lock
// belongs to the session that took it.
type AdvisoryLock struct {
	db *sqlx.DB

	mu    sync.Mutex
	conns map[string]*sqlx.Conn
}

func NewAdvisoryLock(db *sqlx.DB) *AdvisoryLock {
	return &AdvisoryLock{
		db:    db,
		conns: make(map[string]*sqlx.Conn),
	}
}

// TryLock attempts to take the advisory lock for key without blocking. It
// reports false when another session holds it.
func (l *AdvisoryLock) TryLock(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, held := l.conns[key]; held {
		return false, nil
	}

	conn, err := l.db.Connx(ctx)
	if err != nil {
		return false, fmt.Errorf("acquire connection: %w", err)
	}

	var acquired bool
	err = conn.QueryRowxContext(ctx, "SELECT pg_try_advisory_lock(hashtext($1))", key).Scan(&acquired)
	if err != nil {
		_ = conn.Close()
		return false, fmt.Errorf("try advisory lock %q: %w", key, err)
	}
	if !acquired {
		_ = conn.Close()
		return false, nil
	}

	l.conns[key] = conn
	return true, nil
}

// Unlock releases the advisory lock for key and returns its connection to the
// pool. Unlocking a key that is not held is a no-op.
func (l *AdvisoryLock) Unlock(ctx context.Context, key string) error {
	l.mu.Lock()
	conn, held := l.conns[key]
	delete(l.conns, key)
	l.mu.Unlock()

	if !held {
		return nil
	}
	defer conn.Close()

	var released bool
	if err := conn.QueryRowxContext(ctx, "SELECT pg_advisory_unlock(hashtext($1))", key).Scan(&released); err != nil {
		return fmt.Errorf("advisory unlock %q: %w", key, err)
	}
	if !released {
		return fmt.Errorf("advisory lock %q was not held by this session", key)
	}
	return nil
}
