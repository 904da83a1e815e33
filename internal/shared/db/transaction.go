// Package db carries the gorm transaction through context so repositories
// join an enclosing transaction transparently. The ticket-to-order conversion
// relies on this: ticket update and order insert commit or roll back together.
package db

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

type txKey struct{}
type hooksKey struct{}

// commitHooks collects work deferred until the enclosing transaction commits.
type commitHooks struct {
	mu  sync.Mutex
	fns []func()
}

func (h *commitHooks) add(fn func()) {
	h.mu.Lock()
	h.fns = append(h.fns, fn)
	h.mu.Unlock()
}

func (h *commitHooks) run() {
	h.mu.Lock()
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// TransactionManager wraps gorm transactions behind the Transactor shape the
// application layer depends on.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside a transaction. The transaction handle rides
// in the derived context; an error from fn rolls everything back. Hooks
// registered through AfterCommit fire only once the commit succeeded, in
// registration order.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	hooks := &commitHooks{}

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		txCtx = context.WithValue(txCtx, hooksKey{}, hooks)
		return fn(txCtx)
	})
	if err != nil {
		return err
	}

	hooks.run()
	return nil
}

// AfterCommit defers fn until the enclosing transaction commits. Outside a
// transaction fn runs immediately. A rolled-back transaction never runs its
// hooks, so change events deferred this way cannot describe state that was
// never committed.
func AfterCommit(ctx context.Context, fn func()) {
	if hooks, ok := ctx.Value(hooksKey{}).(*commitHooks); ok {
		hooks.add(fn)
		return
	}
	fn()
}

// GetTxFromContext returns the enclosing transaction when one is active,
// otherwise the default handle bound to ctx. Repositories call this at the
// top of every data access.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
