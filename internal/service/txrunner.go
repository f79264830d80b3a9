package service

import (
	"context"

	"aihub.app/api/common/secret"
	"aihub.app/api/core/db"
	"aihub.app/api/core/db/sqlc"
	"aihub.app/api/internal/store"
)

// StoreProvider exposes only the stores needed by a transactional operation.
type StoreProvider interface {
	Organizations() store.OrganizationStore
	Profiles() store.ProfileStore
	Sessions() store.SessionStore
	Activities() store.ActivityStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db  *db.DB
	box *secret.Box
}

// NewTxRunner builds a TxRunner backed by the core DB.
func NewTxRunner(db *db.DB, box *secret.Box) TxRunner {
	return &dbTxRunner{db: db, box: box}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		stores := store.NewStores(q, r.box)
		return fn(stores)
	})
}
