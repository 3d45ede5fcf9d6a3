package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TxGetter resolves the transaction bound to a request context, if any.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor returns the context's transaction when present, the base
// connection otherwise. Write repositories route all statements through it
// so request-scoped transactions apply transparently.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}
