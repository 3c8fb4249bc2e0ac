package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var errNilTransactionFunc = errors.New("database: transaction function is nil")

// WithTransaction runs fn inside a transaction bound to ctx. Returning an
// error from fn rolls back; returning nil commits. The *gorm.DB handed to
// fn already carries ctx.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    return repo.Create(ctx, tx, preset)
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errNilTransactionFunc
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}

// ReadOnly runs fn with a context-bound handle outside of a transaction.
// Used for single-statement lookups where BEGIN/COMMIT only adds round trips.
func ReadOnly(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errNilTransactionFunc
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return fn(db.WithContext(ctx))
}
