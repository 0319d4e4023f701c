package repository

import (
	"context"

	"gorm.io/gorm"
)

// Transactor hands out database handles bound to a request context.
type Transactor interface {
	// Conn returns a handle for non-transactional reads
	Conn(ctx context.Context) *gorm.DB
	// WithinTransaction runs fn in a transaction, committing when fn returns nil
	WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}
