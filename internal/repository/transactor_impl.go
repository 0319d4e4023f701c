package repository

import (
	"context"

	domainRepo "nutrition-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) domainRepo.Transactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) Conn(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx)
}

func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return t.db.WithContext(ctx).Transaction(fn)
}
