package postgres

import (
	"context"

	"brewlog/internal/domain/repository"
	"brewlog/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil. An error or a panic from fn rolls the
// transaction back, and fn's own error is returned unchanged in meaning.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})

	return errors.WithStack(err)
}

// txRepositories hands out repositories bound to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewCredentialRepository() repository.CredentialRepository {
	return NewCredentialRepository(r.tx)
}

func (r txRepositories) NewAnalysisRepository() repository.AnalysisRepository {
	return NewAnalysisRepository(r.tx)
}
