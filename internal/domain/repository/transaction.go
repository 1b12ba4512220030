package repository

import "context"

// TransactionManager runs multi-step writes atomically without exposing the
// storage driver to the usecases. fn's error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the open transaction.
// Usage counters are absent on purpose: they may live in Redis.
type RepositoryFactory interface {
	NewCredentialRepository() CredentialRepository
	NewAnalysisRepository() AnalysisRepository
}
