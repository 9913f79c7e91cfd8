package repository

import "context"

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
}

// TransactionManager runs a unit of work inside a single database transaction.
// The callback receives a factory whose repositories share that transaction;
// returning an error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
