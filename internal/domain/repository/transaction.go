package repository

import "context"

// TransactionManager defines the interface for running a group of
// repository reads against a single database snapshot. The ranking
// engines never write; a transaction here only guarantees that the
// multiple queries of one ranking pass observe consistent data.
type TransactionManager interface {
	// Execute runs fn inside one read-only transaction. All repository
	// instances obtained from the factory are bound to that transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction.
type RepositoryFactory interface {
	// BookRepo returns a BookRepository bound to the current transaction.
	BookRepo() BookRepository

	// ReviewRepo returns a ReviewRepository bound to the current transaction.
	ReviewRepo() ReviewRepository

	// FavoriteRepo returns a FavoriteRepository bound to the current transaction.
	FavoriteRepo() FavoriteRepository

	// GenreRepo returns a GenreRepository bound to the current transaction.
	GenreRepo() GenreRepository
}
