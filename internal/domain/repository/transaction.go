package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	ProductRepo() ProductRepository
	OrderRepo() OrderRepository
	StockRepo() StockRepository
	ReasonRepo() ReasonRepository
	AlertRepo() AlertRepository
	AuditRepo() AuditRepository
	CustomerRepo() CustomerRepository

	// Savepoint runs fn in a nested transaction. An error returned by fn rolls back
	// only the work done inside fn; the outer transaction stays usable.
	Savepoint(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}
