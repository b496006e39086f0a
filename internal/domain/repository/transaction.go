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
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// OTPRepo returns an OTPRepository bound to the current transaction.
	OTPRepo() OTPRepository

	// ProductRepo returns a ProductRepository bound to the current transaction.
	ProductRepo() ProductRepository

	// ReviewRepo returns a ReviewRepository bound to the current transaction.
	ReviewRepo() ReviewRepository

	// OrderRepo returns an OrderRepository bound to the current transaction.
	OrderRepo() OrderRepository

	// CartRepo returns a CartRepository bound to the current transaction.
	CartRepo() CartRepository

	// CharityRepo returns a CharityRepository bound to the current transaction.
	CharityRepo() CharityRepository

	// LoyaltyRepo returns a LoyaltyRepository bound to the current transaction.
	LoyaltyRepo() LoyaltyRepository

	// VoucherRepo returns a VoucherRepository bound to the current transaction.
	VoucherRepo() VoucherRepository

	// ContentRepo returns a ContentRepository bound to the current transaction.
	ContentRepo() ContentRepository
}

// Page describes the pagination window shared by all list queries.
type Page struct {
	Number int // 1-based page number; zero means first page.
	Size   int // Rows per page; zero means the repository default.
}
