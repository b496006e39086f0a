package repository

import (
	"context"

	"givebox/internal/domain/repository"
)

// StubRepositoryFactory hands out the configured repositories. Tests
// set only the fields the code under test touches.
type StubRepositoryFactory struct {
	Users     repository.UserRepository
	OTPs      repository.OTPRepository
	Products  repository.ProductRepository
	Reviews   repository.ReviewRepository
	Orders    repository.OrderRepository
	Carts     repository.CartRepository
	Charities repository.CharityRepository
	Loyalties repository.LoyaltyRepository
	Vouchers  repository.VoucherRepository
	Contents  repository.ContentRepository
}

func (f *StubRepositoryFactory) UserRepo() repository.UserRepository       { return f.Users }
func (f *StubRepositoryFactory) OTPRepo() repository.OTPRepository         { return f.OTPs }
func (f *StubRepositoryFactory) ProductRepo() repository.ProductRepository { return f.Products }
func (f *StubRepositoryFactory) ReviewRepo() repository.ReviewRepository   { return f.Reviews }
func (f *StubRepositoryFactory) OrderRepo() repository.OrderRepository     { return f.Orders }
func (f *StubRepositoryFactory) CartRepo() repository.CartRepository       { return f.Carts }
func (f *StubRepositoryFactory) CharityRepo() repository.CharityRepository { return f.Charities }
func (f *StubRepositoryFactory) LoyaltyRepo() repository.LoyaltyRepository { return f.Loyalties }
func (f *StubRepositoryFactory) VoucherRepo() repository.VoucherRepository { return f.Vouchers }
func (f *StubRepositoryFactory) ContentRepo() repository.ContentRepository { return f.Contents }

// StubTransactionManager runs the callback against its factory without
// opening a real transaction. Rollback behavior is the callback's error.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (m *StubTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
