package repository

import (
	"context"
	"errors"

	"givebox/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBalanceNotFound is returned when a user has no point balance row.
var ErrBalanceNotFound = errors.New("love point balance not found")

// ErrInsufficientBalance is returned when a deduction would drive the
// balance negative.
var ErrInsufficientBalance = errors.New("insufficient love point balance")

// ListPointHistoryQuery carries the admin list view parameters for the
// point ledger.
type ListPointHistoryQuery struct {
	Search          string // Matches the reason text.
	TransactionType *entity.PointTransactionType
	UserID          *uuid.UUID
	Page            Page
}

// LoyaltyRepository defines the persistence operations for love point
// balances and the append-only point ledger.
type LoyaltyRepository interface {
	// FindBalance retrieves a user's current point balance.
	FindBalance(ctx context.Context, userID uuid.UUID) (*entity.LovePointBalance, error)

	// ListBalances returns a page of balances for the admin console.
	ListBalances(ctx context.Context, page Page) ([]*entity.LovePointBalance, int64, error)

	// UpsertBalance creates or replaces a user's balance row.
	UpsertBalance(ctx context.Context, balance *entity.LovePointBalance) error

	// AdjustBalance atomically adds delta to the balance. A negative
	// delta that would take the balance below zero fails with
	// ErrInsufficientBalance without changing the row.
	AdjustBalance(ctx context.Context, userID uuid.UUID, delta int) error

	// AppendHistory records one ledger entry.
	AppendHistory(ctx context.Context, h *entity.LovePointHistory) error

	// ListHistory returns a page of ledger entries matching the query.
	ListHistory(ctx context.Context, query ListPointHistoryQuery) ([]*entity.LovePointHistory, int64, error)
}
