package postgres

import (
	"context"
	"strings"

	"givebox/internal/domain/entity"
	domainerrors "givebox/internal/domain/errors"
	"givebox/internal/domain/repository"
	"givebox/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// loyaltyRepository implements the repository.LoyaltyRepository interface using GORM.
type loyaltyRepository struct {
	db *gorm.DB
}

// NewLoyaltyRepository is the constructor for loyaltyRepository.
func NewLoyaltyRepository(db *gorm.DB) repository.LoyaltyRepository {
	return &loyaltyRepository{db: db}
}

// FindBalance retrieves a user's current point balance.
func (repo *loyaltyRepository) FindBalance(ctx context.Context, userID uuid.UUID) (*entity.LovePointBalance, error) {
	var balanceM model.LovePointBalanceModel
	err := repo.db.WithContext(ctx).First(&balanceM, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBalanceNotFound
		}

		return nil, errors.Wrap(err, "failed to find love point balance")
	}

	return toBalanceDomain(&balanceM), nil
}

// ListBalances returns a page of balances for the admin console.
func (repo *loyaltyRepository) ListBalances(ctx context.Context, page repository.Page) ([]*entity.LovePointBalance, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.LovePointBalanceModel{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count love point balances")
	}

	var balanceMs []*model.LovePointBalanceModel
	err := tx.Order("current_balance DESC").
		Scopes(paginate(page)).
		Find(&balanceMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list love point balances")
	}

	balances := make([]*entity.LovePointBalance, 0, len(balanceMs))
	for _, balanceM := range balanceMs {
		balances = append(balances, toBalanceDomain(balanceM))
	}

	return balances, total, nil
}

// UpsertBalance creates or replaces a user's balance row.
func (repo *loyaltyRepository) UpsertBalance(ctx context.Context, balance *entity.LovePointBalance) error {
	balanceM := fromBalanceDomain(balance)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"current_balance"}),
		}).
		Create(balanceM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("user does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValueOutOfRange.WrapMessage("balance must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert love point balance")
	}

	return nil
}

// AdjustBalance atomically adds delta to the balance. The guarding WHERE
// clause keeps a negative delta from driving the balance below zero;
// zero rows affected then reports the insufficient balance.
func (repo *loyaltyRepository) AdjustBalance(ctx context.Context, userID uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LovePointBalanceModel{}).
		Where("user_id = ? AND current_balance + ? >= 0", userID, delta).
		Update("current_balance", gorm.Expr("current_balance + ?", delta))
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to adjust love point balance")
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing row from an insufficient balance.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.LovePointBalanceModel{}).
			Where("user_id = ?", userID).
			Count(&count).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to adjust love point balance")
		}
		if count == 0 {
			return repository.ErrBalanceNotFound
		}

		return repository.ErrInsufficientBalance
	}

	return nil
}

// AppendHistory records one ledger entry.
func (repo *loyaltyRepository) AppendHistory(ctx context.Context, h *entity.LovePointHistory) error {
	historyM := fromPointHistoryDomain(h)

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("user does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingRequiredField.WrapMessage("missing required ledger information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append love point history")
	}

	h.ID = historyM.ID
	h.TransactionDate = historyM.TransactionDate

	return nil
}

// ListHistory returns a page of ledger entries matching the query.
func (repo *loyaltyRepository) ListHistory(ctx context.Context, query repository.ListPointHistoryQuery) ([]*entity.LovePointHistory, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.LovePointHistoryModel{})

	if s := strings.TrimSpace(query.Search); s != "" {
		tx = tx.Where("reason ILIKE ?", "%"+s+"%")
	}
	if query.TransactionType != nil {
		tx = tx.Where("transaction_type = ?", query.TransactionType.String())
	}
	if query.UserID != nil {
		tx = tx.Where("user_id = ?", *query.UserID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count love point history")
	}

	var historyMs []*model.LovePointHistoryModel
	err := tx.Order("transaction_date DESC").
		Scopes(paginate(query.Page)).
		Find(&historyMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list love point history")
	}

	history := make([]*entity.LovePointHistory, 0, len(historyMs))
	for _, historyM := range historyMs {
		history = append(history, toPointHistoryDomain(historyM))
	}

	return history, total, nil
}

func toBalanceDomain(balanceM *model.LovePointBalanceModel) *entity.LovePointBalance {
	return &entity.LovePointBalance{
		UserID:         balanceM.UserID,
		CurrentBalance: balanceM.CurrentBalance,
	}
}

func fromBalanceDomain(balance *entity.LovePointBalance) *model.LovePointBalanceModel {
	return &model.LovePointBalanceModel{
		UserID:         balance.UserID,
		CurrentBalance: balance.CurrentBalance,
	}
}

func toPointHistoryDomain(historyM *model.LovePointHistoryModel) *entity.LovePointHistory {
	return &entity.LovePointHistory{
		ID:              historyM.ID,
		UserID:          historyM.UserID,
		TransactionType: entity.PointTransactionType(historyM.TransactionType),
		PointsChanged:   historyM.PointsChanged,
		Reason:          historyM.Reason,
		TransactionDate: historyM.TransactionDate,
	}
}

func fromPointHistoryDomain(h *entity.LovePointHistory) *model.LovePointHistoryModel {
	return &model.LovePointHistoryModel{
		ID:              h.ID,
		UserID:          h.UserID,
		TransactionType: h.TransactionType.String(),
		PointsChanged:   h.PointsChanged,
		Reason:          h.Reason,
	}
}
