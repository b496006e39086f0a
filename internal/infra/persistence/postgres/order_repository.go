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
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByID retrieves a single order with its detail lines preloaded.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Details").
		First(&orderM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByCode retrieves a single order by its unique code, details preloaded.
func (repo *orderRepository) FindByCode(ctx context.Context, code string) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Details").
		First(&orderM, "order_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by code")
	}

	return toOrderDomain(&orderM), nil
}

// List returns one page of orders matching the admin list query plus the total match count.
func (repo *orderRepository) List(ctx context.Context, query repository.ListOrdersQuery) ([]*entity.Order, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if s := strings.TrimSpace(query.Search); s != "" {
		tx = tx.Where("order_code ILIKE ?", "%"+s+"%")
	}
	if query.OrderStatus != nil {
		tx = tx.Where("order_status = ?", query.OrderStatus.String())
	}
	if query.PaymentMethod != nil {
		tx = tx.Where("payment_method = ?", query.PaymentMethod.String())
	}
	if query.DonateVoucher != nil {
		tx = tx.Where("donate_voucher = ?", *query.DonateVoucher)
	}
	if query.UserID != nil {
		tx = tx.Where("user_id = ?", *query.UserID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderMs []*model.OrderModel
	err := tx.Preload("Details").
		Order("created_at DESC").
		Scopes(paginate(query.Page)).
		Find(&orderMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// Create persists a new order together with its detail lines.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOrderCodeTaken.WrapMessage("order code already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("referenced user, address, voucher, or product does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValueOutOfRange.WrapMessage("total amount or line quantity out of range")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingRequiredField.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	for i, detailM := range orderM.Details {
		order.Details[i].ID = detailM.ID
		order.Details[i].OrderID = detailM.OrderID
	}

	return nil
}

// Update modifies an existing order. The order code is immutable and
// deliberately absent from the update column set.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderM.ID).
		Updates(map[string]any{
			"user_id":             orderM.UserID,
			"total_amount":        orderM.TotalAmount,
			"shipping_address_id": orderM.ShippingAddressID,
			"payment_method":      orderM.PaymentMethod,
			"order_status":        orderM.OrderStatus,
			"applied_voucher_id":  orderM.AppliedVoucherID,
			"donate_voucher":      orderM.DonateVoucher,
		})
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("referenced user, address, or voucher does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValueOutOfRange.WrapMessage("total amount must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order. Detail lines and status history cascade;
// donation rows keep their row with the order reference cleared.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.OrderModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// SetStatus updates only the order status column (admin quick edit).
func (repo *orderRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("order_status", status.String())
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// CreateDetail appends a detail line to an existing order.
func (repo *orderRepository) CreateDetail(ctx context.Context, detail *entity.OrderDetail) error {
	detailM := fromOrderDetailDomain(detail)

	if err := repo.db.WithContext(ctx).Create(detailM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateOrderLine.WrapMessage("product already appears in the order")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("order or product does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValueOutOfRange.WrapMessage("quantity must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order detail")
	}

	detail.ID = detailM.ID

	return nil
}

// DeleteDetail removes a single detail line.
func (repo *orderRepository) DeleteDetail(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.OrderDetailModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order detail")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// AppendStatusHistory records a status change in the append-only audit trail.
func (repo *orderRepository) AppendStatusHistory(ctx context.Context, h *entity.OrderStatusHistory) error {
	historyM := fromStatusHistoryDomain(h)

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("order or updating user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append order status history")
	}

	h.ID = historyM.ID
	h.UpdatedAt = historyM.UpdatedAt

	return nil
}

// ListStatusHistory returns the audit trail of an order, oldest first.
func (repo *orderRepository) ListStatusHistory(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusHistory, error) {
	var historyMs []*model.OrderStatusHistoryModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("updated_at ASC").
		Find(&historyMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order status history")
	}

	history := make([]*entity.OrderStatusHistory, 0, len(historyMs))
	for _, historyM := range historyMs {
		history = append(history, toStatusHistoryDomain(historyM))
	}

	return history, nil
}

func toOrderDomain(orderM *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:                orderM.ID,
		OrderCode:         orderM.OrderCode,
		UserID:            orderM.UserID,
		CreatedAt:         orderM.CreatedAt,
		TotalAmount:       orderM.TotalAmount,
		ShippingAddressID: orderM.ShippingAddressID,
		PaymentMethod:     entity.PaymentMethod(orderM.PaymentMethod),
		OrderStatus:       entity.OrderStatus(orderM.OrderStatus),
		AppliedVoucherID:  orderM.AppliedVoucherID,
		DonateVoucher:     orderM.DonateVoucher,
	}

	for _, detailM := range orderM.Details {
		order.Details = append(order.Details, toOrderDetailDomain(detailM))
	}

	return order
}

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	orderM := &model.OrderModel{
		ID:                order.ID,
		OrderCode:         order.OrderCode,
		UserID:            order.UserID,
		CreatedAt:         order.CreatedAt,
		TotalAmount:       order.TotalAmount,
		ShippingAddressID: order.ShippingAddressID,
		PaymentMethod:     order.PaymentMethod.String(),
		OrderStatus:       order.OrderStatus.String(),
		AppliedVoucherID:  order.AppliedVoucherID,
		DonateVoucher:     order.DonateVoucher,
	}

	for _, detail := range order.Details {
		orderM.Details = append(orderM.Details, fromOrderDetailDomain(detail))
	}

	return orderM
}

func toOrderDetailDomain(detailM *model.OrderDetailModel) *entity.OrderDetail {
	return &entity.OrderDetail{
		ID:              detailM.ID,
		OrderID:         detailM.OrderID,
		ProductID:       detailM.ProductID,
		Quantity:        detailM.Quantity,
		PriceAtPurchase: detailM.PriceAtPurchase,
	}
}

func fromOrderDetailDomain(detail *entity.OrderDetail) *model.OrderDetailModel {
	return &model.OrderDetailModel{
		ID:              detail.ID,
		OrderID:         detail.OrderID,
		ProductID:       detail.ProductID,
		Quantity:        detail.Quantity,
		PriceAtPurchase: detail.PriceAtPurchase,
	}
}

func toStatusHistoryDomain(historyM *model.OrderStatusHistoryModel) *entity.OrderStatusHistory {
	return &entity.OrderStatusHistory{
		ID:        historyM.ID,
		OrderID:   historyM.OrderID,
		NewStatus: entity.OrderStatus(historyM.NewStatus),
		UpdatedBy: historyM.UpdatedBy,
		UpdatedAt: historyM.UpdatedAt,
	}
}

func fromStatusHistoryDomain(h *entity.OrderStatusHistory) *model.OrderStatusHistoryModel {
	return &model.OrderStatusHistoryModel{
		ID:        h.ID,
		OrderID:   h.OrderID,
		NewStatus: h.NewStatus.String(),
		UpdatedBy: h.UpdatedBy,
	}
}
