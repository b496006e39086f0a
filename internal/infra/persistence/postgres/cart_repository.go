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

// cartRepository implements the repository.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByID retrieves a single cart item by its ID.
func (repo *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingCart, error) {
	var itemM model.ShoppingCartModel
	err := repo.db.WithContext(ctx).First(&itemM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by id")
	}

	return toCartDomain(&itemM), nil
}

// ListByUser retrieves all cart items of a user.
func (repo *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingCart, error) {
	var itemMs []*model.ShoppingCartModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&itemMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items by user")
	}

	items := make([]*entity.ShoppingCart, 0, len(itemMs))
	for _, itemM := range itemMs {
		items = append(items, toCartDomain(itemM))
	}

	return items, nil
}

// List returns a page of cart items for the admin console. The search
// term matches the owning user's email or the product name.
func (repo *cartRepository) List(ctx context.Context, search string, page repository.Page) ([]*entity.ShoppingCart, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ShoppingCartModel{})

	if s := strings.TrimSpace(search); s != "" {
		pattern := "%" + s + "%"
		tx = tx.Joins("JOIN users ON users.id = shopping_carts.user_id").
			Joins("JOIN products ON products.id = shopping_carts.product_id").
			Where("users.email ILIKE ? OR products.name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count cart items")
	}

	var itemMs []*model.ShoppingCartModel
	err := tx.Order("shopping_carts.id").
		Scopes(paginate(page)).
		Find(&itemMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]*entity.ShoppingCart, 0, len(itemMs))
	for _, itemM := range itemMs {
		items = append(items, toCartDomain(itemM))
	}

	return items, total, nil
}

// Create persists a new cart item. Duplicate (user, product) pairs are
// rejected by the schema's composite unique index.
func (repo *cartRepository) Create(ctx context.Context, item *entity.ShoppingCart) error {
	itemM := fromCartDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateCartItem.WrapMessage("product already in the cart")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("user or product does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValueOutOfRange.WrapMessage("quantity must be at least one")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart item")
	}

	item.ID = itemM.ID

	return nil
}

// UpdateQuantity changes the quantity of a cart item.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShoppingCartModel{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if err := result.Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValueOutOfRange.WrapMessage("quantity must be at least one")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update cart quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// Delete removes a cart item.
func (repo *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ShoppingCartModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

func toCartDomain(itemM *model.ShoppingCartModel) *entity.ShoppingCart {
	return &entity.ShoppingCart{
		ID:        itemM.ID,
		UserID:    itemM.UserID,
		ProductID: itemM.ProductID,
		Quantity:  itemM.Quantity,
	}
}

func fromCartDomain(item *entity.ShoppingCart) *model.ShoppingCartModel {
	return &model.ShoppingCartModel{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
}
