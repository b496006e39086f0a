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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).First(&productM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// List returns one page of products matching the admin list query plus the total match count.
func (repo *productRepository) List(ctx context.Context, query repository.ListProductsQuery) ([]*entity.Product, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if s := strings.TrimSpace(query.Search); s != "" {
		pattern := "%" + s + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if query.Status != nil {
		tx = tx.Where("status = ?", query.Status.String())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productMs []*model.ProductModel
	err := tx.Order("name ASC").
		Scopes(paginate(query.Page)).
		Find(&productMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductNameTaken.WrapMessage("product name already exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValueOutOfRange.WrapMessage("price or charity percentage out of range")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingRequiredField.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productM.ID).
		Updates(map[string]any{
			"name":               productM.Name,
			"description":        productM.Description,
			"price":              productM.Price,
			"charity_percentage": productM.CharityPercentage,
			"image":              productM.Image,
			"status":             productM.Status,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductNameTaken.WrapMessage("product name already exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValueOutOfRange.WrapMessage("price or charity percentage out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product. Reviews and cart rows cascade; order lines
// keep their row with the product cleared.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// SetPrice updates only the price column (admin quick edit).
func (repo *productRepository) SetPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("price", price)
	if err := result.Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValueOutOfRange.WrapMessage("price must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to set product price")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// SetStatus updates only the status column (admin quick edit).
func (repo *productRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set product status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:                productM.ID,
		Name:              productM.Name,
		Description:       productM.Description,
		Price:             productM.Price,
		CharityPercentage: productM.CharityPercentage,
		Image:             productM.Image,
		Status:            entity.ProductStatus(productM.Status),
	}
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:                product.ID,
		Name:              product.Name,
		Description:       product.Description,
		Price:             product.Price,
		CharityPercentage: product.CharityPercentage,
		Image:             product.Image,
		Status:            product.Status.String(),
	}
}
