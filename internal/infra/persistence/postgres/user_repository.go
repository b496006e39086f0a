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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading their shipping addresses.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_default DESC")
		}).
		First(&userM, "id = ?", id).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		First(&userM, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// List returns one page of users matching the admin list query plus the total match count.
func (repo *userRepository) List(ctx context.Context, query repository.ListUsersQuery) ([]*entity.User, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.UserModel{})

	if s := strings.TrimSpace(query.Search); s != "" {
		pattern := "%" + s + "%"
		tx = tx.Where("email ILIKE ? OR full_name ILIKE ? OR phone_number ILIKE ?", pattern, pattern, pattern)
	}
	if query.Role != nil {
		tx = tx.Where("role = ?", query.Role.String())
	}
	if query.AccountStatus != nil {
		tx = tx.Where("account_status = ?", query.AccountStatus.String())
	}
	if query.IsStaff != nil {
		tx = tx.Where("is_staff = ?", *query.IsStaff)
	}
	if query.IsActive != nil {
		tx = tx.Where("is_active = ?", *query.IsActive)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	var userMs []*model.UserModel
	err := tx.Order("created_at DESC").
		Scopes(paginate(query.Page)).
		Find(&userMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingRequiredField.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userM.ID).
		Updates(map[string]any{
			"email":          userM.Email,
			"full_name":      userM.FullName,
			"phone_number":   userM.PhoneNumber,
			"role":           userM.Role,
			"account_status": userM.AccountStatus,
			"password_hash":  userM.PasswordHash,
			"is_staff":       userM.IsStaff,
			"is_active":      userM.IsActive,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingRequiredField.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by ID. The schema's delete rules take over from
// there: addresses, cart items, point rows, and redeemed offers cascade,
// while orders and reviews keep their rows with the user reference cleared.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// CreateAddress persists a new shipping address for a user.
func (repo *userRepository) CreateAddress(ctx context.Context, address *entity.ShippingAddress) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("user does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingRequiredField.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shipping address")
	}

	address.ID = addressM.ID

	return nil
}

// UpdateAddress modifies an existing shipping address.
func (repo *userRepository) UpdateAddress(ctx context.Context, address *entity.ShippingAddress) error {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).
		Model(&model.ShippingAddressModel{}).
		Where("id = ?", addressM.ID).
		Updates(map[string]any{
			"recipient_name": addressM.RecipientName,
			"phone_number":   addressM.PhoneNumber,
			"province":       addressM.Province,
			"district":       addressM.District,
			"ward":           addressM.Ward,
			"street_address": addressM.StreetAddress,
			"is_default":     addressM.IsDefault,
		})
	if err := result.Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingRequiredField.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update shipping address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteAddress removes a shipping address by its ID.
func (repo *userRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ShippingAddressModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete shipping address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// FindAddressByID retrieves a shipping address by its ID.
func (repo *userRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.ShippingAddress, error) {
	var addressM model.ShippingAddressModel
	err := repo.db.WithContext(ctx).First(&addressM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipping address by id")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByUser retrieves all shipping addresses of a user, default first.
func (repo *userRepository) FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error) {
	var addressMs []*model.ShippingAddressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC").
		Find(&addressMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipping addresses")
	}

	addresses := make([]*entity.ShippingAddress, 0, len(addressMs))
	for _, addressM := range addressMs {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// ClearDefaultAddresses unsets the default flag on every address of the user.
func (repo *userRepository) ClearDefaultAddresses(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ShippingAddressModel{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear default addresses")
	}

	return nil
}

// toUserDomain maps the persistence model to the pure domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	user := &entity.User{
		ID:            userM.ID,
		Email:         userM.Email,
		FullName:      userM.FullName,
		PhoneNumber:   userM.PhoneNumber,
		Role:          entity.UserRole(userM.Role),
		AccountStatus: entity.AccountStatus(userM.AccountStatus),
		PasswordHash:  userM.PasswordHash,
		IsStaff:       userM.IsStaff,
		IsActive:      userM.IsActive,
		CreatedAt:     userM.CreatedAt,
		UpdatedAt:     userM.UpdatedAt,
	}

	for _, addressM := range userM.Addresses {
		user.Addresses = append(user.Addresses, toAddressDomain(addressM))
	}

	return user
}

// fromUserDomain maps the domain entity to the persistence model.
func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:            user.ID,
		Email:         user.Email,
		FullName:      user.FullName,
		PhoneNumber:   user.PhoneNumber,
		Role:          user.Role.String(),
		AccountStatus: user.AccountStatus.String(),
		PasswordHash:  user.PasswordHash,
		IsStaff:       user.IsStaff,
		IsActive:      user.IsActive,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func toAddressDomain(addressM *model.ShippingAddressModel) *entity.ShippingAddress {
	return &entity.ShippingAddress{
		ID:            addressM.ID,
		UserID:        addressM.UserID,
		RecipientName: addressM.RecipientName,
		PhoneNumber:   addressM.PhoneNumber,
		Province:      addressM.Province,
		District:      addressM.District,
		Ward:          addressM.Ward,
		StreetAddress: addressM.StreetAddress,
		IsDefault:     addressM.IsDefault,
	}
}

func fromAddressDomain(address *entity.ShippingAddress) *model.ShippingAddressModel {
	return &model.ShippingAddressModel{
		ID:            address.ID,
		UserID:        address.UserID,
		RecipientName: address.RecipientName,
		PhoneNumber:   address.PhoneNumber,
		Province:      address.Province,
		District:      address.District,
		Ward:          address.Ward,
		StreetAddress: address.StreetAddress,
		IsDefault:     address.IsDefault,
	}
}
