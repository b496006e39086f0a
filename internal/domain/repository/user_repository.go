// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"givebox/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrAddressNotFound is returned when a shipping address is not found.
var ErrAddressNotFound = errors.New("shipping address not found")

// ListUsersQuery carries the admin list view parameters for users:
// search over email/full name/phone, filters over role and statuses.
type ListUsersQuery struct {
	Search        string
	Role          *entity.UserRole
	AccountStatus *entity.AccountStatus
	IsStaff       *bool
	IsActive      *bool
	Page          Page
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with addresses preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns a page of users matching the query plus the total match count.
	List(ctx context.Context, query ListUsersQuery) ([]*entity.User, int64, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user. Dependent rows follow the schema's delete
	// rules: addresses, cart items, point rows, and redeemed offers
	// cascade; orders and reviews keep their rows with the user cleared.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateAddress persists a new shipping address for a user.
	CreateAddress(ctx context.Context, address *entity.ShippingAddress) error

	// UpdateAddress modifies an existing shipping address.
	UpdateAddress(ctx context.Context, address *entity.ShippingAddress) error

	// DeleteAddress removes a shipping address by its ID.
	DeleteAddress(ctx context.Context, id uuid.UUID) error

	// FindAddressByID retrieves a shipping address by its ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.ShippingAddress, error)

	// FindAddressesByUser retrieves all shipping addresses of a user,
	// default first.
	FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error)

	// ClearDefaultAddresses unsets the default flag on every address of
	// the user. Used before promoting another address to default.
	ClearDefaultAddresses(ctx context.Context, userID uuid.UUID) error
}
