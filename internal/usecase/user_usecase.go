// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AdminLoginInput defines the credentials for an admin console login.
type AdminLoginInput struct {
	Email    string
	Password string
}

// CreateUserInput defines the data required to create a user.
type CreateUserInput struct {
	Email         string
	FullName      string
	PhoneNumber   string
	Role          entity.UserRole
	AccountStatus entity.AccountStatus
	Password      string
	IsStaff       bool
	IsActive      bool
}

// UpdateUserInput defines the mutable fields of a user. A nil Password
// leaves the stored hash untouched.
type UpdateUserInput struct {
	ID            uuid.UUID
	Email         string
	FullName      string
	PhoneNumber   string
	Role          entity.UserRole
	AccountStatus entity.AccountStatus
	Password      *string
	IsStaff       bool
	IsActive      bool
}

// AddressInput defines the data of a shipping address.
type AddressInput struct {
	UserID        uuid.UUID
	RecipientName string
	PhoneNumber   string
	Province      string
	District      string
	Ward          string
	StreetAddress string
	IsDefault     bool
}

// --- Output DTOs ---

// AdminLoginOutput returns the issued access token after a successful login.
type AdminLoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// UserListOutput returns one page of users with the total match count.
type UserListOutput struct {
	Users []*entity.User
	Total int64
}

// OTPListOutput returns one page of verification codes.
type OTPListOutput struct {
	Codes []*entity.OTPVerification
	Total int64
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// AdminLogin authenticates a staff account and issues an access token.
	AdminLogin(ctx context.Context, input AdminLoginInput) (*AdminLoginOutput, error)

	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context, query repository.ListUsersQuery) (*UserListOutput, error)
	UpdateUser(ctx context.Context, input UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	CreateAddress(ctx context.Context, input AddressInput) (*entity.ShippingAddress, error)
	UpdateAddress(ctx context.Context, id uuid.UUID, input AddressInput) (*entity.ShippingAddress, error)
	DeleteAddress(ctx context.Context, id uuid.UUID) error
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.ShippingAddress, error)

	// SetDefaultAddress promotes one address to the user's default,
	// clearing any previous default in the same transaction.
	SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error

	// IssueOTP creates a fresh six-digit code for the email.
	IssueOTP(ctx context.Context, email string) (*entity.OTPVerification, error)

	// VerifyOTP checks the latest code for the email and consumes it.
	VerifyOTP(ctx context.Context, email, code string) error

	ListOTPs(ctx context.Context, search string, isUsed *bool, page repository.Page) (*OTPListOutput, error)
}
