package repository

import (
	"context"
	"errors"

	"givebox/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOTPNotFound is returned when no verification code exists for an email.
var ErrOTPNotFound = errors.New("otp verification not found")

// OTPRepository persists one-time verification codes. Codes are not
// linked to user rows; they are matched by email alone.
type OTPRepository interface {
	// Create stores a freshly issued code.
	Create(ctx context.Context, otp *entity.OTPVerification) error

	// FindLatestByEmail returns the most recently issued code for the email.
	FindLatestByEmail(ctx context.Context, email string) (*entity.OTPVerification, error)

	// MarkUsed flags a code as consumed.
	MarkUsed(ctx context.Context, id uuid.UUID) error

	// List returns a page of codes for the admin console, optionally
	// filtered by used state and searched by email.
	List(ctx context.Context, search string, isUsed *bool, page Page) ([]*entity.OTPVerification, int64, error)
}
