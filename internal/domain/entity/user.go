// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountStatus represents whether an account may be used at all.
type AccountStatus string

const (
	// AccountActive indicates a usable account.
	AccountActive AccountStatus = "ACTIVE"
	// AccountDisabled indicates an account locked out by an administrator.
	AccountDisabled AccountStatus = "DISABLED"
)

// String returns the string representation of the AccountStatus.
func (s AccountStatus) String() string {
	return string(s)
}

// IsValid checks if the AccountStatus is a valid value.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountActive, AccountDisabled:
		return true
	default:
		return false
	}
}

// User is the core identity in the system. Email is the login identifier.
type User struct {
	ID            uuid.UUID     // The Global Unique Identifier (GUID) for the user.
	Email         string        // The user's primary contact email, used as the login identifier.
	FullName      string        // The user's full display name.
	PhoneNumber   string        // The user's contact phone number.
	Role          UserRole      // CUSTOMER or ADMIN.
	AccountStatus AccountStatus // ACTIVE or DISABLED.
	PasswordHash  string        // Bcrypt hash of the user's password. Never exposed outward.
	IsStaff       bool          // Grants access to the admin console.
	IsActive      bool          // Controls whether the account may log in.
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Addresses []*ShippingAddress // The user's saved shipping addresses.
}

// IsAdmin reports whether the user holds the administrative role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ShippingAddress is a delivery destination saved by a user.
// At most one address per user is the default; this is an application
// convention, not a schema constraint.
type ShippingAddress struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	RecipientName string
	PhoneNumber   string
	Province      string
	District      string
	Ward          string
	StreetAddress string
	IsDefault     bool
}

// OTPVerification records a one-time code sent to an email address.
// It is intentionally not linked to a User row: codes may be issued
// before the account exists.
type OTPVerification struct {
	ID        uuid.UUID
	Email     string
	OTPCode   string // Six decimal digits.
	ExpiresAt time.Time
	IsUsed    bool
}

// Usable reports whether the code can still be redeemed at the given time.
func (o *OTPVerification) Usable(now time.Time) bool {
	return !o.IsUsed && now.Before(o.ExpiresAt)
}
