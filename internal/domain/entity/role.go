// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// UserRole represents the type of role a user can have in the system.
type UserRole string

const (
	// RoleCustomer indicates a regular shopper account.
	RoleCustomer UserRole = "CUSTOMER"
	// RoleAdmin indicates an administrative account with console access.
	RoleAdmin UserRole = "ADMIN"
)

// String returns the string representation of the UserRole.
func (r UserRole) String() string {
	return string(r)
}

// IsValid checks if the UserRole is a valid value.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// UserRoles is a slice of UserRole for convenience.
type UserRoles []UserRole

// Contains checks if the roles slice contains a specific role.
func (rs UserRoles) Contains(role UserRole) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts UserRoles to []string for JWT compatibility.
func (rs UserRoles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to UserRoles, filtering out invalid role strings.
func RolesFromStrings(ss []string) UserRoles {
	result := make(UserRoles, 0, len(ss))
	for _, s := range ss {
		role := UserRole(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
