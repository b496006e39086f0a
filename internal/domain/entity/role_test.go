package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRole_IsValid(t *testing.T) {
	assert.True(t, RoleCustomer.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, UserRole("SUPERUSER").IsValid())
	assert.False(t, UserRole("").IsValid())
}

func TestUserRoles_Contains(t *testing.T) {
	roles := UserRoles{RoleCustomer}
	assert.True(t, roles.Contains(RoleCustomer))
	assert.False(t, roles.Contains(RoleAdmin))
}

func TestRolesFromStrings_FiltersInvalid(t *testing.T) {
	roles := RolesFromStrings([]string{"ADMIN", "bogus", "CUSTOMER", ""})
	assert.Equal(t, UserRoles{RoleAdmin, RoleCustomer}, roles)
}

func TestUserRoles_ToStrings(t *testing.T) {
	assert.Equal(t, []string{"CUSTOMER", "ADMIN"}, UserRoles{RoleCustomer, RoleAdmin}.ToStrings())
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleCustomer}).IsAdmin())
}
