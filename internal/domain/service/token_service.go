package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
// The admin console is the only token consumer, so a single access
// token is issued; there is no refresh flow.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a given user and roles.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
