// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PointTransactionType distinguishes ledger entries that add points from
// ones that spend them.
type PointTransactionType string

const (
	// PointsEarned indicates points credited to a user.
	PointsEarned PointTransactionType = "EARNED"
	// PointsSpent indicates points deducted from a user.
	PointsSpent PointTransactionType = "SPENT"
)

// String returns the string representation of the PointTransactionType.
func (t PointTransactionType) String() string {
	return string(t)
}

// IsValid checks if the PointTransactionType is a valid value.
func (t PointTransactionType) IsValid() bool {
	switch t {
	case PointsEarned, PointsSpent:
		return true
	default:
		return false
	}
}

// LovePointBalance is a user's current loyalty point total. The balance
// never goes negative.
type LovePointBalance struct {
	UserID         uuid.UUID
	CurrentBalance int
}

// LovePointHistory is one entry in the append-only point ledger. The sum
// of PointsChanged for a user should reconcile with the balance; the
// application keeps them in step, the schema does not.
type LovePointHistory struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	TransactionType PointTransactionType
	PointsChanged   int
	Reason          string
	TransactionDate time.Time
}
