// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the sales state of a gift box.
type ProductStatus string

const (
	// ProductForSale indicates the product is listed and purchasable.
	ProductForSale ProductStatus = "FOR_SALE"
	// ProductSoldOut indicates the product is listed but out of stock.
	ProductSoldOut ProductStatus = "SOLD_OUT"
	// ProductDeleted indicates the product was withdrawn from the catalog.
	ProductDeleted ProductStatus = "DELETED"
)

// String returns the string representation of the ProductStatus.
func (s ProductStatus) String() string {
	return string(s)
}

// IsValid checks if the ProductStatus is a valid value.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductForSale, ProductSoldOut, ProductDeleted:
		return true
	default:
		return false
	}
}

// ReviewStatus controls whether a review is shown on the storefront.
type ReviewStatus string

const (
	// ReviewVisible indicates the review is publicly shown.
	ReviewVisible ReviewStatus = "VISIBLE"
	// ReviewHidden indicates the review was hidden by a moderator.
	ReviewHidden ReviewStatus = "HIDDEN"
)

// String returns the string representation of the ReviewStatus.
func (s ReviewStatus) String() string {
	return string(s)
}

// IsValid checks if the ReviewStatus is a valid value.
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewVisible, ReviewHidden:
		return true
	default:
		return false
	}
}

// Product is a gift box offered for sale. A fixed percentage of each
// sale is routed to charity programs.
type Product struct {
	ID                uuid.UUID
	Name              string          // Unique product name.
	Description       string
	Price             decimal.Decimal // Sale price, never negative.
	CharityPercentage decimal.Decimal // Share of the price donated, within [0, 100].
	Image             string          // Storage path of the product image.
	Status            ProductStatus
}

// Review is a customer rating of a product. The 1-5 rating bound is
// validated at the request layer, not by the schema.
type Review struct {
	ID            uuid.UUID
	UserID        *uuid.UUID // Nil once the authoring user is deleted.
	ProductID     uuid.UUID
	Rating        int
	Comment       string
	CreatedAt     time.Time
	DisplayStatus ReviewStatus
}
