package model

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gormTag(t *testing.T, model any, field string) string {
	t.Helper()

	f, ok := reflect.TypeOf(model).FieldByName(field)
	require.True(t, ok, "field %s not found on %T", field, model)

	return f.Tag.Get("gorm")
}

func TestDeleteRules(t *testing.T) {
	rules := []struct {
		model  any
		rule   string
		fields []string
	}{
		{UserModel{}, "CASCADE", []string{"Addresses", "CartItems", "PointBalance", "PointHistory", "RedeemedOffers"}},
		{ProductModel{}, "CASCADE", []string{"Reviews", "CartItems"}},
		{OrderModel{}, "CASCADE", []string{"Details", "StatusHistory"}},
		{UserModel{}, "SET NULL", []string{"Orders", "Reviews"}},
		{ProductModel{}, "SET NULL", []string{"OrderDetails"}},
		{OrderModel{}, "SET NULL", []string{"ShippingAddress", "AppliedVoucher", "Donations"}},
		{ContentPostModel{}, "SET NULL", []string{"Author"}},
		{CharityProgramModel{}, "RESTRICT", []string{"Donations", "Disbursements"}},
		{VoucherModel{}, "RESTRICT", []string{"RedeemedInstances"}},
	}

	for _, tt := range rules {
		for _, field := range tt.fields {
			assert.Contains(t, gormTag(t, tt.model, field), "OnDelete:"+tt.rule, "%T.%s", tt.model, field)
		}
	}
}

func TestUniqueColumns(t *testing.T) {
	unique := []struct {
		model any
		field string
	}{
		{UserModel{}, "Email"},
		{ProductModel{}, "Name"},
		{OrderModel{}, "OrderCode"},
		{CharityProgramModel{}, "Name"},
		{RedeemedOfferModel{}, "RedeemedCode"},
	}

	for _, tt := range unique {
		assert.Contains(t, gormTag(t, tt.model, tt.field), "unique", "%T.%s", tt.model, tt.field)
	}
}

func TestCompositeUniqueIndexes(t *testing.T) {
	for _, field := range []string{"OrderID", "ProductID"} {
		assert.Contains(t, gormTag(t, OrderDetailModel{}, field), "uniqueIndex:idx_order_details_order_product")
	}
	for _, field := range []string{"UserID", "ProductID"} {
		assert.Contains(t, gormTag(t, ShoppingCartModel{}, field), "uniqueIndex:idx_shopping_carts_user_product")
	}
}

func TestCheckConstraints(t *testing.T) {
	checks := []struct {
		model any
		field string
		expr  string
	}{
		{ProductModel{}, "Price", "price >= 0"},
		{ProductModel{}, "CharityPercentage", "charity_percentage >= 0 AND charity_percentage <= 100"},
		{OrderModel{}, "TotalAmount", "total_amount >= 0"},
		{OrderDetailModel{}, "Quantity", "quantity > 0"},
		{ShoppingCartModel{}, "Quantity", "quantity >= 1"},
		{LovePointBalanceModel{}, "CurrentBalance", "current_balance >= 0"},
		{VoucherModel{}, "PointsRequired", "points_required >= 0"},
		{CharityProgramModel{}, "TargetAmount", "target_amount >= 0"},
		{DonationHistoryModel{}, "Amount", "amount >= 0"},
		{DisbursementModel{}, "Amount", "amount >= 0"},
	}

	for _, tt := range checks {
		tag := gormTag(t, tt.model, tt.field)
		assert.True(t, strings.Contains(tag, "check:") && strings.Contains(tag, tt.expr), "%T.%s tag %q", tt.model, tt.field, tag)
	}
}

func TestAllModelsHaveTableNames(t *testing.T) {
	type tabler interface{ TableName() string }

	seen := map[string]bool{}
	for _, m := range AllModels() {
		named, ok := m.(tabler)
		require.True(t, ok, "%T has no table name", m)

		name := named.TableName()
		assert.False(t, seen[name], "duplicate table name %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, 17)
}
