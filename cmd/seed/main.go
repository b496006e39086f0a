// Command seed applies the database schema and optionally loads a small
// demo dataset for local development.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"givebox/config"
	"givebox/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	driver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "apply the schema without loading demo data")
	flag.Parse()

	if err := run(*migrateOnly); err != nil {
		slog.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(migrateOnly bool) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Postgres == nil {
		return fmt.Errorf("postgres configuration is missing")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.UserName,
		cfg.Postgres.Password, cfg.Postgres.DBName, cfg.Postgres.SSLMode, cfg.Postgres.Timezone)

	db, err := gorm.Open(driver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := model.Migrate(db); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	slog.Info("schema applied")

	if migrateOnly {
		return nil
	}

	if err := seedDemoData(db); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}

	return printSummary(db)
}

func seedDemoData(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.UserModel{
		ID:            uuid.New(),
		Email:         "admin@givebox.local",
		FullName:      "Platform Admin",
		PhoneNumber:   "0900000000",
		Role:          "ADMIN",
		AccountStatus: "ACTIVE",
		PasswordHash:  string(hash),
		IsStaff:       true,
		IsActive:      true,
	}
	customer := &model.UserModel{
		ID:            uuid.New(),
		Email:         "customer@givebox.local",
		FullName:      "Demo Customer",
		PhoneNumber:   "0911111111",
		Role:          "CUSTOMER",
		AccountStatus: "ACTIVE",
		PasswordHash:  string(hash),
		IsActive:      true,
	}

	program := &model.CharityProgramModel{
		ID:           uuid.New(),
		Name:         "Warm Winter Meals",
		Description:  "Hot meals for children in mountain provinces.",
		Image:        "https://cdn.givebox.local/programs/warm-winter.jpg",
		TargetAmount: decimal.NewFromInt(50_000_000),
		Status:       "ACTIVE",
	}

	products := []*model.ProductModel{
		{
			ID:                uuid.New(),
			Name:              "Mooncake Gift Box",
			Description:       "Four handmade mooncakes in a bamboo box.",
			Price:             decimal.NewFromInt(350_000),
			CharityPercentage: decimal.NewFromInt(20),
			Image:             "https://cdn.givebox.local/products/mooncake.jpg",
			Status:            "FOR_SALE",
		},
		{
			ID:                uuid.New(),
			Name:              "Tet Candied Fruit Box",
			Description:       "Traditional candied fruits for the new year.",
			Price:             decimal.NewFromInt(250_000),
			CharityPercentage: decimal.NewFromInt(15),
			Image:             "https://cdn.givebox.local/products/tet-fruit.jpg",
			Status:            "FOR_SALE",
		},
	}

	voucher := &model.VoucherModel{
		ID:             uuid.New(),
		Name:           "50k Off Gift Boxes",
		PointsRequired: 100,
		DiscountValue:  decimal.NewFromInt(50_000),
		VoucherType:    "FIXED_AMOUNT",
		Conditions:     "Orders from 300000 VND.",
	}

	post := &model.ContentPostModel{
		ID:          uuid.New(),
		Title:       "How Your Gift Boxes Fund Warm Winter Meals",
		Content:     "Every box sold routes part of its price to the program.",
		AuthorID:    &admin.ID,
		PostType:    "NEWS",
		PublishedAt: time.Now(),
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, row := range []any{admin, customer, program, products[0], products[1], voucher, post} {
			if err := tx.Create(row).Error; err != nil {
				return err
			}
		}

		balance := &model.LovePointBalanceModel{UserID: customer.ID, CurrentBalance: 150}
		if err := tx.Create(balance).Error; err != nil {
			return err
		}

		history := &model.LovePointHistoryModel{
			ID:              uuid.New(),
			UserID:          customer.ID,
			TransactionType: "EARNED",
			PointsChanged:   150,
			Reason:          "welcome bonus",
		}

		return tx.Create(history).Error
	})
}

func printSummary(db *gorm.DB) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Table", "Rows")

	for _, m := range model.AllModels() {
		var count int64
		stmt := db.Model(m)
		if err := stmt.Count(&count).Error; err != nil {
			return err
		}

		name := "?"
		if tn, ok := m.(interface{ TableName() string }); ok {
			name = tn.TableName()
		}
		if err := table.Append(name, fmt.Sprintf("%d", count)); err != nil {
			return err
		}
	}

	return table.Render()
}
