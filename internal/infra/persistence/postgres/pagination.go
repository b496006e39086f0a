package postgres

import (
	"givebox/internal/domain/repository"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// paginate returns a GORM scope applying the shared pagination window.
// A zero page number means the first page; a zero size means the default.
func paginate(page repository.Page) func(*gorm.DB) *gorm.DB {
	number := page.Number
	if number < 1 {
		number = 1
	}

	size := page.Size
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((number - 1) * size).Limit(size)
	}
}
