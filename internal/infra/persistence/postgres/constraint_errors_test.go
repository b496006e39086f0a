package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationChecks(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "create user")))
	assert.False(t, isUniqueConstraintViolation(gorm.ErrRecordNotFound))

	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(gorm.ErrDuplicatedKey))

	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(nil))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "email" violates not-null constraint`)))
	assert.True(t, isNotNullConstraintViolation(errors.New("ERROR: not null violation (SQLSTATE 23502)")))
	assert.False(t, isNotNullConstraintViolation(nil))
	assert.False(t, isNotNullConstraintViolation(gorm.ErrRecordNotFound))
}
