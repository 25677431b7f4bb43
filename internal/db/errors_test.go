package db_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/centurialsign/sgpg-api/internal/db"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("erro traduzido pelo gorm", func(t *testing.T) {
		assert.True(t, db.IsUniqueViolation(gorm.ErrDuplicatedKey))
	})

	t.Run("erro cru do postgres", func(t *testing.T) {
		assert.True(t, db.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	})

	t.Run("erro embrulhado", func(t *testing.T) {
		err := fmt.Errorf("create user: %w", &pgconn.PgError{Code: "23505"})
		assert.True(t, db.IsUniqueViolation(err))
	})

	t.Run("outros erros", func(t *testing.T) {
		assert.False(t, db.IsUniqueViolation(nil))
		assert.False(t, db.IsUniqueViolation(errors.New("connection refused")))
		assert.False(t, db.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
		assert.False(t, db.IsUniqueViolation(gorm.ErrRecordNotFound))
	})
}
