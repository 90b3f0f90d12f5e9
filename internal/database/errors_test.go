package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Aidin1998/contacts_manager/internal/database"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWrapError(t *testing.T) {
	other := errors.New("other")

	assert.NoError(t, database.WrapError(nil))
	assert.ErrorIs(t, database.WrapError(gorm.ErrRecordNotFound), database.ErrNotFound)
	assert.ErrorIs(t, database.WrapError(gorm.ErrDuplicatedKey), database.ErrConflict)
	assert.ErrorIs(t, database.WrapError(&pgconn.PgError{Code: database.DuplicateKeyErrorCode}), database.ErrConflict)
	assert.Same(t, other, database.WrapError(other))
}

func TestUniqueViolationIsConflict(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Session(ctx, func(tx *gorm.DB) error {
		return tx.Create(&note{Body: "same"}).Error
	}))

	err := m.Session(ctx, func(tx *gorm.DB) error {
		return database.WrapError(tx.Create(&note{Body: "same"}).Error)
	})
	assert.ErrorIs(t, err, database.ErrConflict)
}

func TestFindOne(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Session(ctx, func(tx *gorm.DB) error {
		return tx.Create(&note{Body: "hello"}).Error
	}))

	require.NoError(t, m.Session(ctx, func(tx *gorm.DB) error {
		found, err := database.FindOne[note](tx.Where("body = ?", "hello"))
		require.NoError(t, err)
		assert.Equal(t, "hello", found.Body)

		_, err = database.FindOne[note](tx.Where("body = ?", "missing"))
		assert.ErrorIs(t, err, database.ErrNotFound)
		return nil
	}))
}
