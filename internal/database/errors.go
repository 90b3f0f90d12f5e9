package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const DuplicateKeyErrorCode = "23505"

// Repository-level failures. Callers translate these into HTTP errors.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("duplicate key")
)

// WrapError wraps a gorm error.
func WrapError(err error) error {
	var pgErr *pgconn.PgError

	if err == nil {
		return nil
	} else if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		return err
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Join(ErrNotFound, err)
	} else if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Join(ErrConflict, err)
	} else if errors.As(err, &pgErr) && pgErr.Code == DuplicateKeyErrorCode {
		return errors.Join(ErrConflict, err)
	}

	return err
}

// FindOne returns the first row matched by db, or ErrNotFound.
func FindOne[T any](db *gorm.DB) (*T, error) {
	var item T
	result := db.Limit(1).Find(&item)
	if result.Error != nil {
		return nil, WrapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &item, nil
}
