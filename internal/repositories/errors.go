package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrCardNotFound     = errors.New("card not found")
	ErrBusinessNotFound = errors.New("business not found")
	ErrConflict         = errors.New("conflict")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pe *pq.Error
	if errors.As(err, &pe) && pe.Code == uniqueViolation {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
