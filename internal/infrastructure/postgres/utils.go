package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
)

// isUniqueViolation reports whether err is a unique constraint violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// storageErr wraps an infrastructure failure so callers can match
// domain.ErrStorageUnavailable and still see the cause.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrStorageUnavailable, err))
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
