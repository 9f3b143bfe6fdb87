package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/go-ddd-social/internal/domain/repository"
)

func TestMapError(t *testing.T) {
	other := errors.New("boom")

	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(pgx.ErrNoRows), repository.ErrNotFound)
	assert.ErrorIs(t, mapError(fmt.Errorf("scan: %w", pgx.ErrNoRows)), repository.ErrNotFound)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}), repository.ErrDuplicateUsername)
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}), repository.ErrDuplicateEmail)

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "posts_author_id_fkey"}
	assert.Same(t, fk, mapError(fk))
	assert.Same(t, other, mapError(other))
}
