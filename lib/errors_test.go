package lib

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapPgError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	assert.ErrorIs(t, MapPgError(fmt.Errorf("insert: %w", unique)), ErrConflict)

	noData := &pgconn.PgError{Code: "P0002"}
	assert.ErrorIs(t, MapPgError(noData), ErrNotFound)

	plain := errors.New("boom")
	assert.Equal(t, plain, MapPgError(plain))
}
