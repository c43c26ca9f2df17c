package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapDBError(t *testing.T) {
	if got := mapDBError(nil); got != nil {
		t.Fatalf("nil: got %v", got)
	}
	if got := mapDBError(pgx.ErrNoRows); got != ErrNotFound {
		t.Fatalf("no rows: got %v", got)
	}
	if got := mapDBError(fmt.Errorf("get dog: %w", pgx.ErrNoRows)); got != ErrNotFound {
		t.Fatalf("wrapped no rows: got %v", got)
	}
	if got := mapDBError(&pgconn.PgError{Code: "23505"}); got != ErrConflict {
		t.Fatalf("unique violation: got %v", got)
	}

	// Other database errors pass through unchanged.
	fk := &pgconn.PgError{Code: "23503"}
	if got := mapDBError(fk); !errors.Is(got, fk) {
		t.Fatalf("fk violation: got %v", got)
	}
	opaque := errors.New("connection reset")
	if got := mapDBError(opaque); got != opaque {
		t.Fatalf("opaque: got %v", got)
	}
}
