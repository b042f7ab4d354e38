package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestMapPostgresError(t *testing.T) {
	t.Parallel()

	uniqueViolation := &pq.Error{Code: pgUniqueViolation, Constraint: "accounts_email_unique"}
	if got := mapPostgresError(uniqueViolation); !errors.Is(got, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail for unique violation, got %v", got)
	}

	wrapped := fmt.Errorf("exec insert: %w", uniqueViolation)
	if got := mapPostgresError(wrapped); !errors.Is(got, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail for wrapped unique violation, got %v", got)
	}

	other := &pq.Error{Code: "23503"}
	if got := mapPostgresError(other); errors.Is(got, ErrDuplicateEmail) {
		t.Fatalf("expected non-unique violation to pass through, got %v", got)
	}
}
