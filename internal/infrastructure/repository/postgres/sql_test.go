package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches wrapped no rows", func(t *testing.T) {
		if !isNotFound(fmt.Errorf("get team: %w", sql.ErrNoRows)) {
			t.Fatalf("expected true for wrapped sql.ErrNoRows")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(fmt.Errorf("pq: relation teams does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestNullableConversions(t *testing.T) {
	t.Run("int pointer round trip", func(t *testing.T) {
		v := 61000
		got := nullInt64ToIntPtr(intPtrToNull(&v))
		if got == nil || *got != v {
			t.Fatalf("expected %d, got %v", v, got)
		}
	})

	t.Run("nil int stays null", func(t *testing.T) {
		if intPtrToNull(nil).Valid {
			t.Fatalf("expected invalid null int")
		}
		if nullInt64ToIntPtr(sql.NullInt64{}) != nil {
			t.Fatalf("expected nil pointer")
		}
	})

	t.Run("string pointer round trip", func(t *testing.T) {
		v := "52%"
		got := nullStringToStringPtr(stringPtrToNull(&v))
		if got == nil || *got != v {
			t.Fatalf("expected %q, got %v", v, got)
		}
	})

	t.Run("empty string is not null", func(t *testing.T) {
		v := ""
		if !stringPtrToNull(&v).Valid {
			t.Fatalf("expected valid null string for empty value")
		}
	})
}
