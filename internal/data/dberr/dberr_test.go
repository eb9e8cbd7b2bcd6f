package dberr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), true},
		{"pg code", &pgconn.PgError{Code: "23505"}, true},
		{"pg other code", &pgconn.PgError{Code: "23503"}, false},
		{"wrapped pg", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"sqlite message", errors.New("UNIQUE constraint failed: item_type.name"), true},
		{"unrelated", errors.New("connection refused"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUniqueViolation(tc.err); got != tc.want {
				t.Fatalf("IsUniqueViolation(%v): want=%v got=%v", tc.err, tc.want, got)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(&pgconn.PgError{Code: "40P01"}) {
		t.Fatalf("deadlock should be retryable")
	}
	if !IsRetryable(errors.New("database is locked")) {
		t.Fatalf("sqlite busy should be retryable")
	}
	if IsRetryable(gorm.ErrRecordNotFound) {
		t.Fatalf("not found is not retryable")
	}
	if !IsNotFound(fmt.Errorf("get: %w", gorm.ErrRecordNotFound)) {
		t.Fatalf("wrapped not found")
	}
}
