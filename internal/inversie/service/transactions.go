package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/store"
)

const dateOnly = "2006-01-02"

type TransactionService struct {
	Store store.Store
}

func (s *TransactionService) List(ctx context.Context, clientID string, f domain.TransactionFilter) ([]domain.Transaction, error) {
	return s.Store.Transactions().ListTransactions(ctx, clientID, f)
}

// ParseTransactionFilter turns query parameters into a filter. Dates are
// RFC 3339 timestamps or plain YYYY-MM-DD dates (UTC). startDate is
// inclusive. endDate is exclusive, except that a plain date covers that
// whole day.
func ParseTransactionFilter(startDate, endDate, category string) (domain.TransactionFilter, error) {
	var f domain.TransactionFilter

	if s := strings.TrimSpace(startDate); s != "" {
		t, _, err := parseDate(s)
		if err != nil {
			return f, fmt.Errorf("%w: startDate: %v", ErrValidation, err)
		}
		f.From = &t
	}
	if s := strings.TrimSpace(endDate); s != "" {
		t, plain, err := parseDate(s)
		if err != nil {
			return f, fmt.Errorf("%w: endDate: %v", ErrValidation, err)
		}
		if plain {
			t = t.AddDate(0, 0, 1)
		}
		f.Until = &t
	}
	// An empty range is a valid query with no results; only an inverted one is rejected.
	if f.From != nil && f.Until != nil && f.Until.Before(*f.From) {
		return f, fmt.Errorf("%w: endDate is before startDate", ErrValidation)
	}
	if c := strings.TrimSpace(category); c != "" {
		f.Category = &c
	}
	return f, nil
}

func parseDate(s string) (t time.Time, plain bool, err error) {
	if t, err = time.Parse(dateOnly, s); err == nil {
		return t.UTC(), true, nil
	}
	if t, err = time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), false, nil
	}
	return time.Time{}, false, fmt.Errorf("want YYYY-MM-DD or RFC 3339, got %q", s)
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns the instant in UTC.
func ParseDate(s string) (time.Time, error) {
	t, _, err := parseDate(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return t, nil
}
