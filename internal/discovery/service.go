// Package discovery serves the browsable market view: a full newest-first
// fetch plus a pure in-memory filter chain over it.
package discovery

import (
	"context"
	"strings"

	"recyklat-backend/internal/catalog"
	"recyklat-backend/internal/listings"
	"recyklat-backend/internal/models"
)

// Filter is one composable query over the in-memory collection. Empty or
// sentinel values disable their predicate; active predicates compose by AND.
type Filter struct {
	// TransactionType constrains to "sell" or "buy"; empty or "all" matches both.
	TransactionType string
	// Category is a keyword matched by containment; catalog.FilterAll or empty
	// disables it.
	Category string
	// Query is a case-insensitive substring matched across the searchable fields.
	Query string
}

type Service struct {
	Listings *listings.Store
}

// LoadAll fetches the entire catalog, newest first.
func (s *Service) LoadAll(ctx context.Context) ([]models.Listing, error) {
	return s.Listings.FetchAll(ctx)
}

// GetByID fetches one listing; listings.ErrNotFound for a missing id.
func (s *Service) GetByID(ctx context.Context, id uint) (*models.Listing, error) {
	return s.Listings.FetchByID(ctx, id)
}

// Search loads everything and applies the filter chain.
func (s *Service) Search(ctx context.Context, f Filter) ([]models.Listing, error) {
	all, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return ApplyFilters(all, f), nil
}

// ApplyFilters is pure, synchronous and idempotent. Matching is boolean
// inclusion with no ranking; display order is inherited from the input.
// Sold listings are not excluded — only deletion removes a listing.
func ApplyFilters(items []models.Listing, f Filter) []models.Listing {
	out := make([]models.Listing, 0, len(items))
	for _, l := range items {
		if matchesType(l, f.TransactionType) && matchesCategory(l, f.Category) && matchesQuery(l, f.Query) {
			out = append(out, l)
		}
	}
	return out
}

func matchesType(l models.Listing, want string) bool {
	switch want {
	case string(models.TransactionSell), string(models.TransactionBuy):
		// Legacy rows without a type read as sell.
		return models.ParseTransactionType(string(l.TransactionType)) == models.TransactionType(want)
	default:
		return true
	}
}

func matchesCategory(l models.Listing, category string) bool {
	if category == "" || category == catalog.FilterAll {
		return true
	}
	kw := strings.ToLower(category)
	return strings.Contains(strings.ToLower(l.Material), kw) ||
		strings.Contains(strings.ToLower(l.Title), kw)
}

func matchesQuery(l models.Listing, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, field := range []string{
		l.Title, l.Material, l.Description, l.Locality, l.Province, l.WasteCode,
	} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
