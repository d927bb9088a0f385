// Package mylistings covers the owner panel: the listings created from this
// browser, marking them sold and deleting them. Ownership is membership in
// the session's index, a UX gate rather than real authorization.
package mylistings

import (
	"context"
	"errors"

	"recyklat-backend/internal/listings"
	"recyklat-backend/internal/models"
	"recyklat-backend/internal/staging"

	"github.com/rs/zerolog/log"
)

// ErrNotOwner means the id is not in this browser's ownership index.
var ErrNotOwner = errors.New("Listing was not created from this browser")

type Service struct {
	Listings *listings.Store
	Stash    *staging.Stash
}

// List returns this browser's listings, newest first. Ids whose rows are gone
// are simply absent from the result.
func (s *Service) List(ctx context.Context, sessionID string) ([]models.Listing, error) {
	ids, err := s.Stash.OwnedIDs(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.Listings.FetchByIDs(ctx, ids)
}

// MarkSold flips an owned listing to sold. The listing stays on the market
// with the sold treatment; it does not disappear.
func (s *Service) MarkSold(ctx context.Context, sessionID string, id uint) (*models.Listing, error) {
	if err := s.requireOwned(ctx, sessionID, id); err != nil {
		return nil, err
	}
	return s.Listings.MarkSold(ctx, id)
}

// Delete removes an owned listing and prunes its id from the index. The
// index prune is best-effort; a stale id only means an empty slot in the
// owner panel.
func (s *Service) Delete(ctx context.Context, sessionID string, id uint) error {
	if err := s.requireOwned(ctx, sessionID, id); err != nil {
		return err
	}
	if err := s.Listings.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Stash.RemoveOwned(ctx, sessionID, id); err != nil {
		log.Warn().Err(err).Uint("listing_id", id).Msg("ownership index prune failed")
	}
	return nil
}

func (s *Service) requireOwned(ctx context.Context, sessionID string, id uint) error {
	owned, err := s.Stash.IsOwned(ctx, sessionID, id)
	if err != nil {
		return err
	}
	if !owned {
		return ErrNotOwner
	}
	return nil
}
