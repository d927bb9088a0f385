// Package listings is the persistence layer over the listings table. It is
// the only place that talks to the database about listings; everything above
// it works with models.Listing values.
package listings

import (
	"context"
	"errors"

	"recyklat-backend/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned for a missing listing id.
var ErrNotFound = errors.New("Listing not found")

// ErrAlreadySold rejects a repeat or reverse status transition.
var ErrAlreadySold = errors.New("Listing is already sold")

type Store struct {
	DB *gorm.DB
}

// Insert persists the listing and fills in the generated id and timestamps.
func (s *Store) Insert(ctx context.Context, l *models.Listing) error {
	if l.Status == "" {
		l.Status = models.StatusActive
	}
	if err := s.DB.WithContext(ctx).Create(l).Error; err != nil {
		return err
	}
	return nil
}

// FetchAll returns every listing, newest first. No pagination, no pushdown:
// the whole table is the working set, an accepted ceiling for catalog sizes
// this market sees.
func (s *Store) FetchAll(ctx context.Context) ([]models.Listing, error) {
	var out []models.Listing
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FetchByID returns one listing or ErrNotFound.
func (s *Store) FetchByID(ctx context.Context, id uint) (*models.Listing, error) {
	var l models.Listing
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// FetchByIDs returns the listings with the given ids, newest first. Missing
// ids are skipped silently; the ownership index can outlive its rows.
func (s *Store) FetchByIDs(ctx context.Context, ids []uint) ([]models.Listing, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []models.Listing
	if err := s.DB.WithContext(ctx).Where("id IN ?", ids).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// MarkSold moves a listing from active to sold. The reverse direction is
// refused here and only here; the schema itself would accept it.
func (s *Store) MarkSold(ctx context.Context, id uint) (*models.Listing, error) {
	l, err := s.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.Status == models.StatusSold {
		return nil, ErrAlreadySold
	}
	if err := s.DB.WithContext(ctx).Model(l).Update("status", models.StatusSold).Error; err != nil {
		return nil, err
	}
	l.Status = models.StatusSold
	return l, nil
}

// Delete removes the listing row. Deleting is the only way a listing leaves
// market results; sold listings stay visible.
func (s *Store) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Listing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
